package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToOperation(t *testing.T) {
	cases := []struct {
		Name   string
		Given  string
		Expect Operation
	}{
		{Name: "Create", Given: "create", Expect: OpCreate},
		{Name: "Delete", Given: "delete", Expect: OpDelete},
		{Name: "Enable", Given: "enable", Expect: OpEnable},
		{Name: "Disable", Given: "disable", Expect: OpDisable},
		{Name: "Modify", Given: "modify", Expect: OpModify},
		{Name: "MixedCase", Given: "CrEaTe", Expect: OpCreate},
		{Name: "Unknown", Given: "explode", Expect: Operation("")},
		{Name: "Empty", Given: "", Expect: Operation("")},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, ToOperation(c.Given))
		})
	}
}
