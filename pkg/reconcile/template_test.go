package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandConfig(t *testing.T) {
	cases := []struct {
		Name   string
		Given  string
		Params map[string]string
		Expect string
	}{
		{
			Name:   "NoParams",
			Given:  `<project>${NAME}</project>`,
			Expect: `<project>${NAME}</project>`,
		},
		{
			Name:   "Braced",
			Given:  `<project>${NAME}</project>`,
			Params: map[string]string{"NAME": "demo"},
			Expect: `<project>demo</project>`,
		},
		{
			Name:   "Bare",
			Given:  `<description>$DESC</description>`,
			Params: map[string]string{"DESC": "hi"},
			Expect: `<description>hi</description>`,
		},
		{
			Name:   "UnknownKeyExpandsEmpty",
			Given:  `<project>${MISSING}</project>`,
			Params: map[string]string{"NAME": "demo"},
			Expect: `<project></project>`,
		},
		{
			Name:   "MultipleKeys",
			Given:  `<a>${X}</a><b>${Y}</b><c>${X}</c>`,
			Params: map[string]string{"X": "1", "Y": "2"},
			Expect: `<a>1</a><b>2</b><c>1</c>`,
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, ExpandConfig(c.Given, c.Params))
		})
	}
}

func TestDefaultConfigXML(t *testing.T) {
	// the default job must be enabled, sequential & empty of build logic
	assert.Contains(t, DefaultConfigXML, "<disabled>false</disabled>")
	assert.Contains(t, DefaultConfigXML, "<concurrentBuild>false</concurrentBuild>")
	assert.Contains(t, DefaultConfigXML, `<scm class="hudson.scm.NullSCM"/>`)
	assert.Contains(t, DefaultConfigXML, "<triggers/>")
	assert.Contains(t, DefaultConfigXML, "<builders/>")
	assert.Contains(t, DefaultConfigXML, "<publishers/>")
	assert.Contains(t, DefaultConfigXML, "<buildWrappers/>")
}
