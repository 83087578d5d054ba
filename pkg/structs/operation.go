package structs

import (
	"strings"
)

// Operation is one of the reconcile operations we can apply to a named job.
type Operation string

const (
	// OpCreate makes the job exist with a given (or default) config
	OpCreate Operation = "create"

	// OpDelete removes the job
	OpDelete Operation = "delete"

	// OpEnable allows builds of an existing job
	OpEnable Operation = "enable"

	// OpDisable stops builds of an existing job
	OpDisable Operation = "disable"

	// OpModify replaces an existing job's config
	OpModify Operation = "modify"
)

func ToOperation(s string) Operation {
	switch strings.ToLower(s) {
	case "create":
		return OpCreate
	case "delete":
		return OpDelete
	case "enable":
		return OpEnable
	case "disable":
		return OpDisable
	case "modify":
		return OpModify
	default:
		return ""
	}
}
