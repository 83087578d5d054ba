// jenkins provides a minimal client for a Jenkins-compatible CI server:
// job lookup, creation, deletion, enable/disable and config replacement,
// with transparent CSRF crumb handling on mutating calls.
package jenkins

import (
	"github.com/rastaman/jenkinsctl/pkg/structs"
)

// JobAPI is the slice of the client the reconciler consumes.
type JobAPI interface {
	// JobInfo fetches a job's status document (ErrUnknownJob if absent).
	JobInfo(name string) (*structs.JobInfo, error)

	// JobExists reports whether a job of the given name is present.
	JobExists(name string) (bool, error)

	// JobConfig fetches a job's config XML verbatim.
	JobConfig(name string) (string, error)

	// CreateJob creates a job from the given config XML.
	CreateJob(name, configXML string) error

	// DeleteJob removes the job.
	DeleteJob(name string) error

	// EnableJob allows builds of the job.
	EnableJob(name string) error

	// DisableJob stops builds of the job.
	DisableJob(name string) error

	// SetJobConfig replaces the job's config XML.
	SetJobConfig(name, configXML string) error
}
