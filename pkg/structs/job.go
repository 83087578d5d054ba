package structs

import (
	"strings"
)

// JobInfo is the subset of a job's api/json document that we read.
type JobInfo struct {
	// Name is the job's unique name on the server.
	Name string `json:"name"`

	// URL is the job's address as the server reports it.
	URL string `json:"url"`

	// Color encodes last-build result and enabled/disabled state
	// ("blue", "red", "notbuilt", "disabled", "disabled_anime" ...).
	Color string `json:"color"`

	// Buildable is false while the job is disabled.
	Buildable bool `json:"buildable"`

	// Description is the job's free-form description, if any.
	Description string `json:"description"`
}

// Enabled reports whether the job can currently be built.
// The server encodes the disabled state in the color field.
func (j *JobInfo) Enabled() bool {
	return !strings.HasPrefix(j.Color, "disabled")
}
