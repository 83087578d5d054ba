package jenkins

import (
	"net/url"
)

const (
	// API_CRUMB issues anti-CSRF crumbs, the path is fixed by the server
	API_CRUMB = "crumbIssuer/api/json"

	// API_CREATE_ITEM creates a new job, the name is given as a query param
	API_CREATE_ITEM = "createItem"

	// per-job leaf paths, appended under job/<name>/

	// API_JOB_INFO is the job's JSON status document
	API_JOB_INFO = "api/json"

	// API_JOB_CONFIG gets or replaces the job's config XML
	API_JOB_CONFIG = "config.xml"

	// API_JOB_DELETE removes the job
	API_JOB_DELETE = "doDelete"

	// API_JOB_ENABLE allows builds of the job
	API_JOB_ENABLE = "enable"

	// API_JOB_DISABLE stops builds of the job
	API_JOB_DISABLE = "disable"
)

// jobPath builds the path for a per-job endpoint, escaping the name so it
// is safe as a single path segment.
func jobPath(name, leaf string) string {
	return "job/" + url.PathEscape(name) + "/" + leaf
}
