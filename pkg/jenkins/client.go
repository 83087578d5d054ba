package jenkins

import (
	ers "errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rastaman/jenkinsctl/internal/utils"
	"github.com/rastaman/jenkinsctl/pkg/errors"
	"github.com/rastaman/jenkinsctl/pkg/structs"
)

const (
	contentTypeXML = "application/xml; charset=utf-8"
)

// Client talks to a single Jenkins-compatible server over its REST surface.
//
// The client holds no job state; every call is a fresh round trip and the
// server remains the sole source of truth. The only thing cached is the
// CSRF crumb, held by the underlying requester.
type Client struct {
	req *requester
}

// New builds a Client, failing fast if one cannot be constructed from the
// given options. Nothing is sent to the server here.
func New(opts *Options) (*Client, error) {
	if opts == nil {
		return nil, fmt.Errorf("%w: no options given", errors.ErrNotAvailable)
	}
	if opts.URL == "" {
		return nil, fmt.Errorf("%w: no server url given", errors.ErrNotAvailable)
	}
	opts.SetDefaults()

	req, err := newRequester(opts)
	if err != nil {
		return nil, err
	}
	return &Client{req: req}, nil
}

// JobInfo fetches a job's status document.
// Returns ErrUnknownJob if no job of that name exists.
func (c *Client) JobInfo(name string) (*structs.JobInfo, error) {
	if !utils.ValidJobName(name) {
		return nil, fmt.Errorf("%w: job name %q", errors.ErrInvalidArg, name)
	}
	out := &structs.JobInfo{}
	return out, c.req.Get(jobPath(name, API_JOB_INFO), out)
}

// JobExists reports whether a job of the given name is present.
func (c *Client) JobExists(name string) (bool, error) {
	_, err := c.JobInfo(name)
	if ers.Is(err, errors.ErrUnknownJob) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// JobConfig fetches a job's config XML verbatim.
func (c *Client) JobConfig(name string) (string, error) {
	if !utils.ValidJobName(name) {
		return "", fmt.Errorf("%w: job name %q", errors.ErrInvalidArg, name)
	}
	data, err := c.req.GetRaw(jobPath(name, API_JOB_CONFIG))
	return string(data), err
}

// CreateJob creates a job of the given name from the given config XML.
// The server rejects duplicate names; callers check existence first.
func (c *Client) CreateJob(name, configXML string) error {
	if !utils.ValidJobName(name) {
		return fmt.Errorf("%w: job name %q", errors.ErrInvalidArg, name)
	}
	params := url.Values{}
	params.Set("name", name)
	resp, err := c.req.Post(API_CREATE_ITEM, params, []byte(configXML), map[string]string{
		"Content-Type": contentTypeXML,
	})
	if err != nil {
		return err
	}
	return checkStatus(resp)
}

// DeleteJob removes the named job.
func (c *Client) DeleteJob(name string) error {
	return c.postJob(name, API_JOB_DELETE)
}

// EnableJob allows builds of the named job.
func (c *Client) EnableJob(name string) error {
	return c.postJob(name, API_JOB_ENABLE)
}

// DisableJob stops builds of the named job.
func (c *Client) DisableJob(name string) error {
	return c.postJob(name, API_JOB_DISABLE)
}

// SetJobConfig replaces the named job's config XML.
func (c *Client) SetJobConfig(name, configXML string) error {
	if !utils.ValidJobName(name) {
		return fmt.Errorf("%w: job name %q", errors.ErrInvalidArg, name)
	}
	resp, err := c.req.Post(jobPath(name, API_JOB_CONFIG), nil, []byte(configXML), map[string]string{
		"Content-Type": contentTypeXML,
	})
	if err != nil {
		return err
	}
	return checkStatus(resp)
}

// postJob issues a body-less mutation against a per-job endpoint.
func (c *Client) postJob(name, leaf string) error {
	if !utils.ValidJobName(name) {
		return fmt.Errorf("%w: job name %q", errors.ErrInvalidArg, name)
	}
	resp, err := c.req.Post(jobPath(name, leaf), nil, nil, nil)
	if err != nil {
		return err
	}
	return checkStatus(resp)
}

// checkStatus maps an error status code to an error, assuming the body
// (if any) is the server's explanation.
func checkStatus(resp *Response) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.ErrUnknownJob
	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", errors.ErrCrumbRejected, string(resp.Body))
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w %d, returned %s", errors.ErrBadStatus, resp.StatusCode, string(resp.Body))
	default:
		return nil
	}
}
