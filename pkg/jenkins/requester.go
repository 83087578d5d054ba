package jenkins

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/rastaman/jenkinsctl/pkg/errors"
	"github.com/rastaman/jenkinsctl/pkg/structs"
)

const (
	// noCrumbMarker is the text the server puts in a 403 body when a
	// mutating request arrives without a valid crumb.
	noCrumbMarker = "No valid crumb was included in the request"
)

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}

// requester performs authenticated calls against one server, transparently
// acquiring a CSRF crumb and retrying a rejected POST exactly once.
//
// The crumb is cached for the requester's lifetime; a stale crumb is
// replaced the first time the server rejects a request over it.
type requester struct {
	base  *url.URL
	opts  *Options
	hc    *http.Client
	crumb *structs.Crumb
}

func newRequester(opts *Options) (*requester, error) {
	u, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrNotAvailable, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: url %q has no scheme or host", errors.ErrNotAvailable, opts.URL)
	}

	hc := &http.Client{Timeout: opts.Timeout}
	if opts.TLSConfig != nil {
		hc.Transport = &http.Transport{TLSClientConfig: opts.TLSConfig}
	}

	return &requester{base: u, opts: opts, hc: hc}, nil
}

// addr resolves an endpoint path against the server's scheme & host.
func (r *requester) addr(path string) *url.URL {
	return &url.URL{Scheme: r.base.Scheme, Host: r.base.Host, Path: "/" + path}
}

// do issues a single request and reads the whole response.
func (r *requester) do(method string, u *url.URL, body []byte, headers map[string]string) (*Response, error) {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, u.String(), rdr)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(r.opts.Username, r.opts.Password)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if r.opts.Debug {
		log.Println(method, u.String())
	}

	resp, err := r.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// Get fetches a JSON document from the given path and unmarshals it into out.
// A 404 is reported as ErrUnknownJob so callers can tell absence from failure.
func (r *requester) Get(path string, out interface{}) error {
	data, err := r.GetRaw(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// GetRaw fetches the given path and returns the raw body (eg. config XML).
func (r *requester) GetRaw(path string) ([]byte, error) {
	resp, err := r.do(http.MethodGet, r.addr(path), nil, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownJob, path)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w %d, returned %s", errors.ErrBadStatus, resp.StatusCode, string(resp.Body))
	}
	return resp.Body, nil
}

// Post issues a mutating request. A cached crumb (if any) is attached up
// front; if the server rejects the request with 403 and the no-crumb marker
// a fresh crumb is fetched and the request reissued, exactly once.
//
// The final response is returned as-is, a second 403 is the caller's to
// interpret. We never retry more than once per call.
func (r *requester) Post(path string, params url.Values, body []byte, headers map[string]string) (*Response, error) {
	u := r.addr(path)
	if params != nil {
		u.RawQuery = params.Encode()
	}

	resp, err := r.do(http.MethodPost, u, body, r.withCrumb(headers))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusForbidden || !bytes.Contains(resp.Body, []byte(noCrumbMarker)) {
		return resp, nil
	}

	r.refreshCrumb()
	return r.do(http.MethodPost, u, body, r.withCrumb(headers))
}

// withCrumb copies the given headers, attaching the cached crumb if we hold one.
func (r *requester) withCrumb(headers map[string]string) map[string]string {
	out := map[string]string{}
	for k, v := range headers {
		out[k] = v
	}
	if r.crumb != nil {
		out[r.crumb.CrumbRequestField] = r.crumb.Crumb
	}
	return out
}

// refreshCrumb asks the crumb issuer for a new crumb. Failure is not fatal;
// the retry proceeds with whatever crumb (if any) is already cached.
func (r *requester) refreshCrumb() {
	resp, err := r.do(http.MethodGet, r.addr(API_CRUMB), nil, nil)
	if err != nil {
		if r.opts.Debug {
			log.Println("crumb fetch failed:", err)
		}
		return
	}
	if resp.StatusCode != http.StatusOK {
		if r.opts.Debug {
			log.Println("crumb fetch returned", resp.StatusCode)
		}
		return
	}

	crumb := &structs.Crumb{}
	if err := json.Unmarshal(resp.Body, crumb); err != nil {
		if r.opts.Debug {
			log.Println("crumb fetch returned bad json:", err)
		}
		return
	}
	r.crumb = crumb
}
