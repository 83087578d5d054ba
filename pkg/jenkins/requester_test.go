package jenkins

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testCrumb = "d41d8cd98f00b204e9800998ecf8427e"

// crumbServer is a tiny hand-rolled master: POSTs to /createItem demand the
// crumb header, GETs to the crumb issuer serve it (or fail, if told to).
func crumbServer(posts *int, issuerStatus int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/" + API_CRUMB:
			if issuerStatus != http.StatusOK {
				http.Error(w, "crumb issuer off", issuerStatus)
				return
			}
			fmt.Fprintf(w, `{"crumbRequestField":"Jenkins-Crumb","crumb":%q}`, testCrumb)
		case "/" + API_CREATE_ITEM:
			*posts++
			if r.Header.Get("Jenkins-Crumb") != testCrumb {
				http.Error(w, "HTTP ERROR 403 No valid crumb was included in the request", http.StatusForbidden)
				return
			}
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
}

func newTestRequester(t *testing.T, addr string) *requester {
	r, err := newRequester(&Options{URL: addr, Username: "admin", Password: "secret", Timeout: 5 * time.Second})
	assert.Nil(t, err)
	return r
}

func TestPostCrumbRetry(t *testing.T) {
	// first POST has no crumb & is rejected, the requester fetches one
	// and goes again. Exactly two POSTs, final answer 200.
	posts := 0
	ts := crumbServer(&posts, http.StatusOK)
	defer ts.Close()

	r := newTestRequester(t, ts.URL)

	resp, err := r.Post(API_CREATE_ITEM, nil, []byte("<project/>"), nil)

	assert.Nil(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, posts)
}

func TestPostCrumbRetryBound(t *testing.T) {
	// the issuer is down so the retry is rejected too; the requester
	// must hand back the 403 after exactly one retry, never looping.
	posts := 0
	ts := crumbServer(&posts, http.StatusServiceUnavailable)
	defer ts.Close()

	r := newTestRequester(t, ts.URL)

	resp, err := r.Post(API_CREATE_ITEM, nil, []byte("<project/>"), nil)

	assert.Nil(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 2, posts)
}

func TestPostReusesCachedCrumb(t *testing.T) {
	posts := 0
	ts := crumbServer(&posts, http.StatusOK)
	defer ts.Close()

	r := newTestRequester(t, ts.URL)

	// first call pays the retry tax & caches the crumb
	_, err := r.Post(API_CREATE_ITEM, nil, nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, 2, posts)

	// second call attaches the cached crumb up front, no retry
	resp, err := r.Post(API_CREATE_ITEM, nil, nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, posts)
}

func TestPostPlainForbiddenNotRetried(t *testing.T) {
	// a 403 without the no-crumb marker is not a crumb problem, no retry
	posts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts++
		http.Error(w, "you shall not pass", http.StatusForbidden)
	}))
	defer ts.Close()

	r := newTestRequester(t, ts.URL)

	resp, err := r.Post(API_CREATE_ITEM, nil, nil, nil)

	assert.Nil(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 1, posts)
}

func TestPostSendsBasicAuthAndParams(t *testing.T) {
	var gotUser, gotPass, gotName string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, _ = r.BasicAuth()
		gotName = r.URL.Query().Get("name")
	}))
	defer ts.Close()

	r := newTestRequester(t, ts.URL)

	params := url.Values{}
	params.Set("name", "demo-job")
	_, err := r.Post(API_CREATE_ITEM, params, nil, nil)

	assert.Nil(t, err)
	assert.Equal(t, "admin", gotUser)
	assert.Equal(t, "secret", gotPass)
	assert.Equal(t, "demo-job", gotName)
}

func TestNewRequesterRejectsBadURL(t *testing.T) {
	cases := []struct {
		Name string
		URL  string
	}{
		{Name: "Empty", URL: ""},
		{Name: "NoScheme", URL: "ci.example.com"},
		{Name: "Garbage", URL: "://nope"},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			_, err := newRequester(&Options{URL: c.URL})
			assert.NotNil(t, err)
		})
	}
}
