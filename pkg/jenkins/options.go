package jenkins

import (
	"crypto/tls"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
)

// Options describe how to reach and authenticate with the server.
type Options struct {
	// URL is the base address of the server, eg. "https://ci.example.com".
	URL string

	// Username is sent as HTTP basic auth on every request.
	Username string

	// Password is the basic auth password. An API token works the same way.
	Password string

	// Timeout bounds each HTTP round trip. Defaults to 30s.
	Timeout time.Duration

	// TLSConfig needed to connect to the server (optional).
	TLSConfig *tls.Config

	// Debug enables per-request logging.
	Debug bool
}

func (o *Options) SetDefaults() {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
}
