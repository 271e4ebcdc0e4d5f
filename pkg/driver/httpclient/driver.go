package httpclient

import (
	"net/http"

	"hudmirror/pkg/logging"
)

// Driver provides the HTTP client used for API calls and downloads.
type Driver interface {
	Client() *http.Client
}

// Static wraps an existing client as a Driver.
type Static struct {
	HTTPClient *http.Client
}

func (s Static) Client() *http.Client {
	if s.HTTPClient == nil {
		return http.DefaultClient
	}
	return s.HTTPClient
}

// WithLogging wraps a Driver so that every HTTP request logs the URL at Debug level.
func WithLogging(d Driver) Driver {
	return wrap(d, func(base http.RoundTripper) http.RoundTripper {
		return &loggingTransport{base: base}
	})
}

// WithUserAgent wraps a Driver so that every request carries the given
// User-Agent header, overriding whatever the caller set.
func WithUserAgent(d Driver, userAgent string) Driver {
	return wrap(d, func(base http.RoundTripper) http.RoundTripper {
		return &userAgentTransport{base: base, userAgent: userAgent}
	})
}

type wrappedDriver struct {
	inner     Driver
	transport func(http.RoundTripper) http.RoundTripper
}

func wrap(d Driver, transport func(http.RoundTripper) http.RoundTripper) Driver {
	return &wrappedDriver{inner: d, transport: transport}
}

func (d *wrappedDriver) Client() *http.Client {
	c := d.inner.Client()
	base := c.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	clone := *c
	clone.Transport = d.transport(base)
	return &clone
}

type loggingTransport struct {
	base http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	logging.GetLogger(req.Context()).Debug("http request", "method", req.Method, "url", req.URL.String())
	return t.base.RoundTrip(req)
}

type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent == "" {
		return t.base.RoundTrip(req)
	}
	// RoundTrippers must not modify the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(clone)
}
