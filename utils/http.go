package utils

import (
	"net/http"
	"time"
)

const (
	UserAgent = "steamr/1.0 (+https://github.com/marcus-crane/steamr)"

	defaultClientTimeout = 10 * time.Second
)

type UARoundtripper struct {
	RT http.RoundTripper
}

func (uart *UARoundtripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rt := uart.RT
	if rt == nil {
		rt = http.DefaultTransport
	}
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", UserAgent)
	return rt.RoundTrip(req)
}

// NewHTTPClient returns a client that stamps every request with our
// User-Agent and gives up after ten seconds.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout:   defaultClientTimeout,
		Transport: &UARoundtripper{},
	}
}
