package notification

import (
	"net"
	"net/http"
	"time"
)

// newHTTPClient builds the client used for outbound notification calls.
// http.DefaultClient has no timeout, so the transport and overall timeout are
// set explicitly; a stalled relay must not hold an order request open.
func newHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
