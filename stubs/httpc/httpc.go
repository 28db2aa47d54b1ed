// stubs/httpc/httpc.go
package httpc

import "firmbench-go/x/strbuf"

// StatusOK is the default configured response code.
const StatusOK = 200

// Client is a stand-in for the platform's HTTP client. No request
// ever leaves the process: Get returns whatever code was configured,
// GetString returns the configured body, and the URL handed to Begin
// is recorded for inspection. State is per-instance; two clients
// share nothing.
type Client struct {
	LastURL      string
	BeginCalls   int
	EndCalls     int
	TimeoutMS    int // recorded, never enforced
	responseCode int
	responseBody string
}

// New returns a client configured with code 200 and an empty body.
func New() *Client {
	return &Client{responseCode: StatusOK}
}

// SetTimeout records the requested timeout in milliseconds.
func (c *Client) SetTimeout(ms int) { c.TimeoutMS = ms }

// Begin records the request URL.
func (c *Client) Begin(url string) {
	c.LastURL = url
	c.BeginCalls++
}

// Get returns the configured response code.
func (c *Client) Get() int { return c.responseCode }

// GetString returns the configured response body as a fresh string
// value.
func (c *Client) GetString() *strbuf.S { return strbuf.New(c.responseBody) }

// End finishes the request. It only counts the call.
func (c *Client) End() { c.EndCalls++ }

// SetResponseCode configures the code Get will return.
func (c *Client) SetResponseCode(code int) { c.responseCode = code }

// SetResponseBody configures the body GetString will return.
func (c *Client) SetResponseBody(body string) { c.responseBody = body }

// Reset restores defaults: code 200, empty body, empty URL, zero
// counters and timeout.
func (c *Client) Reset() {
	*c = Client{responseCode: StatusOK}
}
