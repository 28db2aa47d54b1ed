package httpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, StatusOK, c.Get())
	assert.Equal(t, "", c.GetString().String())
	assert.Equal(t, "", c.LastURL)
}

func TestConfiguredResponse(t *testing.T) {
	c := New()
	c.SetResponseCode(404)
	c.SetResponseBody("not found")
	c.Begin("http://x")

	assert.Equal(t, 404, c.Get())
	assert.Equal(t, "not found", c.GetString().String())
	assert.Equal(t, "http://x", c.LastURL)
	assert.Equal(t, 1, c.BeginCalls)
}

func TestGetStringReturnsFreshValue(t *testing.T) {
	c := New()
	c.SetResponseBody("body")
	a := c.GetString()
	a.Append("-mutated")
	assert.Equal(t, "body", c.GetString().String())
}

func TestInstancesShareNothing(t *testing.T) {
	a, b := New(), New()
	a.SetResponseCode(500)
	a.Begin("http://a")

	assert.Equal(t, StatusOK, b.Get())
	assert.Equal(t, "", b.LastURL)
}

func TestTimeoutRecordedNotEnforced(t *testing.T) {
	c := New()
	c.SetTimeout(1)
	assert.Equal(t, 1, c.TimeoutMS)
	// A 1ms timeout must not make the canned response fail.
	assert.Equal(t, StatusOK, c.Get())
}

func TestReset(t *testing.T) {
	c := New()
	c.SetTimeout(100)
	c.SetResponseCode(503)
	c.SetResponseBody("busy")
	c.Begin("http://x")
	c.End()
	c.Reset()

	assert.Equal(t, StatusOK, c.Get())
	assert.Equal(t, "", c.GetString().String())
	assert.Equal(t, "", c.LastURL)
	assert.Zero(t, c.BeginCalls)
	assert.Zero(t, c.EndCalls)
	assert.Zero(t, c.TimeoutMS)
}
