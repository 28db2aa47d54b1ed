package timex

import "time"

// Clock measures elapsed milliseconds from a restartable origin on the
// monotonic clock. The zero value is not usable; call NewClock.
type Clock struct {
	origin time.Time
}

// NewClock returns a clock whose origin is now.
func NewClock() *Clock { return &Clock{origin: time.Now()} }

// Elapsed returns whole milliseconds since the origin. Never negative.
func (c *Clock) Elapsed() int64 {
	ms := time.Since(c.origin).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

// Restart moves the origin to now.
func (c *Clock) Restart() { c.origin = time.Now() }
