package service

import "time"

// Clock yields local wall time using the UTC offset reported by the weather
// API. Until the first sync it falls back to the host zone.
type Clock struct {
	now    func() time.Time
	zone   *time.Location
	synced bool
}

func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, zone: time.Local}
}

// SetUTCOffset fixes the display zone to a single offset.
func (c *Clock) SetUTCOffset(seconds int) {
	c.zone = time.FixedZone("", seconds)
	c.synced = true
}

func (c *Clock) Now() time.Time { return c.now().In(c.zone) }

// Synced reports whether an API offset has been applied.
func (c *Clock) Synced() bool { return c.synced }
