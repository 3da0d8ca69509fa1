package wifiscanner

import "time"

// Clock lets tests control StartedAt and elapsed times.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
