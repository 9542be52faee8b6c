package engine

import "time"

// Clock enforces the wall-clock budget of a single search. It belongs to one
// search value and is polled cooperatively at the top of every node; there is
// no asynchronous preemption.
type Clock struct {
	start    time.Time
	deadline time.Time
}

func NewClock(limit time.Duration) *Clock {
	now := time.Now()
	return &Clock{
		start:    now,
		deadline: now.Add(limit),
	}
}

func (c *Clock) Done() bool {
	return !time.Now().Before(c.deadline)
}

func (c *Clock) Elapsed() time.Duration {
	return time.Since(c.start)
}
