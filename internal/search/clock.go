// internal/search/clock.go
package search

import "time"

// Clock 每手棋的时间预算。limit<=0 表示不限时（Expired 恒假，
// 确定性测试用）。nowFn 可在测试里替换成假时钟。
type Clock struct {
	start time.Time
	limit time.Duration
	nowFn func() time.Time
}

func NewClock(limit time.Duration) *Clock {
	return &Clock{limit: limit, nowFn: time.Now}
}

func (c *Clock) Start()                       { c.start = c.nowFn() }
func (c *Clock) SetLimit(limit time.Duration) { c.limit = limit }
func (c *Clock) Limit() time.Duration         { return c.limit }

func (c *Clock) Elapsed() time.Duration { return c.nowFn().Sub(c.start) }

func (c *Clock) Remaining() time.Duration {
	if c.limit <= 0 {
		return time.Hour
	}
	return c.limit - c.Elapsed()
}

func (c *Clock) Expired() bool {
	if c.limit <= 0 {
		return false
	}
	return c.Elapsed() >= c.limit
}

// PhaseLimit 按盘上子数调节每手限时：开局快，残局慢
func PhaseLimit(base time.Duration, discs int) time.Duration {
	if base <= 0 {
		return base
	}
	switch {
	case discs <= 20:
		return base / 2
	case discs <= 50:
		return base
	default:
		return base * 3 / 2
	}
}
