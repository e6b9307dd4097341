// internal/search/cancel.go

package search

import "sync/atomic"

// cancelToken 超时标志；置位后到下一次顶层搜索前不再清除
type cancelToken struct{ f int32 }

func (c *cancelToken) Abort() {
	atomic.StoreInt32(&c.f, 1)
}
func (c *cancelToken) IsAborted() bool {
	return atomic.LoadInt32(&c.f) == 1
}
func (c *cancelToken) Reset() {
	atomic.StoreInt32(&c.f, 0)
}
