package metrics

import (
	"sync/atomic"
	"time"
)

// Collector keeps in-process counters for the request path and the
// paystub pipeline. Safe for concurrent use.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	totalDurationMs uint64
	batchesSent     uint64
	paystubsSent    uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 400 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordBatch counts one fully delivered batch and its paystubs.
func (c *Collector) RecordBatch(paystubs int) {
	atomic.AddUint64(&c.batchesSent, 1)
	atomic.AddUint64(&c.paystubsSent, uint64(paystubs))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	limited := atomic.LoadUint64(&c.rateLimited)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":    total,
		"errorsTotal":      errs,
		"rateLimitedTotal": limited,
		"avgDurationMs":    avg,
		"batchesSent":      atomic.LoadUint64(&c.batchesSent),
		"paystubsSent":     atomic.LoadUint64(&c.paystubsSent),
	}
}
