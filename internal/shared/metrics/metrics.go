package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	fetchStartedTotal   atomic.Uint64
	fetchCompletedTotal atomic.Uint64
	fetchFailedTotal    atomic.Uint64
	fetchStaleTotal     atomic.Uint64

	fetchDuration = newHistogram([]float64{50, 100, 250, 500, 1000, 2000, 5000, 10000, 30000})
)

// IncFetchStarted increments the started counter.
func IncFetchStarted() {
	fetchStartedTotal.Add(1)
}

// IncFetchCompleted increments the completed counter.
func IncFetchCompleted() {
	fetchCompletedTotal.Add(1)
}

// IncFetchFailed increments the failed counter.
func IncFetchFailed() {
	fetchFailedTotal.Add(1)
}

// IncFetchStale increments the discarded-stale-response counter.
func IncFetchStale() {
	fetchStaleTotal.Add(1)
}

// ObserveFetchDurationMs records an advisor fetch duration in milliseconds.
func ObserveFetchDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	fetchDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "recommendation_fetch_started_total", "Total advisor fetches started", fetchStartedTotal.Load())
	writeCounter(&buf, "recommendation_fetch_completed_total", "Total advisor fetches completed", fetchCompletedTotal.Load())
	writeCounter(&buf, "recommendation_fetch_failed_total", "Total advisor fetches failed", fetchFailedTotal.Load())
	writeCounter(&buf, "recommendation_fetch_stale_total", "Total advisor responses discarded as stale", fetchStaleTotal.Load())
	writeHistogram(&buf, "recommendation_fetch_duration_ms", "Advisor fetch duration in milliseconds", fetchDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
