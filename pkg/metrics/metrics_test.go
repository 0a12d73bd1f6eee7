package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCollector(t *testing.T) {
	collector := NewMetricsCollector()

	t.Run("InitialState", func(t *testing.T) {
		metrics := collector.GetMetrics()
		assert.Equal(t, int64(0), metrics.TotalRequests)
		assert.Equal(t, int64(0), metrics.SuccessfulRequests)
		assert.Equal(t, int64(0), metrics.FailedRequests)
		assert.Equal(t, int64(0), metrics.RPCCalls)
		assert.Empty(t, metrics.RPCCallsByName)
		assert.Equal(t, 0.0, collector.GetSuccessRate())
	})

	t.Run("RecordRequest", func(t *testing.T) {
		collector.RecordRequest()
		metrics := collector.GetMetrics()
		assert.Equal(t, int64(1), metrics.TotalRequests)
		assert.Equal(t, int64(1), metrics.ActiveRequests)
	})

	t.Run("RecordRequestComplete", func(t *testing.T) {
		duration := 100 * time.Millisecond
		collector.RecordRequestComplete(duration, true)

		metrics := collector.GetMetrics()
		assert.Equal(t, int64(1), metrics.SuccessfulRequests)
		assert.Equal(t, int64(0), metrics.ActiveRequests)
		assert.Equal(t, duration, metrics.AverageResponseTime)
		assert.Equal(t, duration, metrics.MinResponseTime)
		assert.Equal(t, duration, metrics.MaxResponseTime)
	})

	t.Run("RPCMetrics", func(t *testing.T) {
		duration := 50 * time.Millisecond
		collector.RecordRPCCall("suix_getAllBalances", duration, true)
		collector.RecordRPCCall("suix_getCoinMetadata", duration*2, false)
		collector.RecordRPCCall("suix_getAllBalances", duration*3, true)

		metrics := collector.GetMetrics()
		assert.Equal(t, int64(3), metrics.RPCCalls)
		assert.Equal(t, int64(1), metrics.RPCFailures)
		assert.Equal(t, duration*2, metrics.AverageRPCTime)
		assert.Equal(t, map[string]int64{
			"suix_getAllBalances":  2,
			"suix_getCoinMetadata": 1,
		}, metrics.RPCCallsByName)
	})

	t.Run("SnapshotIsACopy", func(t *testing.T) {
		snapshot := collector.GetMetrics()
		snapshot.RPCCallsByName["suix_getAllBalances"] = 99

		assert.Equal(t, int64(2), collector.GetMetrics().RPCCallsByName["suix_getAllBalances"])
	})

	t.Run("SuccessRate", func(t *testing.T) {
		collector.Reset()

		collector.RecordRequest()
		collector.RecordRequestComplete(10*time.Millisecond, true)

		collector.RecordRequest()
		collector.RecordRequestComplete(20*time.Millisecond, true)

		collector.RecordRequest()
		collector.RecordRequestComplete(30*time.Millisecond, false)

		assert.InDelta(t, 66.67, collector.GetSuccessRate(), 0.1)
	})

	t.Run("Reset", func(t *testing.T) {
		collector.Reset()

		metrics := collector.GetMetrics()
		assert.Equal(t, int64(0), metrics.TotalRequests)
		assert.Equal(t, int64(0), metrics.SuccessfulRequests)
		assert.Equal(t, int64(0), metrics.RPCCalls)
		assert.Empty(t, metrics.RPCCallsByName)
		assert.Less(t, collector.GetUptime(), time.Minute)
	})
}

func TestMetricsCollectorConcurrent(t *testing.T) {
	collector := NewMetricsCollector()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			collector.RecordRequest()
			collector.RecordRPCCall("suix_getAllBalances", time.Millisecond, true)
			collector.RecordRequestComplete(time.Millisecond, true)
		}()
	}
	wg.Wait()

	metrics := collector.GetMetrics()
	assert.Equal(t, int64(50), metrics.TotalRequests)
	assert.Equal(t, int64(50), metrics.RPCCalls)
	assert.Equal(t, int64(0), metrics.ActiveRequests)
	assert.Equal(t, int64(50), metrics.RPCCallsByName["suix_getAllBalances"])
}
