package services

import (
	"context"
	"encoding/json"
	"time"

	"sui-balance-api/pkg/logger"
	"sui-balance-api/pkg/metrics"

	"go.uber.org/zap"
)

// QueryService forwards each query to the upstream node exactly once and
// records how the call went. It holds no per-request state.
type QueryService struct {
	upstream ChainQuerier
	metrics  *metrics.MetricsCollector
}

// NewQueryService creates a QueryService in front of upstream
func NewQueryService(upstream ChainQuerier, collector *metrics.MetricsCollector) *QueryService {
	if collector == nil {
		collector = metrics.NewMetricsCollector()
	}
	return &QueryService{
		upstream: upstream,
		metrics:  collector,
	}
}

// GetBalances forwards an all-balances query for address
func (qs *QueryService) GetBalances(ctx context.Context, address string) (json.RawMessage, error) {
	return qs.observe(ctx, MethodGetAllBalances, zap.String("address", address), func(ctx context.Context) (json.RawMessage, error) {
		return qs.upstream.GetBalances(ctx, address)
	})
}

// GetCoinMetadata forwards a coin metadata query for coinType
func (qs *QueryService) GetCoinMetadata(ctx context.Context, coinType string) (json.RawMessage, error) {
	return qs.observe(ctx, MethodGetCoinMetadata, zap.String("coin_type", coinType), func(ctx context.Context) (json.RawMessage, error) {
		return qs.upstream.GetCoinMetadata(ctx, coinType)
	})
}

func (qs *QueryService) observe(
	ctx context.Context,
	method string,
	subject zap.Field,
	call func(context.Context) (json.RawMessage, error),
) (json.RawMessage, error) {
	log := logger.GetLogger().WithContext(ctx)
	start := time.Now()

	payload, err := call(ctx)
	duration := time.Since(start)
	qs.metrics.RecordRPCCall(method, duration, err == nil)

	if err != nil {
		log.Warn("Upstream call failed",
			zap.String("rpc_method", method),
			subject,
			zap.String("failure_kind", FailureKind(err)),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	log.Debug("Upstream call succeeded",
		zap.String("rpc_method", method),
		subject,
		zap.Duration("duration", duration),
		zap.Int("payload_bytes", len(payload)),
	)
	return payload, nil
}

// GetMetricsCollector returns the collector shared with the HTTP middleware
func (qs *QueryService) GetMetricsCollector() *metrics.MetricsCollector {
	return qs.metrics
}

// GetPerformanceStats summarises request and upstream metrics
func (qs *QueryService) GetPerformanceStats() map[string]interface{} {
	m := qs.metrics.GetMetrics()
	return map[string]interface{}{
		"metrics":      m,
		"success_rate": qs.metrics.GetSuccessRate(),
		"uptime":       qs.metrics.GetUptime().String(),
	}
}
