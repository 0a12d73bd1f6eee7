package services

import (
	"context"
	"fmt"
	"time"
)

// HealthStatus represents the health status of a service
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthCheck represents a health check result
type HealthCheck struct {
	Service      string        `json:"service"`
	Status       HealthStatus  `json:"status"`
	Message      string        `json:"message,omitempty"`
	ResponseTime time.Duration `json:"response_time"`
	Timestamp    time.Time     `json:"timestamp"`
}

// UpstreamHealthChecker reports whether the Sui node answers
type UpstreamHealthChecker struct {
	pinger  Pinger
	timeout time.Duration
}

// NewUpstreamHealthChecker creates a checker that gives the node timeout to answer
func NewUpstreamHealthChecker(pinger Pinger, timeout time.Duration) *UpstreamHealthChecker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &UpstreamHealthChecker{
		pinger:  pinger,
		timeout: timeout,
	}
}

// CheckHealth pings the upstream node once
func (uhc *UpstreamHealthChecker) CheckHealth(ctx context.Context) *HealthCheck {
	start := time.Now()

	healthCheck := &HealthCheck{
		Service:   "sui_rpc",
		Timestamp: start,
	}

	ctx, cancel := context.WithTimeout(ctx, uhc.timeout)
	defer cancel()

	if err := uhc.pinger.Ping(ctx); err != nil {
		healthCheck.Status = HealthStatusUnhealthy
		healthCheck.Message = fmt.Sprintf("ping failed: %s", FailureKind(err))
		healthCheck.ResponseTime = time.Since(start)
		return healthCheck
	}

	healthCheck.Status = HealthStatusHealthy
	healthCheck.Message = "node reachable"
	healthCheck.ResponseTime = time.Since(start)

	return healthCheck
}
