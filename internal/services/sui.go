package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sui-balance-api/internal/config"

	"github.com/ethereum/go-ethereum/rpc"
)

// Sui JSON-RPC methods used by the API
const (
	MethodGetAllBalances     = "suix_getAllBalances"
	MethodGetCoinMetadata    = "suix_getCoinMetadata"
	MethodGetChainIdentifier = "sui_getChainIdentifier"
)

// SuiClient talks JSON-RPC 2.0 to a single Sui full node. Each query is one
// upstream call; nothing is cached or retried.
type SuiClient struct {
	client   *rpc.Client
	endpoint string
}

// NewSuiClient creates a client for the configured node. For HTTP endpoints
// no connection is made until the first call.
func NewSuiClient(ctx context.Context, cfg *config.RPCConfig) (*SuiClient, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, config.ErrMissingRPCURL
	}

	client, err := rpc.DialContext(ctx, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sui RPC client: %w", err)
	}

	return &SuiClient{
		client:   client,
		endpoint: cfg.Endpoint,
	}, nil
}

// GetBalances returns every coin balance owned by address
func (s *SuiClient) GetBalances(ctx context.Context, address string) (json.RawMessage, error) {
	return s.call(ctx, MethodGetAllBalances, address)
}

// GetCoinMetadata returns name, symbol, decimals, description and icon of coinType
func (s *SuiClient) GetCoinMetadata(ctx context.Context, coinType string) (json.RawMessage, error) {
	return s.call(ctx, MethodGetCoinMetadata, coinType)
}

// Ping asks the node for its chain identifier
func (s *SuiClient) Ping(ctx context.Context) error {
	var chainID string
	if err := s.client.CallContext(ctx, &chainID, MethodGetChainIdentifier); err != nil {
		return fmt.Errorf("%s: %w", MethodGetChainIdentifier, err)
	}
	return nil
}

// Endpoint returns the node URL the client was built with
func (s *SuiClient) Endpoint() string {
	return s.endpoint
}

// Close releases the underlying RPC client
func (s *SuiClient) Close() {
	s.client.Close()
}

func (s *SuiClient) call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	var result json.RawMessage
	if err := s.client.CallContext(ctx, &result, method, params...); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return result, nil
}

// FailureKind names the class of an upstream failure for logs and metrics.
// Callers of the API never see it.
func FailureKind(err error) string {
	var (
		httpErr rpc.HTTPError
		rpcErr  rpc.Error
	)

	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &httpErr):
		return fmt.Sprintf("http_%d", httpErr.StatusCode)
	case errors.As(err, &rpcErr):
		return fmt.Sprintf("rpc_%d", rpcErr.ErrorCode())
	case errors.Is(err, rpc.ErrNoResult):
		return "no_result"
	default:
		return "transport"
	}
}
