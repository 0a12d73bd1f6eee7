package services

import (
	"context"
	"encoding/json"
)

// ChainQuerier is the read-only capability the route layer depends on.
// Payloads are the upstream node's result, untouched.
type ChainQuerier interface {
	GetBalances(ctx context.Context, address string) (json.RawMessage, error)
	GetCoinMetadata(ctx context.Context, coinType string) (json.RawMessage, error)
}

// Pinger reports whether the upstream node answers at all
type Pinger interface {
	Ping(ctx context.Context) error
}
