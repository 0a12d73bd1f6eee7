package models

// MessageResponse is the body of the readiness and ping endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the only error body callers ever see. It carries a fixed
// public message and never the upstream cause.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Public error messages returned by the query endpoints
const (
	MessageBalanceFailed = "Failed to fetch balance from external API"
	MessageCoinFailed    = "Failed to fetch coin data from external API"
	MessageInternal      = "Internal server error"
)
