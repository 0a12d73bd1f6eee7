package handlers

import (
	"encoding/json"
	"net/http"

	"sui-balance-api/internal/models"
	"sui-balance-api/internal/services"
	"sui-balance-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChainHandler relays balance and coin metadata queries to the upstream node
type ChainHandler struct {
	querier services.ChainQuerier
}

// NewChainHandler creates a new ChainHandler instance
func NewChainHandler(querier services.ChainQuerier) *ChainHandler {
	return &ChainHandler{
		querier: querier,
	}
}

// GetBalance handles GET /api/balance/:address requests.
// The address is forwarded as is; the node decides whether it is valid.
func (h *ChainHandler) GetBalance(c *gin.Context) {
	log := logger.GetLogger().WithContext(c.Request.Context())
	address := c.Param("address")

	payload, err := h.querier.GetBalances(c.Request.Context(), address)
	if err != nil {
		appErr := models.NewUpstreamError(models.MessageBalanceFailed, err).
			WithContext("address", address)
		models.HandleError(c, appErr, log.Logger)
		return
	}

	log.Info("Balance request completed", zap.String("address", address))
	relay(c, payload)
}

// GetCoin handles GET /api/coin/:coinType requests
func (h *ChainHandler) GetCoin(c *gin.Context) {
	log := logger.GetLogger().WithContext(c.Request.Context())
	coinType := c.Param("coinType")

	payload, err := h.querier.GetCoinMetadata(c.Request.Context(), coinType)
	if err != nil {
		appErr := models.NewUpstreamError(models.MessageCoinFailed, err).
			WithContext("coin_type", coinType)
		models.HandleError(c, appErr, log.Logger)
		return
	}

	log.Info("Coin metadata request completed", zap.String("coin_type", coinType))
	relay(c, payload)
}

// relay writes the upstream result byte for byte
func relay(c *gin.Context, payload json.RawMessage) {
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
