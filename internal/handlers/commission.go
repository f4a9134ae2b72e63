package handlers

import (
	"bytes"
	"context"
	"errors"

	"commission/internal/logger"
	"commission/internal/models"
	"commission/internal/services/commission"
	"commission/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// PolicyFetcher supplies the fee policies for one run.
type PolicyFetcher interface {
	Fetch(ctx context.Context) (*models.Policies, error)
}

type CommissionHandler struct {
	policies PolicyFetcher
	currency string
	metrics  commission.MetricsCollector
	log      zerolog.Logger
}

func NewCommissionHandler(policies PolicyFetcher, currency string, metrics commission.MetricsCollector, log zerolog.Logger) *CommissionHandler {
	if policies == nil {
		panic("policy fetcher is required")
	}
	return &CommissionHandler{
		policies: policies,
		currency: currency,
		metrics:  metrics,
		log:      log,
	}
}

// Calculate prices a JSON array of transactions. Every request is a separate
// run with freshly fetched policies and an empty weekly ledger.
func (h *CommissionHandler) Calculate(c *fiber.Ctx) error {
	txs, err := commission.ReadTransactions(bytes.NewReader(c.Body()))
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	ctx := logger.WithContext(c.UserContext(), h.log)
	policies, err := h.policies.Fetch(ctx)
	if err != nil {
		return response.BadGateway(c, err.Error())
	}

	p := commission.NewProcessor(*policies, commission.WithCurrency(h.currency), commission.WithMetrics(h.metrics))
	results, err := p.Process(ctx, txs)
	if err != nil {
		if errors.Is(err, commission.ErrUnsupportedCurrency) || errors.Is(err, commission.ErrUnsupportedCombination) {
			return response.BadRequest(c, err.Error())
		}
		return response.ServerError(c, err.Error())
	}

	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = r.String()
	}
	return response.Lines(c, lines)
}
