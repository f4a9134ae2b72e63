package policy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"commission/internal/logger"
	"commission/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds a single policy request.
const DefaultTimeout = 10 * time.Second

// Endpoints lists where each policy document lives.
type Endpoints struct {
	CashIn           string
	CashOutNatural   string
	CashOutJuridical string
}

// Provider fetches the fee policies for a run.
type Provider struct {
	endpoints Endpoints
	timeout   time.Duration
}

// NewProvider creates a provider for the given endpoints.
func NewProvider(endpoints Endpoints, timeout time.Duration) *Provider {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Provider{endpoints: endpoints, timeout: timeout}
}

// Fetch retrieves the three policy documents concurrently. Either all three
// are returned or an error wrapping ErrConfigFetch.
func (p *Provider) Fetch(ctx context.Context) (*models.Policies, error) {
	var policies models.Policies
	log := logger.FromContext(ctx)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.get(ctx, "cash-in", p.endpoints.CashIn, &policies.CashIn)
	})
	g.Go(func() error {
		return p.get(ctx, "cash-out-natural", p.endpoints.CashOutNatural, &policies.CashOutNatural)
	})
	g.Go(func() error {
		return p.get(ctx, "cash-out-juridical", p.endpoints.CashOutJuridical, &policies.CashOutJuridical)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("fee configuration unavailable")
		return nil, err
	}

	log.Debug().Dur("duration", time.Since(start)).Msg("fee configuration loaded")
	return &policies, nil
}

func (p *Provider) get(ctx context.Context, name, url string, dest interface{}) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfigFetch, name, err)
	}

	code, body, errs := fiber.Get(url).Timeout(p.timeout).Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s: %v", ErrConfigFetch, name, errors.Join(errs...))
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return fmt.Errorf("%w: %s: unexpected status %d", ErrConfigFetch, name, code)
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: %s: decode: %v", ErrConfigFetch, name, err)
	}
	return nil
}
