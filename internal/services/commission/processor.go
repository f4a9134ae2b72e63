package commission

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"commission/internal/logger"
	"commission/internal/models"
	"commission/internal/services/fee"

	"github.com/google/uuid"
)

// Option configures a Processor.
type Option func(*Processor)

// WithCurrency overrides the single accepted currency code.
func WithCurrency(code string) Option {
	return func(p *Processor) {
		if code != "" {
			p.currency = code
		}
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m MetricsCollector) Option {
	return func(p *Processor) {
		if m != nil {
			p.metrics = m
		}
	}
}

// Processor applies fee policies to transaction batches. It holds no state
// between calls to Process.
type Processor struct {
	policies models.Policies
	currency string
	metrics  MetricsCollector
}

// NewProcessor creates a processor for the given policies.
func NewProcessor(policies models.Policies, opts ...Option) *Processor {
	p := &Processor{
		policies: policies,
		currency: DefaultCurrency,
		metrics:  &NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process computes one fee per transaction, in input order. It fails on the
// first transaction it cannot price and returns no results in that case.
func (p *Processor) Process(ctx context.Context, txs []models.Transaction) ([]Result, error) {
	log := logger.FromContext(ctx).With().Str("run_id", uuid.NewString()).Logger()
	ledger := NewWeeklyLedger()
	results := make([]Result, 0, len(txs))

	for i, tx := range txs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := p.price(tx, ledger)
		if err != nil {
			log.Error().Err(err).Int("index", i).Str("user_id", string(tx.UserID)).Msg("transaction rejected")
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		p.metrics.RecordFee(res.Category, res.Fee)
		results = append(results, res)
	}

	log.Debug().Int("transactions", len(results)).Int("ledger_cells", ledger.Len()).Msg("batch processed")
	return results, nil
}

func (p *Processor) price(tx models.Transaction, ledger *WeeklyLedger) (Result, error) {
	amount := tx.Operation.Amount

	if tx.Operation.Currency != p.currency {
		p.metrics.RecordError("unsupported_currency")
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, tx.Operation.Currency)
	}

	switch {
	case tx.Type == models.OperationTypeCashIn:
		return Result{
			Category: CategoryCashIn,
			Fee:      fee.CashIn(amount, p.policies.CashIn),
		}, nil

	case tx.Type == models.OperationTypeCashOut && tx.UserType == models.UserTypeNatural:
		week := WeekNumber(tx.Date.Time)
		withdrawn := ledger.Withdrawn(tx.UserID, week)
		res := Result{
			Category: CategoryCashOutNatural,
			Fee:      fee.CashOutNatural(amount, withdrawn, p.policies.CashOutNatural),
		}
		ledger.Add(tx.UserID, week, amount)
		return res, nil

	case tx.Type == models.OperationTypeCashOut && tx.UserType == models.UserTypeJuridical:
		return Result{
			Category: CategoryCashOutJuridical,
			Fee:      fee.CashOutJuridical(amount, p.policies.CashOutJuridical),
		}, nil
	}

	p.metrics.RecordError("unsupported_combination")
	return Result{}, fmt.Errorf("%w: type %q, user_type %q", ErrUnsupportedCombination, tx.Type, tx.UserType)
}

// ProcessTo processes txs and writes one fee per line to w. Nothing is
// written unless the whole batch succeeds.
func (p *Processor) ProcessTo(ctx context.Context, w io.Writer, txs []models.Transaction) error {
	results, err := p.Process(ctx, txs)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, r := range results {
		if _, err := fmt.Fprintln(bw, r.String()); err != nil {
			return fmt.Errorf("write fee: %w", err)
		}
	}
	return bw.Flush()
}
