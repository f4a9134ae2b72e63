// Command commission prints the commission fee of every transaction in a
// JSON input file, one fee per line, in input order.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"commission/internal/config"
	"commission/internal/logger"
	"commission/internal/services/commission"
	"commission/internal/services/policy"
)

var errUsage = errors.New("usage: commission <input.json>")

func main() {
	config.LoadEnv()
	cfg := config.Load()

	log := logger.New(cfg.Log.Level, cfg.Log.Format).With().Str("component", "cli").Logger()
	ctx := logger.WithContext(context.Background(), log)

	if err := run(ctx, cfg, os.Args[1:], os.Stdout); err != nil {
		log.Error().Err(err).Msg("commission run failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, args []string, out io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}

	txs, err := commission.ReadTransactionsFile(args[0])
	if err != nil {
		return err
	}

	provider := policy.NewProvider(policy.Endpoints{
		CashIn:           cfg.Policy.CashInURL,
		CashOutNatural:   cfg.Policy.CashOutNaturalURL,
		CashOutJuridical: cfg.Policy.CashOutJuridicalURL,
	}, cfg.Policy.Timeout)

	policies, err := provider.Fetch(ctx)
	if err != nil {
		return err
	}

	p := commission.NewProcessor(*policies, commission.WithCurrency(cfg.Currency))
	if err := p.ProcessTo(ctx, out, txs); err != nil {
		return fmt.Errorf("process %s: %w", args[0], err)
	}
	return nil
}
