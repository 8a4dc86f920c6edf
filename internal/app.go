package internal

import (
	"context"
	"log/slog"
	"os"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"

	"github.com/ormanli/atm-aspects/internal/app/atm"
	"github.com/ormanli/atm-aspects/internal/app/notification"
	"github.com/ormanli/atm-aspects/internal/config"
	"github.com/ormanli/atm-aspects/internal/infra/logging"
	"github.com/ormanli/atm-aspects/internal/infra/metrics"
	"github.com/ormanli/atm-aspects/internal/infra/tracing"
	"github.com/ormanli/atm-aspects/internal/infra/transport/httpapi"
	"github.com/ormanli/atm-aspects/internal/infra/transport/tcp"
	"github.com/ormanli/atm-aspects/internal/pipeline"
)

type application struct {
	atm      *atm.Service
	notifier *notification.Service
	metrics  *metrics.Metrics
	pipeline *pipeline.Pipeline
}

// newApplication registers every operation and its advices and builds the pipeline.
func newApplication(cfg config.Config, logger *slog.Logger, clk clock.Clock, tracer tracing.Provider) (*application, error) {
	sender, err := notification.NewSender(cfg.NotificationMode, logger)
	if err != nil {
		return nil, err
	}

	m := metrics.New(clk)
	common := append([]pipeline.Advice{tracing.Advice(tracer)}, m.Advices()...)

	registry := pipeline.NewRegistry(logger, clk)

	machine := atm.NewMachine(atm.MachineConfig{
		MinAmountToWait: cfg.DispenseMinAmountToWait,
		MaxAmountToWait: cfg.DispenseMaxAmountToWait,
	}, clk, logger)

	err = atm.Register(registry, machine, atm.Aspects{
		Policy:  atm.MaxAmount(cfg.WithdrawLimit),
		Printer: atm.NewLogPrinter(logger),
		Report:  atm.LogDuration(logger),
		Clock:   clk,
		Logger:  logger,
		Common:  common,
	})
	if err != nil {
		return nil, err
	}

	err = notification.Register(registry, sender, common...)
	if err != nil {
		return nil, err
	}

	p := registry.Build()

	logger.Info("Pipeline built", "operations", p.Operations(), "notificationMode", cfg.NotificationMode)

	return &application{
		atm:      atm.NewService(p),
		notifier: notification.NewService(p),
		metrics:  m,
		pipeline: p,
	}, nil
}

// Run starts application with the passed configuration.
func Run(ctx context.Context, cfg config.Config) error {
	logger := logging.Setup(cfg, os.Stderr)
	clk := clock.New()

	tp, shutdownTracing, err := tracing.Setup(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.WithoutCancel(ctx)); err != nil {
			logger.Error("Tracing shutdown failed", "error", err)
		}
	}()

	app, err := newApplication(cfg, logger, clk, tp)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return tcp.NewTransport(cfg, app.atm, app.notifier, clk, logger).Start(ctx)
	})
	g.Go(func() error {
		return httpapi.NewServer(cfg, app.atm, app.notifier, app.metrics.Handler(), logger).Start(ctx)
	})

	return g.Wait()
}
