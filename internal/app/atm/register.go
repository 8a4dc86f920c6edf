package atm

import (
	"context"
	"log/slog"
	"slices"

	"github.com/benbjohnson/clock"

	"github.com/ormanli/atm-aspects/internal/pipeline"
)

// Aspects holds the cross-cutting behaviour attached to ATM operations.
type Aspects struct {
	Policy  AmountPolicy
	Printer Printer
	Report  DurationReporter
	Clock   clock.Clock
	Logger  *slog.Logger
	// Common advices are attached to every ATM operation ahead of the ATM specific ones.
	Common []pipeline.Advice
}

// Register declares the ATM operations on registry and attaches their advices.
func Register(registry *pipeline.Registry, teller Teller, aspects Aspects) error {
	bodies := map[string]pipeline.BodyFunc{
		OpWithdraw: func(_ context.Context, inv *pipeline.Invocation) (any, error) {
			amount, err := pipeline.Arg[int](inv, 0)
			if err != nil {
				return nil, err
			}
			return teller.Withdraw(amount), nil
		},
		OpDeposit: func(_ context.Context, inv *pipeline.Invocation) (any, error) {
			amount, err := pipeline.Arg[int](inv, 0)
			if err != nil {
				return nil, err
			}
			teller.Deposit(amount)
			return nil, nil
		},
		OpBalance: func(context.Context, *pipeline.Invocation) (any, error) {
			return teller.Balance(), nil
		},
	}

	advices := map[string][]pipeline.Advice{
		OpWithdraw: {
			ValidateAmount(),
			VerifyPin(aspects.Policy, aspects.Logger),
			MeasureTime(aspects.Clock, aspects.Report),
		},
		OpDeposit: {
			ValidateAmount(),
			PrintReceipt(aspects.Printer, aspects.Clock),
		},
	}

	for _, name := range []string{OpWithdraw, OpDeposit, OpBalance} {
		if err := registry.Handle(name, bodies[name]); err != nil {
			return err
		}

		for _, advice := range slices.Concat(aspects.Common, advices[name]) {
			if err := registry.Register(name, advice); err != nil {
				return err
			}
		}
	}

	return nil
}
