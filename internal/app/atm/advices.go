package atm

import (
	"context"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/ormanli/atm-aspects/internal/pipeline"
)

// AmountPolicy reports whether amount may be served without stricter verification.
type AmountPolicy func(amount int) bool

// MaxAmount accepts amounts up to and including limit.
func MaxAmount(limit int) AmountPolicy {
	return func(amount int) bool {
		return amount <= limit
	}
}

// ValidateAmount rejects negative amounts.
func ValidateAmount() pipeline.Advice {
	return pipeline.NewBefore("validate-amount", func(_ context.Context, inv *pipeline.Invocation) error {
		amount, err := pipeline.Arg[int](inv, 0)
		if err != nil {
			return err
		}

		if amount < 0 {
			return ErrInvalidAmount
		}

		return nil
	})
}

// VerifyPin asks for the PIN and rejects the call when policy refuses the amount.
func VerifyPin(policy AmountPolicy, logger *slog.Logger) pipeline.Advice {
	return pipeline.NewBefore("verify-pin", func(ctx context.Context, inv *pipeline.Invocation) error {
		amount, err := pipeline.Arg[int](inv, 0)
		if err != nil {
			return err
		}

		logger.InfoContext(ctx, "Asking user for PIN", "amount", amount)

		if !policy(amount) {
			logger.WarnContext(ctx, "High value transaction, PIN required", "amount", amount)
			return ErrPinRequired
		}

		logger.InfoContext(ctx, "PIN verified", "amount", amount)

		return nil
	})
}

// DurationReporter receives the time an operation took.
type DurationReporter func(ctx context.Context, operation string, elapsed time.Duration, err error)

// LogDuration reports durations to logger.
func LogDuration(logger *slog.Logger) DurationReporter {
	return func(ctx context.Context, operation string, elapsed time.Duration, err error) {
		if err != nil {
			logger.WarnContext(ctx, "Transaction failed", "operation", operation, "elapsed", elapsed, "error", err)
			return
		}
		logger.InfoContext(ctx, "Transaction finished", "operation", operation, "elapsed", elapsed)
	}
}

// MeasureTime times the rest of the chain without touching its result.
func MeasureTime(clk clock.Clock, report DurationReporter) pipeline.Advice {
	return pipeline.NewAround("measure-time", func(ctx context.Context, inv *pipeline.Invocation, proceed pipeline.ProceedFunc) (any, error) {
		start := clk.Now()

		result, err := proceed(ctx)

		report(ctx, inv.Operation(), clk.Since(start), err)

		return result, err
	})
}
