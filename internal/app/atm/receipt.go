package atm

import (
	"context"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/ormanli/atm-aspects/internal/pipeline"
)

// Receipt is printed after a successful transaction.
type Receipt struct {
	ID        uuid.UUID
	Operation string
	Amount    int
	Message   string
	PrintedAt time.Time
}

// Printer outputs receipts.
type Printer interface {
	Print(ctx context.Context, receipt Receipt) error
}

// LogPrinter prints receipts to a logger.
type LogPrinter struct {
	logger *slog.Logger
}

func NewLogPrinter(logger *slog.Logger) *LogPrinter {
	return &LogPrinter{logger: logger}
}

func (p *LogPrinter) Print(ctx context.Context, receipt Receipt) error {
	p.logger.InfoContext(ctx, "Printing receipt",
		"receipt", receipt.ID.String(),
		"operation", receipt.Operation,
		"amount", receipt.Amount,
		"message", receipt.Message,
		"printedAt", receipt.PrintedAt,
	)

	return nil
}

// PrintReceipt prints one receipt for every successful deposit.
func PrintReceipt(printer Printer, clk clock.Clock) pipeline.Advice {
	return pipeline.NewAfter("print-receipt", func(ctx context.Context, inv *pipeline.Invocation) error {
		amount, err := pipeline.Arg[int](inv, 0)
		if err != nil {
			return err
		}

		return printer.Print(ctx, Receipt{
			ID:        uuid.New(),
			Operation: inv.Operation(),
			Amount:    amount,
			Message:   "Deposit Successful",
			PrintedAt: clk.Now(),
		})
	})
}
