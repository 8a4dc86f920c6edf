package atm

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
)

// Operation names served by the ATM.
const (
	OpWithdraw = "withdraw"
	OpDeposit  = "deposit"
	OpBalance  = "balance"
)

// Teller is the business side of the ATM. It knows nothing about PINs, timers or receipts.
type Teller interface {
	Withdraw(amount int) string
	Deposit(amount int)
	Balance() string
}

// MachineConfig controls how long the simulated machine takes to dispense cash.
type MachineConfig struct {
	MinAmountToWait int
	MaxAmountToWait int
}

// Machine simulates the cash handling hardware.
type Machine struct {
	cfg    MachineConfig
	clock  clock.Clock
	logger *slog.Logger
}

func NewMachine(cfg MachineConfig, clk clock.Clock, logger *slog.Logger) *Machine {
	return &Machine{cfg: cfg, clock: clk, logger: logger}
}

// Withdraw dispenses amount. Amounts above the minimum take one millisecond per unit, capped at the maximum.
func (m *Machine) Withdraw(amount int) string {
	m.logger.Info("Dispensing cash", "amount", amount)

	if amount > m.cfg.MinAmountToWait {
		wait := amount
		if wait > m.cfg.MaxAmountToWait {
			wait = m.cfg.MaxAmountToWait
		}
		m.clock.Sleep(time.Duration(wait) * time.Millisecond)
	}

	return fmt.Sprintf("SUCCESS: Withdrew %d", amount)
}

func (m *Machine) Deposit(amount int) {
	m.logger.Info("Accepting cash", "amount", amount)
}

func (m *Machine) Balance() string {
	m.logger.Info("Showing balance on screen")

	return "Showing balance on screen"
}
