package atm

import (
	"context"
	"fmt"
)

// Invoker runs a named operation.
type Invoker interface {
	Invoke(ctx context.Context, operation string, params ...any) (any, error)
}

// Service is the typed entry point to the ATM operations.
type Service struct {
	invoker Invoker
}

func NewService(invoker Invoker) *Service {
	return &Service{invoker: invoker}
}

func (s *Service) Withdraw(ctx context.Context, amount int) (string, error) {
	return s.invokeString(ctx, OpWithdraw, amount)
}

func (s *Service) Deposit(ctx context.Context, amount int) error {
	_, err := s.invoker.Invoke(ctx, OpDeposit, amount)
	return err
}

func (s *Service) Balance(ctx context.Context) (string, error) {
	return s.invokeString(ctx, OpBalance)
}

func (s *Service) invokeString(ctx context.Context, operation string, params ...any) (string, error) {
	result, err := s.invoker.Invoke(ctx, operation, params...)
	if err != nil {
		return "", err
	}

	out, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s returned %T", ErrUnexpectedResult, operation, result)
	}

	return out, nil
}
