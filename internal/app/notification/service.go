package notification

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/ormanli/atm-aspects/internal/pipeline"
)

// OpSend is the operation name of notification delivery.
const OpSend = "send"

// ValidateMessage rejects blank messages.
func ValidateMessage() pipeline.Advice {
	return pipeline.NewBefore("validate-message", func(_ context.Context, inv *pipeline.Invocation) error {
		message, err := pipeline.Arg[string](inv, 0)
		if err != nil {
			return err
		}

		if strings.TrimSpace(message) == "" {
			return ErrInvalidMessage
		}

		return nil
	})
}

// Register declares the send operation backed by sender.
func Register(registry *pipeline.Registry, sender Sender, common ...pipeline.Advice) error {
	err := registry.Handle(OpSend, func(ctx context.Context, inv *pipeline.Invocation) (any, error) {
		message, err := pipeline.Arg[string](inv, 0)
		if err != nil {
			return nil, err
		}
		return sender.Send(ctx, message)
	})
	if err != nil {
		return err
	}

	for _, advice := range slices.Concat(common, []pipeline.Advice{ValidateMessage()}) {
		if err := registry.Register(OpSend, advice); err != nil {
			return err
		}
	}

	return nil
}

// Invoker runs a named operation.
type Invoker interface {
	Invoke(ctx context.Context, operation string, params ...any) (any, error)
}

// Service is the typed entry point to notification delivery.
type Service struct {
	invoker Invoker
}

func NewService(invoker Invoker) *Service {
	return &Service{invoker: invoker}
}

func (s *Service) Notify(ctx context.Context, message string) (string, error) {
	result, err := s.invoker.Invoke(ctx, OpSend, message)
	if err != nil {
		return "", err
	}

	out, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("send returned %T", result)
	}

	return out, nil
}
