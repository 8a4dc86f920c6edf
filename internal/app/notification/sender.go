package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrUnknownMode    = errors.New("unknown notification mode")
	ErrInvalidMessage = errors.New("invalid message")
)

// Supported notification modes.
const (
	ModeEmail = "email"
	ModeSMS   = "sms"
	ModeLog   = "log"
)

// Sender delivers a notification message.
type Sender interface {
	Send(ctx context.Context, message string) (string, error)
}

type EmailSender struct{}

func (EmailSender) Send(_ context.Context, message string) (string, error) {
	return "Sending EMAIL:" + message, nil
}

type SMSSender struct{}

func (SMSSender) Send(_ context.Context, message string) (string, error) {
	return "Sending SMS:" + message, nil
}

// LogSender writes notifications to the logger instead of delivering them.
type LogSender struct {
	logger *slog.Logger
}

func (s LogSender) Send(ctx context.Context, message string) (string, error) {
	s.logger.InfoContext(ctx, "Notification", "message", message)

	return "Logged:" + message, nil
}

// NewSender returns the sender for mode. The mode is read once at startup.
func NewSender(mode string, logger *slog.Logger) (Sender, error) {
	switch mode {
	case ModeEmail:
		return EmailSender{}, nil
	case ModeSMS:
		return SMSSender{}, nil
	case ModeLog:
		return LogSender{logger: logger}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}
