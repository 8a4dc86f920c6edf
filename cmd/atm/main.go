package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kelseyhightower/envconfig"

	"github.com/ormanli/atm-aspects/internal"
	"github.com/ormanli/atm-aspects/internal/config"
)

func main() {
	code := 0
	defer func() {
		os.Exit(code)
	}()

	ctx, cncl := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cncl()

	var c config.Config

	err := envconfig.Process("app", &c)
	if err != nil {
		slog.Error("Can't process configuration", "error", err.Error())
		code = 1
		return
	}

	slog.Info("Starting ATM", "withdrawLimit", c.WithdrawLimit, "notificationMode", c.NotificationMode)

	err = internal.Run(ctx, c)
	if err != nil {
		slog.Error("Run failed", "error", err.Error())
		code = 1
		return
	}
}
