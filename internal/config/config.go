package config

import (
	"time"
)

// Config defines configuration of application. Values are parsed from environment variables.
type Config struct {
	ServerPort                    int           `split_words:"true" default:"11111"`
	ServerHost                    string        `split_words:"true" default:"localhost"`
	HTTPPort                      int           `split_words:"true" default:"8080"`
	HTTPHost                      string        `split_words:"true" default:"localhost"`
	ServerGracefulShutdownTimeout time.Duration `split_words:"true" default:"3s"`
	InitDebug                     bool          `split_words:"true"`
	TraceStdout                   bool          `split_words:"true"`
	WithdrawLimit                 int           `split_words:"true" default:"10000"`
	DispenseMinAmountToWait       int           `split_words:"true" default:"100"`
	DispenseMaxAmountToWait       int           `split_words:"true" default:"1000"`
	NotificationMode              string        `split_words:"true" default:"email"`
}
