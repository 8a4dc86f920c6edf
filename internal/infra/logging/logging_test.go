package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ormanli/atm-aspects/internal/config"
)

func Test_Setup(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.Config
		assertFunc func(*testing.T, string)
	}{
		{
			name: "debug enabled",
			cfg:  config.Config{InitDebug: true},
			assertFunc: func(t *testing.T, out string) {
				assert.Contains(t, out, "Initializing debug level logging")
				assert.Contains(t, out, "debug message")
			},
		},
		{
			name: "debug disabled",
			cfg:  config.Config{},
			assertFunc: func(t *testing.T, out string) {
				assert.NotContains(t, out, "debug message")
				assert.Contains(t, out, "info message")
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer

			logger := Setup(test.cfg, &buf)
			logger.Debug("debug message")
			logger.Info("info message")

			test.assertFunc(t, buf.String())
		})
	}
}
