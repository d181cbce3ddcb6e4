package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(LoadOptions{Environment: Test, SearchPaths: []string{t.TempDir()}})
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "stderr", cfg.Logger.Output)
	assert.Equal(t, "PaymentLog.txt", cfg.Payment.LogFile)
	assert.Equal(t, "₹", cfg.Payment.CurrencySymbol)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.False(t, cfg.Auth.UniquePhoneNumbers)
	assert.Equal(t, "exports", cfg.Export.Directory)

	limit, err := cfg.Payment.TransactionLimit()
	require.NoError(t, err)
	assert.True(t, limit.Equal(decimal.NewFromInt(5000)))
}

func TestLoadEnvironmentFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "staging.yaml", `
logger:
  level: debug
  format: json
  output: none
payment:
  maxAmount: 2500.50
  logFile: /var/log/payments.txt
auth:
  uniquePhoneNumbers: true
`)

	cfg, err := Load(LoadOptions{Environment: "staging", SearchPaths: []string{dir}})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "none", cfg.Logger.Output)
	assert.Equal(t, "/var/log/payments.txt", cfg.Payment.LogFile)
	assert.True(t, cfg.Auth.UniquePhoneNumbers)

	limit, err := cfg.Payment.TransactionLimit()
	require.NoError(t, err)
	assert.Equal(t, "2500.50", limit.StringFixed(2))
}

func TestLoadEnvironmentSelectedByVariable(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "production.yaml", "logger:\n  format: json\n")
	t.Setenv("PAY_ENV", "Production")

	cfg, err := Load(LoadOptions{SearchPaths: []string{dir}})
	require.NoError(t, err)

	assert.Equal(t, Production, cfg.Environment)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "test.yaml", "payment:\n  maxAmount: 100\n")

	t.Setenv("PAY_PAYMENT_CURRENCYSYMBOL", "$")
	t.Setenv("PAY_AUTH_UNIQUEPHONENUMBERS", "true")
	t.Setenv("PAY_MAX_AMOUNT", "750")
	t.Setenv("PAY_LOG_FILE", "custom.log")
	t.Setenv("PAY_EXPORT_DIR", "out")

	cfg, err := Load(LoadOptions{Environment: Test, SearchPaths: []string{dir}})
	require.NoError(t, err)

	assert.Equal(t, "$", cfg.Payment.CurrencySymbol)
	assert.True(t, cfg.Auth.UniquePhoneNumbers)
	assert.Equal(t, "750", cfg.Payment.MaxAmount)
	assert.Equal(t, "custom.log", cfg.Payment.LogFile)
	assert.Equal(t, "out", cfg.Export.Directory)
}

func TestLoadExplicitFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "custom.yaml", "payment:\n  currencySymbol: EUR\n")

	cfg, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Payment.CurrencySymbol)

	_, err = Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"Negative limit", "payment:\n  maxAmount: -1\n"},
		{"Non-numeric limit", "payment:\n  maxAmount: lots\n"},
		{"Unknown log format", "logger:\n  format: xml\n"},
		{"Unknown log level", "logger:\n  level: loud\n"},
		{"Bcrypt cost too high", "auth:\n  bcryptCost: 40\n"},
		{"Empty log file", "payment:\n  logFile: \"\"\n"},
		{"Malformed yaml", "payment: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, "test.yaml", tc.content)

			_, err := Load(LoadOptions{Environment: Test, SearchPaths: []string{dir}})
			assert.Error(t, err)
		})
	}
}
