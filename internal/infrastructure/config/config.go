package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
)

// Config holds all configuration for the application
type Config struct {
	Environment string        `mapstructure:"environment"`
	Logger      LoggerConfig  `mapstructure:"logger"`
	Payment     PaymentConfig `mapstructure:"payment"`
	Auth        AuthConfig    `mapstructure:"auth"`
	Export      ExportConfig  `mapstructure:"export"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
	Output string `mapstructure:"output"` // stderr, stdout, none or a file path
}

// PaymentConfig contains payment processing settings
type PaymentConfig struct {
	MaxAmount      string `mapstructure:"maxAmount"` // per-transaction limit, decimal string
	LogFile        string `mapstructure:"logFile"`
	CurrencySymbol string `mapstructure:"currencySymbol"`
}

// AuthConfig contains registration and login settings
type AuthConfig struct {
	BcryptCost         int  `mapstructure:"bcryptCost"`
	UniquePhoneNumbers bool `mapstructure:"uniquePhoneNumbers"`
}

// ExportConfig contains receipt and statement export settings
type ExportConfig struct {
	Directory     string `mapstructure:"directory"`
	CurrencyLabel string `mapstructure:"currencyLabel"` // used in PDFs, which cannot render every symbol
}

// TransactionLimit parses the configured per-transaction limit
func (c PaymentConfig) TransactionLimit() (decimal.Decimal, error) {
	limit, err := entity.ParsePositiveAmount(c.MaxAmount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("payment.maxAmount: %w", err)
	}
	return limit, nil
}

// Validate checks values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	if _, err := c.Payment.TransactionLimit(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Payment.LogFile) == "" {
		return fmt.Errorf("payment.logFile must not be empty")
	}

	switch strings.ToLower(c.Logger.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logger.format must be json or console, got %q", c.Logger.Format)
	}

	switch strings.ToLower(c.Logger.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logger.level must be debug, info, warn or error, got %q", c.Logger.Level)
	}

	if c.Auth.BcryptCost != 0 && (c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31) {
		return fmt.Errorf("auth.bcryptCost must be between 4 and 31, got %d", c.Auth.BcryptCost)
	}

	return nil
}
