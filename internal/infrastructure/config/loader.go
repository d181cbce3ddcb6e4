package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of environment variables that override config keys,
// e.g. PAY_PAYMENT_MAXAMOUNT overrides payment.maxAmount
const EnvPrefix = "PAY"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../.env",
	"../configs/.env",
}

// LoadOptions selects where configuration is read from
type LoadOptions struct {
	Environment string   // overrides PAY_ENV
	ConfigFile  string   // explicit file; skips the search paths
	SearchPaths []string // defaults to ConfigPaths
}

// Load reads defaults, then the optional yaml file, then environment overrides
func Load(opts LoadOptions) (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: Could not load .env file:", err)
	}

	env := opts.Environment
	if env == "" {
		env = getEnvironment()
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(env)
		paths := opts.SearchPaths
		if len(paths) == 0 {
			paths = ConfigPaths
		}
		for _, path := range paths {
			v.AddConfigPath(path)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// The file is optional unless it was named explicitly
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadDotEnvFile loads the first .env file found; a missing file is not an error
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
	return nil
}

// setDefaults sets default values so every key is known to viper and overridable from env
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stderr")

	v.SetDefault("payment.maxAmount", "5000")
	v.SetDefault("payment.logFile", "PaymentLog.txt")
	v.SetDefault("payment.currencySymbol", "₹")

	v.SetDefault("auth.bcryptCost", 10)
	v.SetDefault("auth.uniquePhoneNumbers", false)

	v.SetDefault("export.directory", "exports")
	v.SetDefault("export.currencyLabel", "INR ")
}

// getEnvironment determines the environment to use based on PAY_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides applies short aliases for the most commonly changed keys
func processEnvOverrides(v *viper.Viper) {
	if maxAmount := os.Getenv("PAY_MAX_AMOUNT"); maxAmount != "" {
		v.Set("payment.maxAmount", maxAmount)
	}
	if logFile := os.Getenv("PAY_LOG_FILE"); logFile != "" {
		v.Set("payment.logFile", logFile)
	}
	if exportDir := os.Getenv("PAY_EXPORT_DIR"); exportDir != "" {
		v.Set("export.directory", exportDir)
	}
	if logLevel := os.Getenv("PAY_LOG_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}
}
