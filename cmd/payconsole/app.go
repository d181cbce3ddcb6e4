package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/payment-console/internal/domain/usecase/export"
	"github.com/amirhossein-jamali/payment-console/internal/domain/usecase/payment"
	"github.com/amirhossein-jamali/payment-console/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/payment-console/internal/infrastructure/adapter/console"
	exportAdapter "github.com/amirhossein-jamali/payment-console/internal/infrastructure/adapter/export"
	"github.com/amirhossein-jamali/payment-console/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/payment-console/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/payment-console/internal/infrastructure/adapter/paymentlog"
	"github.com/amirhossein-jamali/payment-console/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/payment-console/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/payment-console/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/payment-console/internal/infrastructure/config"
)

type runOptions struct {
	configFile  string
	environment string
}

func run(ctx context.Context, opts runOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(config.LoadOptions{
		Environment: opts.environment,
		ConfigFile:  opts.configFile,
	})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create logger
	appLogger, err := logger.New(logger.Options{
		Level:  cfg.Logger.Level,
		Output: cfg.Logger.Output,
		Format: cfg.Logger.Format,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() {
		_ = appLogger.Flush()
	}()

	limit, err := cfg.Payment.TransactionLimit()
	if err != nil {
		return err
	}

	// Initialize adapters
	tp := timeProvider.NewRealTimeProvider()
	ids := idgen.NewUUIDGenerator()
	userRepo := repository.NewUserRepository(appLogger)
	paymentLog := paymentlog.NewFileLog(cfg.Payment.LogFile, appLogger)
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Initialize use cases
	userUseCase := user.NewUserUseCase(userRepo, hasher, ids, tp, appLogger, user.NewSession()).
		WithUniquePhoneNumbers(cfg.Auth.UniquePhoneNumbers)
	paymentUseCase := payment.NewProcessor(userRepo, paymentLog, ids, tp, appLogger).
		WithLimit(limit)
	exportUseCase := export.NewExportUseCase(
		exportAdapter.NewPDFReceiptWriter(cfg.Export.Directory, cfg.Export.CurrencyLabel, appLogger),
		exportAdapter.NewXLSXStatementWriter(cfg.Export.Directory, tp, appLogger),
		appLogger,
	)

	appLogger.Info("Starting payment console", map[string]any{
		"environment": cfg.Environment,
		"max_amount":  cfg.Payment.MaxAmount,
		"payment_log": paymentLog.Path(),
	})

	shell := console.NewShell(
		userUseCase,
		paymentUseCase,
		exportUseCase,
		console.NewTerminalPrompter(),
		os.Stdout,
		cfg.Payment.CurrencySymbol,
		appLogger,
	)

	if err := shell.Run(ctx); err != nil && ctx.Err() == nil {
		appLogger.Error("Console stopped with error", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	appLogger.Info("Payment console stopped", map[string]any{
		"registered_users": userRepo.Count(),
	})
	return nil
}
