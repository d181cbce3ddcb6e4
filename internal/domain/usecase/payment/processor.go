package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-console/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-console/internal/domain/port/usecase"
)

// Processor runs payment attempts: limit check, instrument validation,
// confirmation, status transition, history append and logging
type Processor struct {
	userRepo     persistence.UserRepository
	paymentLog   persistence.PaymentLog
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validator    *InstrumentValidator
	limit        decimal.Decimal
}

// NewProcessor creates a new payment Processor with the default transaction limit
func NewProcessor(
	userRepo persistence.UserRepository,
	paymentLog persistence.PaymentLog,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Processor {
	return &Processor{
		userRepo:     userRepo,
		paymentLog:   paymentLog,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
		validator:    NewInstrumentValidator(),
		limit:        entity.DefaultTransactionLimit,
	}
}

// WithLimit sets the maximum amount of a single payment
func (p *Processor) WithLimit(limit decimal.Decimal) *Processor {
	if limit.IsPositive() {
		p.limit = limit
	}
	return p
}

// Limit implements usecase.PaymentUseCase
func (p *Processor) Limit() decimal.Decimal {
	return p.limit
}

// CheckAmount implements usecase.PaymentUseCase
func (p *Processor) CheckAmount(kind entity.PaymentKind, amount decimal.Decimal) error {
	if _, err := entity.ParsePaymentKind(string(kind)); err != nil {
		return errs.NewAttemptError(string(kind), entity.FormatAmount(amount), err)
	}
	if !amount.IsPositive() {
		return errs.NewAttemptError(string(kind), entity.FormatAmount(amount), errs.ErrInvalidAmount)
	}
	if amount.GreaterThan(p.limit) {
		return errs.NewAttemptError(string(kind), entity.FormatAmount(amount),
			fmt.Errorf("%w: maximum is %s", errs.ErrLimitExceeded, entity.FormatAmount(p.limit)))
	}
	return nil
}

// CheckInstrument implements usecase.PaymentUseCase
func (p *Processor) CheckInstrument(kind entity.PaymentKind, value string) error {
	if err := p.validator.ValidateInstrument(kind, value); err != nil {
		return errs.NewAttemptError(string(kind), "", err)
	}
	return nil
}

// Attempt implements usecase.PaymentUseCase
func (p *Processor) Attempt(ctx context.Context, user *entity.User, req usecase.AttemptRequest) (*usecase.AttemptResult, error) {
	if user == nil {
		return nil, errs.ErrNotAuthenticated
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := p.CheckAmount(req.Kind, req.Amount); err != nil {
		p.logRejection(user, err)
		return nil, err
	}

	if err := p.validator.ValidateInstrument(req.Kind, req.Instrument); err != nil {
		err = errs.NewAttemptError(string(req.Kind), entity.FormatAmount(req.Amount), err)
		p.logRejection(user, err)
		return nil, err
	}

	instrument, err := entity.NewInstrument(req.Kind, req.Instrument)
	if err != nil {
		return nil, err
	}

	payment := entity.NewPayment(p.idGenerator.NewID(), req.Amount, instrument, p.timeProvider)
	result := &usecase.AttemptResult{Payment: payment}

	if req.Confirmed {
		err = payment.MarkAsSucceeded(p.timeProvider)
	} else {
		err = payment.MarkAsFailed(p.timeProvider)
	}
	if err != nil {
		return nil, err
	}

	if payment.Status() == entity.StatusSuccess {
		receipt := payment.Receipt()
		result.Receipt = &receipt
	}

	if err := p.userRepo.AppendPayment(ctx, user.ID, payment); err != nil {
		p.logger.Error("Failed to append payment to history", map[string]any{
			"user_id":    user.ID,
			"payment_id": payment.ID(),
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("failed to record payment %s: %w", payment.ID(), err)
	}

	result.LogErr = p.writeLog(ctx, user, payment)

	p.logger.Info("Payment processed", map[string]any{
		"user_id":    user.ID,
		"payment_id": payment.ID(),
		"kind":       string(payment.Kind()),
		"amount":     entity.FormatAmount(payment.Amount),
		"status":     string(payment.Status()),
	})

	return result, nil
}

// writeLog appends the payment to the log sink. Failures are reported, never fatal.
func (p *Processor) writeLog(ctx context.Context, user *entity.User, payment *entity.Payment) error {
	entry := entity.NewPaymentLogEntry(user, payment, p.timeProvider.Now())
	if err := p.paymentLog.Append(ctx, entry); err != nil {
		p.logger.Warn("Failed to write payment log", map[string]any{
			"payment_id": payment.ID(),
			"error":      err.Error(),
		})
		return err
	}
	return nil
}

func (p *Processor) logRejection(user *entity.User, err error) {
	fields := map[string]any{"user_id": user.ID}
	var attemptErr *errs.AttemptError
	if errors.As(err, &attemptErr) {
		for k, v := range attemptErr.LogFields() {
			fields[k] = v
		}
	}
	p.logger.Debug("Payment attempt rejected", fields)
}
