package export

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-console/internal/domain/port/persistence"
)

// ExportUseCase writes receipts and statements through the configured exporters
type ExportUseCase struct {
	receiptExporter   persistence.ReceiptExporter
	statementExporter persistence.StatementExporter
	logger            coreport.Logger
}

// NewExportUseCase creates a new ExportUseCase
func NewExportUseCase(
	receiptExporter persistence.ReceiptExporter,
	statementExporter persistence.StatementExporter,
	logger coreport.Logger,
) *ExportUseCase {
	return &ExportUseCase{
		receiptExporter:   receiptExporter,
		statementExporter: statementExporter,
		logger:            logger,
	}
}

// ExportLastReceipt writes the receipt of the user's latest successful payment
func (e *ExportUseCase) ExportLastReceipt(ctx context.Context, user *entity.User) (string, error) {
	if user == nil {
		return "", errs.ErrNotAuthenticated
	}

	receipt, ok := user.LastReceipt()
	if !ok {
		return "", fmt.Errorf("%w: no successful payment", errs.ErrNothingToExport)
	}

	path, err := e.receiptExporter.ExportReceipt(ctx, user.PhoneNumber, receipt)
	if err != nil {
		e.logger.Error("Failed to export receipt", map[string]any{
			"user_id":    user.ID,
			"payment_id": receipt.PaymentID,
			"error":      err.Error(),
		})
		return "", err
	}

	e.logger.Info("Receipt exported", map[string]any{
		"user_id":    user.ID,
		"payment_id": receipt.PaymentID,
		"path":       path,
	})
	return path, nil
}

// ExportHistory writes the user's whole payment history
func (e *ExportUseCase) ExportHistory(ctx context.Context, user *entity.User) (string, error) {
	if user == nil {
		return "", errs.ErrNotAuthenticated
	}

	payments := user.Payments()
	if len(payments) == 0 {
		return "", fmt.Errorf("%w: no transactions", errs.ErrNothingToExport)
	}

	path, err := e.statementExporter.ExportStatement(ctx, user.PhoneNumber, payments)
	if err != nil {
		e.logger.Error("Failed to export statement", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return "", err
	}

	e.logger.Info("Statement exported", map[string]any{
		"user_id":  user.ID,
		"payments": len(payments),
		"path":     path,
	})
	return path, nil
}
