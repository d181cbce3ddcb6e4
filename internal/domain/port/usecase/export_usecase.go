package usecase

import (
	"context"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
)

// ExportUseCase writes receipts and statements to documents
type ExportUseCase interface {
	// ExportLastReceipt writes the receipt of the user's latest successful payment
	ExportLastReceipt(ctx context.Context, user *entity.User) (string, error)

	// ExportHistory writes the user's whole payment history
	ExportHistory(ctx context.Context, user *entity.User) (string, error)
}
