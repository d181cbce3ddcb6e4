package persistence

import (
	"context"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
)

// ReceiptExporter writes a receipt to a document and returns its location
type ReceiptExporter interface {
	ExportReceipt(ctx context.Context, owner string, receipt entity.Receipt) (string, error)
}

// StatementExporter writes a user's payment history to a document and returns its location
type StatementExporter interface {
	ExportStatement(ctx context.Context, owner string, payments []*entity.Payment) (string, error)
}
