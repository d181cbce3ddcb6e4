package persistence

import (
	"context"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
)

// PaymentLog is the append-only sink that receives one entry per created payment
type PaymentLog interface {
	// Append writes a single entry. Implementations must serialize concurrent appends.
	Append(ctx context.Context, entry entity.PaymentLogEntry) error
}
