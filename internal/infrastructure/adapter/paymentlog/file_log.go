package paymentlog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-console/internal/domain/port/core"
)

// FileLog appends payment log lines to a plain text file.
// The file is opened per write with O_APPEND so external rotation is picked up.
type FileLog struct {
	mu     sync.Mutex
	path   string
	logger coreport.Logger
}

// NewFileLog creates a log that writes to path
func NewFileLog(path string, logger coreport.Logger) *FileLog {
	return &FileLog{
		path:   path,
		logger: logger,
	}
}

// Path returns the file the log writes to
func (l *FileLog) Path() string {
	return l.path
}

// Append writes entry as a single line
func (l *FileLog) Append(ctx context.Context, entry entity.PaymentLogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line := entry.String() + "\n"

	l.mu.Lock()
	defer l.mu.Unlock()

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create payment log directory: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open payment log: %w", err)
	}

	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("write payment log: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close payment log: %w", err)
	}

	l.logger.Debug("Payment log line written", map[string]any{
		"payment_id": entry.PaymentID,
		"path":       l.path,
	})
	return nil
}
