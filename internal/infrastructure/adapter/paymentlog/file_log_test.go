package paymentlog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-console/internal/infrastructure/adapter/logger"
)

func entryFor(id string, status entity.PaymentStatus) entity.PaymentLogEntry {
	return entity.PaymentLogEntry{
		Timestamp:   time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC),
		PhoneNumber: "9999999999",
		Kind:        entity.KindCard,
		Amount:      decimal.NewFromInt(2000),
		Status:      status,
		PaymentID:   id,
	}
}

func readLog(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestFileLogAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "PaymentLog.txt")
	sink := NewFileLog(path, logger.NewNoopLogger())
	ctx := context.Background()

	require.NoError(t, sink.Append(ctx, entryFor("pay-1", entity.StatusSuccess)))
	require.NoError(t, sink.Append(ctx, entryFor("pay-2", entity.StatusFailed)))

	lines := readLog(t, path)
	require.Len(t, lines, 2)
	assert.Equal(t, "2024-03-05 09:30:00 | 9999999999 | CardPayment | Amount: 2000.00 | Status: Success | ID: pay-1", lines[0])
	assert.Equal(t, "2024-03-05 09:30:00 | 9999999999 | CardPayment | Amount: 2000.00 | Status: Failed | ID: pay-2", lines[1])
	assert.Equal(t, path, sink.Path())
}

func TestFileLogKeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "PaymentLog.txt")
	require.NoError(t, os.WriteFile(path, []byte("earlier run\n"), 0o644))

	sink := NewFileLog(path, logger.NewNoopLogger())
	require.NoError(t, sink.Append(context.Background(), entryFor("pay-1", entity.StatusSuccess)))

	lines := readLog(t, path)
	require.Len(t, lines, 2)
	assert.Equal(t, "earlier run", lines[0])
}

func TestFileLogConcurrentAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "PaymentLog.txt")
	sink := NewFileLog(path, logger.NewNoopLogger())

	const writers = 25
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, sink.Append(context.Background(), entryFor(fmt.Sprintf("pay-%d", i), entity.StatusSuccess)))
		}(i)
	}
	wg.Wait()

	lines := readLog(t, path)
	require.Len(t, lines, writers)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "2024-03-05 09:30:00 | 9999999999 | CardPayment"), line)
	}
}

func TestFileLogUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the file makes every open fail
	path := filepath.Join(dir, "PaymentLog.txt")
	require.NoError(t, os.Mkdir(path, 0o755))

	sink := NewFileLog(path, logger.NewNoopLogger())
	err := sink.Append(context.Background(), entryFor("pay-1", entity.StatusSuccess))
	assert.Error(t, err)
}
