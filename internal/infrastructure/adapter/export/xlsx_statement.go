package export

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-console/internal/domain/port/core"
)

// StatementSheetName is the worksheet holding the payment rows
const StatementSheetName = "Payment History"

var statementHeaders = []string{"Payment ID", "Date", "Type", "Instrument", "Amount", "Status"}

// XLSXStatementWriter writes a user's payment history as a spreadsheet
type XLSXStatementWriter struct {
	mu           sync.Mutex
	dir          string
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewXLSXStatementWriter creates a writer that stores statements in dir
func NewXLSXStatementWriter(dir string, timeProvider coreport.TimeProvider, logger coreport.Logger) *XLSXStatementWriter {
	return &XLSXStatementWriter{
		dir:          dir,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ExportStatement implements persistence.StatementExporter
func (w *XLSXStatementWriter) ExportStatement(ctx context.Context, owner string, payments []*entity.Payment) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := prepareDir(w.dir); err != nil {
		return "", err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet(StatementSheetName)
	if err != nil {
		return "", fmt.Errorf("create statement sheet: %w", err)
	}

	headerStyle := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	headerStyle.Font = *font

	headerRow := sheet.AddRow()
	for _, h := range statementHeaders {
		cell := headerRow.AddCell()
		cell.SetString(h)
		cell.SetStyle(headerStyle)
	}

	for _, p := range payments {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID())
		row.AddCell().SetString(p.CreatedAt.Format(entity.ReceiptDateLayout))
		row.AddCell().SetString(p.Kind().TypeName())
		row.AddCell().SetString(p.Instrument.Display())
		row.AddCell().SetFloatWithFormat(p.Amount.InexactFloat64(), "0.00")
		row.AddCell().SetString(string(p.Status()))
	}

	sheet.AddRow() // spacing

	totals := []struct {
		label string
		value string
	}{
		{"Account", owner},
		{"Total Transactions", fmt.Sprintf("%d", len(payments))},
		{"Total Spent", entity.FormatAmount(totalSpent(payments))},
	}
	for _, t := range totals {
		row := sheet.AddRow()
		label := row.AddCell()
		label.SetString(t.label)
		label.SetStyle(headerStyle)
		row.AddCell().SetString(t.value)
	}

	base := fmt.Sprintf("statement_%s_%s", safeName(owner), w.timeProvider.Now().Format("20060102_150405"))

	// Statements exported within the same second get a numeric suffix
	w.mu.Lock()
	defer w.mu.Unlock()

	path, err := freePath(w.dir, base, ".xlsx")
	if err != nil {
		return "", err
	}
	if err := file.Save(path); err != nil {
		return "", fmt.Errorf("write statement xlsx: %w", err)
	}

	w.logger.Debug("Statement XLSX written", map[string]any{
		"payments": len(payments),
		"path":     path,
	})
	return path, nil
}

func totalSpent(payments []*entity.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Status() == entity.StatusSuccess {
			total = total.Add(p.Amount)
		}
	}
	return total
}
