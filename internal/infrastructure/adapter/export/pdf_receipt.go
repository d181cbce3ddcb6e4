package export

import (
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-console/internal/domain/port/core"
)

// PDFReceiptWriter renders receipts as single page PDF documents
type PDFReceiptWriter struct {
	dir           string
	currencyLabel string // core PDF fonts are Latin-1 only, so no symbols like ₹
	logger        coreport.Logger
}

// NewPDFReceiptWriter creates a writer that stores receipts in dir
func NewPDFReceiptWriter(dir, currencyLabel string, logger coreport.Logger) *PDFReceiptWriter {
	return &PDFReceiptWriter{
		dir:           dir,
		currencyLabel: currencyLabel,
		logger:        logger,
	}
}

// ExportReceipt implements persistence.ReceiptExporter
func (w *PDFReceiptWriter) ExportReceipt(ctx context.Context, owner string, receipt entity.Receipt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := prepareDir(w.dir); err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A5", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(receipt.Title, false)
	pdf.SetAuthor(owner, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.SetFillColor(220, 230, 250)
	pdf.CellFormat(0, 12, receipt.Title, "1", 1, "C", true, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	for _, field := range receipt.Fields(w.currencyLabel) {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(40, 8, tr(field[0]), "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 8, tr(field[1]), "1", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 6, tr("Account: "+owner))

	path := outputPath(w.dir, fmt.Sprintf("receipt_%s.pdf", safeName(receipt.PaymentID)))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write receipt pdf: %w", err)
	}

	w.logger.Debug("Receipt PDF written", map[string]any{
		"payment_id": receipt.PaymentID,
		"path":       path,
	})
	return path, nil
}
