package console

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-console/internal/domain/port/usecase"
)

// Renderer formats domain values for the terminal
type Renderer struct {
	out            io.Writer
	currencySymbol string
}

// NewRenderer creates a renderer that prefixes amounts with currencySymbol
func NewRenderer(out io.Writer, currencySymbol string) *Renderer {
	return &Renderer{out: out, currencySymbol: currencySymbol}
}

func (r *Renderer) money(amount decimal.Decimal) string {
	return r.currencySymbol + entity.FormatAmount(amount)
}

// Println writes a line
func (r *Renderer) Println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text
func (r *Renderer) Printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

// Processing echoes a successful payment before its receipt
func (r *Renderer) Processing(payment *entity.Payment) {
	r.Printf("\nProcessing %s: %s\n", payment.Kind().TypeName(), r.money(payment.Amount))
	r.Printf("%s: %s\n", payment.Kind().FieldLabel(), payment.Instrument.Display())
}

// Receipt writes a framed receipt
func (r *Renderer) Receipt(receipt entity.Receipt) {
	r.Printf("\n%s\n", receipt.Format(r.currencySymbol))
}

// History lists payments in chronological order
func (r *Renderer) History(payments []*entity.Payment) {
	r.Println("\n--- Payment History ---")
	if len(payments) == 0 {
		r.Println("No transactions yet.")
		return
	}
	for _, p := range payments {
		r.Printf("ID: %s, Amount: %s, Date: %s, Type: %s, Status: %s\n",
			p.ID(),
			r.money(p.Amount),
			p.CreatedAt.Format(entity.ReceiptDateLayout),
			p.Kind().TypeName(),
			p.Status(),
		)
	}
}

// Profile writes the account summary
func (r *Renderer) Profile(profile *usecase.Profile) {
	r.Println("\n=== User Profile ===")
	r.Printf("Phone Number: %s\n", profile.PhoneNumber)
	r.Printf("Email: %s\n", profile.Email)
	r.Printf("Bank Name: %s\n", profile.BankName)
	r.Printf("Account Number: %s\n", profile.BankAccountNumber)
	r.Printf("IFSC: %s\n", profile.IFSC)
	r.Printf("Total Transactions: %d\n", profile.TotalTransactions)
	r.Printf("Total Spent: %s\n", r.money(profile.TotalSpent))
}
