package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-console/internal/domain/port/usecase"
)

// Shell is the interactive menu loop on top of the use cases
type Shell struct {
	users    usecase.UserUseCase
	payments usecase.PaymentUseCase
	exports  usecase.ExportUseCase
	prompter *Prompter
	render   *Renderer
	symbol   string
	logger   coreport.Logger
}

// NewShell creates a new Shell
func NewShell(
	users usecase.UserUseCase,
	payments usecase.PaymentUseCase,
	exports usecase.ExportUseCase,
	prompter *Prompter,
	out io.Writer,
	currencySymbol string,
	logger coreport.Logger,
) *Shell {
	return &Shell{
		users:    users,
		payments: payments,
		exports:  exports,
		prompter: prompter,
		render:   NewRenderer(out, currencySymbol),
		symbol:   currencySymbol,
		logger:   logger,
	}
}

// Run loops over the menus until the user exits or input ends
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var (
			done bool
			err  error
		)
		if user, curErr := s.users.Current(); curErr == nil {
			err = s.userMenu(ctx, user)
		} else {
			done, err = s.authMenu(ctx)
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			s.logger.Debug("Console interrupted", nil)
			s.render.Println("\nInterrupted.")
			return ctxErr
		}
		if errors.Is(err, ErrInputClosed) {
			s.logger.Debug("Input closed, leaving console", nil)
			s.render.Println()
			return nil
		}
		if err != nil {
			return err
		}
		if done {
			s.logger.Debug("Exit selected", nil)
			return nil
		}
	}
}

func (s *Shell) authMenu(ctx context.Context) (bool, error) {
	s.render.Println("\n=== Online Payment System ===")
	s.render.Println("1. Register")
	s.render.Println("2. Login")
	s.render.Println("3. Exit")

	choice, err := s.prompter.ReadLine(ctx, "Choose option: ")
	if err != nil {
		return false, err
	}

	switch choice {
	case "1":
		return false, s.register(ctx)
	case "2":
		return false, s.login(ctx)
	case "3":
		return true, nil
	default:
		s.render.Println("Invalid option!")
		return false, nil
	}
}

func (s *Shell) userMenu(ctx context.Context, user *entity.User) error {
	s.render.Printf("\n=== Welcome %s ===\n", user.PhoneNumber)
	for i, kind := range entity.PaymentKinds {
		s.render.Printf("%d. %s\n", i+1, menuLabel(kind))
	}
	s.render.Println("4. View Payment History")
	s.render.Println("5. View Profile")
	s.render.Println("6. Export Last Receipt (PDF)")
	s.render.Println("7. Export Payment History (XLSX)")
	s.render.Println("8. Logout")

	choice, err := s.prompter.ReadLine(ctx, "Choose option: ")
	if err != nil {
		return err
	}

	if kind, ok := paymentChoice(choice); ok {
		return s.makePayment(ctx, user, kind)
	}

	switch choice {
	case "4":
		return s.showHistory(ctx)
	case "5":
		return s.showProfile(ctx)
	case "6":
		return s.export(ctx, "Receipt", s.exports.ExportLastReceipt, user)
	case "7":
		return s.export(ctx, "Statement", s.exports.ExportHistory, user)
	case "8":
		s.users.Logout(ctx)
		s.render.Println("Logged out successfully.")
		return nil
	default:
		s.render.Println("Invalid option!")
		return nil
	}
}

func (s *Shell) register(ctx context.Context) error {
	var details entity.UserDetails
	var password string

	steps := []struct {
		prompt string
		target *string
		secret bool
	}{
		{"Enter Phone Number: ", &details.PhoneNumber, false},
		{"Enter Email: ", &details.Email, false},
		{"Enter Password: ", &password, true},
		{"Bank Name: ", &details.BankName, false},
		{"Bank Account Number: ", &details.BankAccountNumber, false},
		{"IFSC Code: ", &details.IFSC, false},
	}
	for _, step := range steps {
		read := s.prompter.ReadLine
		if step.secret {
			read = s.prompter.ReadPassword
		}
		value, err := read(ctx, step.prompt)
		if err != nil {
			return err
		}
		*step.target = value
	}

	_, err := s.users.Register(ctx, details, password)
	switch {
	case err == nil:
		s.render.Println("✅ Registration successful! You can login now.")
	case errors.Is(err, errs.ErrDuplicateUser):
		s.render.Println("❌ A user with this phone number already exists!")
	case errors.Is(err, errs.ErrInvalidRegistration):
		s.render.Println("❌ Phone number and password are required!")
	default:
		return err
	}
	return nil
}

func (s *Shell) login(ctx context.Context) error {
	phone, err := s.prompter.ReadLine(ctx, "Enter Phone Number: ")
	if err != nil {
		return err
	}
	password, err := s.prompter.ReadPassword(ctx, "Enter Password: ")
	if err != nil {
		return err
	}

	user, err := s.users.Login(ctx, phone, password)
	switch {
	case err == nil:
		s.render.Printf("✅ Welcome %s!\n", user.PhoneNumber)
	case errors.Is(err, errs.ErrInvalidCredentials):
		s.render.Println("❌ Invalid credentials!")
	default:
		return err
	}
	return nil
}

func (s *Shell) makePayment(ctx context.Context, user *entity.User, kind entity.PaymentKind) error {
	limit := s.symbol + entity.FormatAmount(s.payments.Limit())

	amount, err := s.prompter.ReadAmount(ctx, fmt.Sprintf("Enter amount (max %s): ", limit))
	if err != nil {
		return err
	}
	if err := s.payments.CheckAmount(kind, amount); err != nil {
		switch {
		case errs.IsLimitExceededError(err):
			s.render.Printf("❌ Amount exceeds %s limit!\n", limit)
		case errs.IsInvalidAmountError(err):
			s.render.Println("❌ Amount must be positive!")
		default:
			s.render.Printf("❌ %v\n", err)
		}
		return nil
	}

	label := kind.FieldLabel()
	value, err := s.prompter.ReadLine(ctx, fmt.Sprintf("Enter %s: ", label))
	if err != nil {
		return err
	}
	if err := s.payments.CheckInstrument(kind, value); err != nil {
		if !errs.IsInvalidInstrumentError(err) {
			return err
		}
		s.render.Printf("Invalid %s!\n", strings.ToLower(label))
		return nil
	}

	confirmed, err := s.prompter.Confirm(ctx, "Confirm payment? (Y/N): ")
	if err != nil {
		return err
	}

	result, err := s.payments.Attempt(ctx, user, usecase.AttemptRequest{
		Kind:       kind,
		Amount:     amount,
		Instrument: value,
		Confirmed:  confirmed,
	})
	if err != nil {
		if errs.IsAttemptRejected(err) {
			s.render.Printf("❌ %v\n", err)
			return nil
		}
		return err
	}

	if result.Receipt != nil {
		s.render.Processing(result.Payment)
		s.render.Receipt(*result.Receipt)
	} else {
		s.render.Println("Payment cancelled.")
	}
	if result.LogErr != nil {
		s.render.Printf("⚠ Payment log could not be written: %v\n", result.LogErr)
	}
	return nil
}

func (s *Shell) showHistory(ctx context.Context) error {
	history, err := s.users.History(ctx)
	if err != nil {
		return err
	}
	s.render.History(history)
	return nil
}

func (s *Shell) showProfile(ctx context.Context) error {
	profile, err := s.users.Profile(ctx)
	if err != nil {
		return err
	}
	s.render.Profile(profile)
	return nil
}

func (s *Shell) export(
	ctx context.Context,
	what string,
	run func(context.Context, *entity.User) (string, error),
	user *entity.User,
) error {
	path, err := run(ctx, user)
	switch {
	case err == nil:
		s.render.Printf("✅ %s saved to %s\n", what, path)
	case errors.Is(err, errs.ErrNothingToExport):
		s.render.Println("Nothing to export yet.")
	default:
		s.render.Printf("❌ %s export failed: %v\n", what, err)
	}
	return nil
}

func menuLabel(kind entity.PaymentKind) string {
	name := string(kind)
	return strings.ToUpper(name[:1]) + name[1:] + " Payment"
}

// paymentChoice maps menu options 1..n to entity.PaymentKinds
func paymentChoice(choice string) (entity.PaymentKind, bool) {
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(entity.PaymentKinds) {
		return "", false
	}
	return entity.PaymentKinds[n-1], true
}
