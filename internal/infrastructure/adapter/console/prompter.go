package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/term"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
)

// ErrInputClosed is returned when the input stream ends while a value is expected
var ErrInputClosed = errors.New("input closed")

type readResult struct {
	line string
	err  error
}

// Prompter reads answers from a line-oriented input and writes prompts to out.
// Reads give up when the context is cancelled; an abandoned read is resumed by the next call.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// passwordFD is the terminal to read passwords from without echo, or -1
	passwordFD int

	// pending holds the result of a read that outlived a cancelled call
	pending chan readResult
}

// NewPrompter creates a prompter over arbitrary streams; passwords are read as plain lines
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:         bufio.NewReader(in),
		out:        out,
		passwordFD: -1,
	}
}

// NewTerminalPrompter creates a prompter on stdin/stdout that hides password input
// when stdin is a terminal
func NewTerminalPrompter() *Prompter {
	p := NewPrompter(os.Stdin, os.Stdout)
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		p.passwordFD = fd
	}
	return p
}

// await runs read in the background and waits for it or for ctx
func (p *Prompter) await(ctx context.Context, read func() (string, error)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if p.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := read()
			ch <- readResult{line: line, err: err}
		}()
		p.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-p.pending:
		p.pending = nil
		// A line that arrives together with the cancellation is not acted upon
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return res.line, res.err
	}
}

// ReadLine prints prompt and returns the next line without surrounding whitespace
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.await(ctx, func() (string, error) {
		return p.in.ReadString('\n')
	})
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadPassword prints prompt and reads a password, without echo on a terminal
func (p *Prompter) ReadPassword(ctx context.Context, prompt string) (string, error) {
	if p.passwordFD < 0 {
		return p.ReadLine(ctx, prompt)
	}

	state, err := term.GetState(p.passwordFD)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	fmt.Fprint(p.out, prompt)
	secret, err := p.await(ctx, func() (string, error) {
		b, err := term.ReadPassword(p.passwordFD)
		return string(b), err
	})
	fmt.Fprintln(p.out)
	if ctxErr := ctx.Err(); ctxErr != nil {
		// term.ReadPassword restores echo only when it returns
		_ = term.Restore(p.passwordFD, state)
		return "", ctxErr
	}
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return secret, nil
}

// ReadAmount prints prompt and re-prompts until a positive amount is entered
func (p *Prompter) ReadAmount(ctx context.Context, prompt string) (decimal.Decimal, error) {
	line, err := p.ReadLine(ctx, prompt)
	for {
		if err != nil {
			return decimal.Zero, err
		}
		amount, parseErr := entity.ParsePositiveAmount(line)
		if parseErr == nil {
			return amount, nil
		}
		line, err = p.ReadLine(ctx, "Invalid amount! Enter again: ")
	}
}

// Confirm prints prompt and reports whether the answer is Y or y
func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	answer, err := p.ReadLine(ctx, prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}
