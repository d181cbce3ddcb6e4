package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompterReadLine(t *testing.T) {
	ctx := context.Background()

	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("  hello \nlast"), out)

	line, err := p.ReadLine(ctx, "> ")
	require.NoError(t, err)
	assert.Equal(t, "hello", line)

	line, err = p.ReadLine(ctx, "> ")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = p.ReadLine(ctx, "> ")
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, "> > > ", out.String())
}

func TestPrompterReadPasswordWithoutTerminal(t *testing.T) {
	ctx := context.Background()

	p := NewPrompter(strings.NewReader("secret\n"), &bytes.Buffer{})

	password, err := p.ReadPassword(ctx, "Enter Password: ")
	require.NoError(t, err)
	assert.Equal(t, "secret", password)
}

func TestPrompterReadAmount(t *testing.T) {
	ctx := context.Background()

	t.Run("Re-prompts until valid", func(t *testing.T) {
		out := &bytes.Buffer{}
		p := NewPrompter(strings.NewReader("ten\n0\n1.234\n99.5\n"), out)

		amount, err := p.ReadAmount(ctx, "Amount: ")
		require.NoError(t, err)
		assert.Equal(t, "99.5", amount.String())
		assert.Equal(t, 3, strings.Count(out.String(), "Invalid amount! Enter again: "))
	})

	t.Run("Input closed", func(t *testing.T) {
		p := NewPrompter(strings.NewReader("abc\n"), &bytes.Buffer{})

		_, err := p.ReadAmount(ctx, "Amount: ")
		assert.ErrorIs(t, err, ErrInputClosed)
	})
}

func TestPrompterConfirm(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		input    string
		expected bool
	}{
		{"Y\n", true},
		{"y\n", true},
		{" y \n", true},
		{"N\n", false},
		{"yes\n", false},
		{"\n", false},
	}

	for _, tc := range testCases {
		t.Run(strings.TrimSpace(tc.input), func(t *testing.T) {
			p := NewPrompter(strings.NewReader(tc.input), &bytes.Buffer{})
			confirmed, err := p.Confirm(ctx, "Confirm payment? (Y/N): ")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, confirmed)
		})
	}
}

func TestPrompterCancellation(t *testing.T) {
	t.Run("Cancelled before reading", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := NewPrompter(strings.NewReader("1\n"), &bytes.Buffer{})
		_, err := p.ReadLine(ctx, "> ")
		assert.ErrorIs(t, err, context.Canceled)

		line, err := p.ReadLine(context.Background(), "> ")
		require.NoError(t, err)
		assert.Equal(t, "1", line)
	})

	t.Run("Cancelled while blocked", func(t *testing.T) {
		r, w := io.Pipe()
		defer w.Close()

		ctx, cancel := context.WithCancel(context.Background())
		p := NewPrompter(r, &bytes.Buffer{})

		done := make(chan error, 1)
		go func() {
			_, err := p.ReadLine(ctx, "> ")
			done <- err
		}()

		cancel()
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("ReadLine did not return after cancellation")
		}

		// The abandoned read picks up the next line instead of racing a new one
		go func() {
			_, _ = io.WriteString(w, "later\n")
		}()
		line, err := p.ReadLine(context.Background(), "> ")
		require.NoError(t, err)
		assert.Equal(t, "later", line)
	})

	t.Run("Confirm is not acted upon after cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		in := &cancelOnLineReader{lines: []string{"Y\n"}, trigger: "Y\n", cancel: cancel}
		p := NewPrompter(in, &bytes.Buffer{})

		confirmed, err := p.Confirm(ctx, "Confirm payment? (Y/N): ")
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, confirmed)
	})
}

// cancelOnLineReader serves one line per Read and cancels when it reaches trigger
type cancelOnLineReader struct {
	lines   []string
	trigger string
	cancel  context.CancelFunc
}

func (r *cancelOnLineReader) Read(b []byte) (int, error) {
	if len(r.lines) == 0 {
		return 0, io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	if line == r.trigger {
		r.cancel()
	}
	return copy(b, line), nil
}
