package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader_ReadLine(t *testing.T) {
	tests := []struct {
		expectedErr   error
		name          string
		input         string
		expectedValue string
	}{
		{name: "plain line", input: "Apple\n", expectedValue: "Apple"},
		{name: "surrounding whitespace", input: "  Green Apple  \n", expectedValue: "Green Apple"},
		{name: "windows line ending", input: "Produce\r\n", expectedValue: "Produce"},
		{name: "empty line", input: "\n", expectedValue: ""},
		{name: "final line without newline", input: "4", expectedValue: "4"},
		{name: "end of input", input: "", expectedErr: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewLineReader(strings.NewReader(tt.input))

			line, err := reader.ReadLine(context.Background())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedValue, line)
		})
	}
}

func TestLineReader_Sequence(t *testing.T) {
	reader := NewLineReader(strings.NewReader("1\nApple\n1.50"))
	ctx := context.Background()

	for _, expected := range []string{"1", "Apple", "1.50"} {
		line, err := reader.ReadLine(ctx)
		require.NoError(t, err)
		assert.Equal(t, expected, line)
	}

	for range 2 {
		_, err := reader.ReadLine(ctx)
		assert.ErrorIs(t, err, io.EOF)
	}
}

func TestLineReader_Cancellation(t *testing.T) {
	t.Run("already canceled", func(t *testing.T) {
		reader := NewLineReader(strings.NewReader("ignored\n"))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := reader.ReadLine(ctx)
		assert.ErrorIs(t, err, ErrInputCancelled)
	})

	t.Run("canceled while waiting keeps the next line", func(t *testing.T) {
		pr, pw := io.Pipe()
		t.Cleanup(func() { _ = pw.Close() })

		reader := NewLineReader(pr)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := reader.ReadLine(ctx)
		require.ErrorIs(t, err, ErrInputCancelled)

		go func() { _, _ = pw.Write([]byte("Banana\n")) }()

		line, err := reader.ReadLine(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Banana", line)
	})
}

func TestNewLineReader_NilPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewLineReader(nil)
	})
}
