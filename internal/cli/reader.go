package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// LineReader reads trimmed lines from an input stream. A read blocked on the
// terminal can be abandoned by canceling its context; the line typed afterwards
// is delivered to the next read instead of being dropped.
type LineReader struct {
	src   *bufio.Reader
	lines chan string
	err   error
	start sync.Once
}

// NewLineReader creates a reader over r.
func NewLineReader(r io.Reader) *LineReader {
	if r == nil {
		panic("reader cannot be nil")
	}

	return &LineReader{
		src:   bufio.NewReader(r),
		lines: make(chan string),
	}
}

// ReadLine returns the next line without surrounding whitespace.
// A final line without a trailing newline is returned before io.EOF.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInputCancelled
	}

	r.start.Do(func() { go r.pump() })

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case line, ok := <-r.lines:
		if !ok {
			return "", r.err
		}
		return line, nil
	}
}

// pump feeds lines to readers until the stream ends, then records the error and closes lines.
func (r *LineReader) pump() {
	defer close(r.lines)

	for {
		line, err := r.src.ReadString('\n')
		if err != nil {
			if line != "" && errors.Is(err, io.EOF) {
				r.lines <- strings.TrimSpace(line)
			}
			r.err = err
			return
		}
		r.lines <- strings.TrimSpace(line)
	}
}
