package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// LineReader reads trimmed lines from the user. Reads can be abandoned through
// the context; a read still blocked on the terminal is left to finish on its own.
type LineReader struct {
	r *bufio.Reader
}

func NewLineReader(in io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(in)}
}

type lineResult struct {
	line string
	err  error
}

// ReadLine returns the next line without its line ending and surrounding
// whitespace. A final line without a newline is returned before io.EOF.
func (l *LineReader) ReadLine(ctx context.Context) (string, error) {
	res := make(chan lineResult, 1)
	go func() {
		line, err := l.r.ReadString('\n')
		if errors.Is(err, io.EOF) && line != "" {
			err = nil
		}
		res <- lineResult{line: strings.TrimSpace(line), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-res:
		return r.line, r.err
	}
}
