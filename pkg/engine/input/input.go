package input

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
	"sync"
)

// Reader reads lines of console input. A read blocks until a full line
// arrives, the source is exhausted, or the caller's context is cancelled.
type Reader struct {
	src   *bufio.Reader
	once  sync.Once
	lines chan lineResult
}

type lineResult struct {
	text string
	err  error
}

// NewReader wraps src in a line reader
func NewReader(src io.Reader) *Reader {
	return &Reader{
		src:   bufio.NewReader(src),
		lines: make(chan lineResult),
	}
}

var stdinReader *Reader

// Stdin returns the shared reader for os.Stdin
func Stdin() *Reader {
	if stdinReader == nil {
		stdinReader = NewReader(os.Stdin)
	}
	return stdinReader
}

// pump feeds lines from the source until it fails. It runs on its own
// goroutine so that a pending read can be abandoned on interrupt.
func (r *Reader) pump() {
	for {
		chr, err := r.src.ReadString('\n')
		if len(chr) > 0 {
			r.lines <- lineResult{text: strings.TrimRight(chr, "\r\n")}
		}
		if err != nil {
			r.lines <- lineResult{err: err}
			close(r.lines)
			return
		}
	}
}

// ReadLine returns the next line without its line ending. It returns
// io.EOF once the source is exhausted and ctx.Err() if ctx is done first.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	r.once.Do(func() { go r.pump() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}
