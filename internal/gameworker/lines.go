package gameworker

import (
	"bufio"
	"context"
	"io"
	"sync"
)

// Lines hands out the lines of a text stream to whoever asks next. Reading
// happens on a goroutine so a caller can stop waiting when its context is
// done. Prompts sharing a terminal must share one Lines.
type Lines struct {
	sc    *bufio.Scanner
	once  sync.Once
	lines chan string
	err   error
}

func NewLines(r io.Reader) *Lines {
	return &Lines{sc: bufio.NewScanner(r), lines: make(chan string)}
}

// Next waits for the next line. It returns io.EOF once the stream ends and
// ctx.Err() if ctx is done first; a line read after that is kept for the
// next call.
func (l *Lines) Next(ctx context.Context) (string, error) {
	l.once.Do(func() { go l.read() })
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-l.lines:
		if !ok {
			return "", l.err
		}
		return line, nil
	}
}

func (l *Lines) read() {
	for l.sc.Scan() {
		l.lines <- l.sc.Text()
	}
	l.err = l.sc.Err()
	if l.err == nil {
		l.err = io.EOF
	}
	close(l.lines)
}
