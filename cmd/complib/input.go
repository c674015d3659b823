package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/complib"
)

// tokens reads whitespace separated tokens from an input stream.
type tokens struct {
	scanner *bufio.Scanner
	count   int
}

func newTokens(r io.Reader) *tokens {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	return &tokens{scanner: scanner}
}

func (t *tokens) next(what string) (string, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: expected %s after %d tokens, got end of input",
			complib.ErrMalformedInput, what, t.count)
	}
	t.count++
	return t.scanner.Text(), nil
}

// Int reads the next token as a signed integer.
func (t *tokens) Int(what string) (int64, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", complib.ErrMalformedInput, what, err)
	}
	return n, nil
}

// Count reads the next token as a non-negative integer suitable as a size
// or an index.
func (t *tokens) Count(what string) (int, error) {
	n, err := t.Int(what)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative, is %d", complib.ErrMalformedInput, what, n)
	}
	return int(n), nil
}
