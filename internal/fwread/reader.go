// Package fwread streams raw lines from a fixed-width source file, leaving
// decoding to the fixedwidth package.
package fwread

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gyeh/rxreimb/internal/fixedwidth"
)

const bufferSize = 256 * 1024

// Reader yields one line at a time with 1-based line numbers. CRLF line
// endings are tolerated; the trailing CR is stripped so column offsets hold.
type Reader struct {
	file *os.File
	sc   *bufio.Scanner
	line int64
}

// Open opens the file at path for line-by-line reading.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source file: %w", err)
	}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, bufferSize), bufferSize)
	return &Reader{file: f, sc: sc}, nil
}

// Next returns the next line and true, or "" and false at end of input.
// Check Err after the final Next.
func (r *Reader) Next() (string, bool) {
	if !r.sc.Scan() {
		return "", false
	}
	r.line++
	return strings.TrimSuffix(r.sc.Text(), "\r"), true
}

// LineNum returns the 1-based number of the line most recently returned.
func (r *Reader) LineNum() int64 {
	return r.line
}

// Err returns any error encountered while scanning.
func (r *Reader) Err() error {
	return r.sc.Err()
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// ValidateFirstLine checks that the file starts with a line of the expected
// record width. This is the cheap schema check run during preflight, before
// any rows are staged.
func ValidateFirstLine(path string) error {
	r, err := Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	line, ok := r.Next()
	if !ok {
		if err := r.Err(); err != nil {
			return fmt.Errorf("read first line: %w", err)
		}
		return fmt.Errorf("file is empty")
	}
	if len(line) != fixedwidth.LineLength {
		return fmt.Errorf("first line is %d characters, want %d", len(line), fixedwidth.LineLength)
	}
	return nil
}
