// Package security provides input-hardening helpers for reading untrusted palette files.
package security

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrLimitExceeded is returned once a LimitedReader has handed out its full budget.
var ErrLimitExceeded = errors.New("decompression size limit exceeded")

// MaxEntrySize bounds the decompressed size of a single archive entry.
// Real Swatches.json documents are a few kilobytes.
const MaxEntrySize int64 = 16 * 1024 * 1024

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// Unlike io.LimitedReader it fails loudly instead of reporting EOF, so a
// truncated zip bomb is never mistaken for a complete entry.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// Allow a clean EOF exactly at the limit.
		var probe [1]byte
		if n, err := l.R.Read(probe[:]); n == 0 && err == io.EOF {
			return 0, io.EOF
		}
		return 0, ErrLimitExceeded
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}

// ReadAllLimited reads r to EOF, failing if more than maxBytes are produced.
func ReadAllLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(NewLimitedReader(r, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read: %w", err)
	}
	return data, nil
}

// SafeUint8 rounds a float channel value and clamps it to 0-255.
// NaN maps to 0.
func SafeUint8(val float64) uint8 {
	if math.IsNaN(val) || val <= 0 {
		return 0
	}
	if val >= 255 {
		return 255
	}
	return uint8(math.Round(val))
}
