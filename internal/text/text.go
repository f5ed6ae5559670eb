// Package text decodes palette document bytes into UTF-8 strings.
package text

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidUTF8 is returned when the input is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// Decoder converts raw bytes to a string, dropping a leading byte-order mark.
// Invalid UTF-8 is rejected rather than replaced.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode returns b as a string with any leading UTF-8 BOM removed.
func (d *Decoder) Decode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}

	out, err := unicode.UTF8BOM.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("failed to decode text: %w", err)
	}
	return string(out), nil
}
