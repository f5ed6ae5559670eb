package archive

import (
	"fmt"
	"strings"
)

// Format selects the representation returned by Build.
type Format string

const (
	// FormatBytes returns the raw container bytes.
	FormatBytes Format = "bytes"

	// FormatBase64 returns the container as standard base64 text, for
	// embedding in JSON payloads or data URLs.
	FormatBase64 Format = "base64"
)

// ValidFormats returns the list of supported output formats.
func ValidFormats() []Format {
	return []Format{FormatBytes, FormatBase64}
}

// ParseFormat parses a format name. The empty string selects FormatBytes.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bytes", "binary", "uint8array":
		return FormatBytes, nil
	case "base64":
		return FormatBase64, nil
	default:
		return "", fmt.Errorf("unknown output format: %q (valid formats: %v)", name, ValidFormats())
	}
}

// String implements fmt.Stringer and pflag.Value.
func (f Format) String() string {
	return string(f)
}

// Set implements pflag.Value.
func (f *Format) Set(value string) error {
	parsed, err := ParseFormat(value)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

// Options controls how Build renders its output.
type Options struct {
	Format Format
}
