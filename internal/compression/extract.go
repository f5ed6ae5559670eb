// Package compression transparently wraps and unwraps compressed palette files.
package compression

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/swatches/internal/security"
)

// Method identifies an outer compression layer.
type Method string

const (
	// MethodNone means the data is stored as-is.
	MethodNone Method = ""
	MethodGzip Method = "gzip"
	MethodXz   Method = "xz"
	MethodBz2  Method = "bzip2"
)

// MaxDecompressedSize bounds how much a compressed palette file may expand to.
const MaxDecompressedSize int64 = 64 * 1024 * 1024

// DetectMethod picks a compression method from a filename extension.
func DetectMethod(filename string) Method {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".gz"), strings.HasSuffix(lower, ".tgz"):
		return MethodGzip
	case strings.HasSuffix(lower, ".xz"), strings.HasSuffix(lower, ".txz"):
		return MethodXz
	case strings.HasSuffix(lower, ".bz2"):
		return MethodBz2
	default:
		return MethodNone
	}
}

// StripExtension removes a recognised compression extension from filename.
// For example: "palette.swatches.xz" -> "palette.swatches".
func StripExtension(filename string) string {
	for _, ext := range []string{".gz", ".xz", ".bz2"} {
		if len(filename) > len(ext) && strings.EqualFold(filename[len(filename)-len(ext):], ext) {
			return filename[:len(filename)-len(ext)]
		}
	}
	return filename
}

// Decompress removes the outer compression layer implied by filename.
// Data with no recognised extension is returned unchanged.
func Decompress(data []byte, filename string) ([]byte, error) {
	var (
		r   io.Reader
		err error
	)

	switch DetectMethod(filename) {
	case MethodGzip:
		gzr, gerr := gzip.NewReader(bytes.NewReader(data))
		if gerr != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", gerr)
		}
		defer gzr.Close()
		r = gzr
	case MethodXz:
		r, err = xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
	case MethodBz2:
		r = bzip2.NewReader(bytes.NewReader(data))
	default:
		return data, nil
	}

	out, err := security.ReadAllLimited(r, MaxDecompressedSize)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", filename, err)
	}
	return out, nil
}

// Compress applies the compression implied by filename. bzip2 output is not
// supported; data with no recognised extension is returned unchanged.
func Compress(data []byte, filename string) ([]byte, error) {
	var buf bytes.Buffer

	switch DetectMethod(filename) {
	case MethodGzip:
		gzw := gzip.NewWriter(&buf)
		if _, err := gzw.Write(data); err != nil {
			return nil, fmt.Errorf("failed to gzip: %w", err)
		}
		if err := gzw.Close(); err != nil {
			return nil, fmt.Errorf("failed to gzip: %w", err)
		}
	case MethodXz:
		xzw, err := xz.NewWriter(&buf)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		if _, err := xzw.Write(data); err != nil {
			return nil, fmt.Errorf("failed to xz: %w", err)
		}
		if err := xzw.Close(); err != nil {
			return nil, fmt.Errorf("failed to xz: %w", err)
		}
	case MethodBz2:
		return nil, fmt.Errorf("bzip2 output is not supported: %s", filename)
	default:
		return data, nil
	}

	return buf.Bytes(), nil
}
