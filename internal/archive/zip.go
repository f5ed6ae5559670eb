// Package archive reads and writes the zip containers that wrap palette documents.
package archive

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/jmylchreest/swatches/internal/security"
)

// Zip extracts and builds zip containers entirely in memory.
type Zip struct {
	maxEntrySize int64
}

// NewZip creates a Zip adapter with the default per-entry size limit.
func NewZip() *Zip {
	return &Zip{
		maxEntrySize: security.MaxEntrySize,
	}
}

// WithMaxEntrySize returns a copy of z with a different per-entry size limit.
func (z *Zip) WithMaxEntrySize(n int64) *Zip {
	return &Zip{maxEntrySize: n}
}

// Extract reads every regular file in the container into a name -> bytes map.
// Directory entries are skipped. When a name repeats, the last entry wins.
func (z *Zip) Extract(data []byte) (map[string][]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty archive")
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to create zip reader: %w", err)
	}

	entries := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}

		// A later entry with the same name replaces an earlier one.
		name := cleanEntryName(f.Name)

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s in archive: %w", f.Name, err)
		}
		content, err := security.ReadAllLimited(rc, z.maxEntrySize)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to extract %s: %w", f.Name, err)
		}

		entries[name] = content
	}

	return entries, nil
}

// Build writes entries into a new zip container, in sorted name order so the
// output is deterministic, and renders it according to opts.Format.
func (z *Zip) Build(entries map[string][]byte, opts Options) ([]byte, error) {
	format := opts.Format
	if format == "" {
		format = FormatBytes
	}
	if format != FormatBytes && format != FormatBase64 {
		return nil, fmt.Errorf("unknown output format: %q", format)
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		if name == "" {
			return nil, fmt.Errorf("archive entry name cannot be empty")
		}
		names = append(names, name)
	}
	slices.Sort(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   name,
			Method: zip.Deflate,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s in archive: %w", name, err)
		}
		if _, err := w.Write(entries[name]); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalise archive: %w", err)
	}

	if format == FormatBase64 {
		out := make([]byte, base64.StdEncoding.EncodedLen(buf.Len()))
		base64.StdEncoding.Encode(out, buf.Bytes())
		return out, nil
	}
	return buf.Bytes(), nil
}

// cleanEntryName normalises separators and strips a leading "./" so that
// entries written by other tools still match by their logical name.
func cleanEntryName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	return strings.TrimPrefix(path.Clean("/"+name), "/")
}
