package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"
	"golang.org/x/term"

	"github.com/jmylchreest/swatches/internal/archive"
	"github.com/jmylchreest/swatches/internal/compression"
	"github.com/jmylchreest/swatches/pkg/swatches"
)

// stdio is the path that selects stdin or stdout.
const stdio = "-"

// readInput reads path (or stdin for "-"), removing any outer compression
// implied by the file extension.
func readInput(path string, stdin io.Reader) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == stdio {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) // #nosec G304 - User-specified input path, intended to be read
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return compression.Decompress(data, path)
}

// writeOutput writes data to path (or stdout for "-"), compressing it when
// the extension asks for it. Binary data is never written to a terminal.
func writeOutput(path string, data []byte, binary bool, stdout io.Writer) error {
	if path == stdio || path == "" {
		if binary && isTerminal(stdout) {
			return fmt.Errorf("refusing to write binary palette to a terminal: use --output or --format base64")
		}
		_, err := stdout.Write(data)
		return err
	}

	packed, err := compression.Compress(data, path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, packed, 0o644); err != nil { // #nosec G306 - Palette files are not sensitive
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// isJSONPath reports whether path names a JSON palette rather than a
// .swatches container.
func isJSONPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(compression.StripExtension(path)))
	return ext == ".json" || ext == ".jsonc"
}

// parsePaletteJSON parses a JSON or JSONC palette document.
func parsePaletteJSON(data []byte) (*swatches.Palette, error) {
	return swatches.ParsePalette(jsonc.ToJSON(data))
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// formatFlag registers a --format flag bound to f.
func formatFlag(fs *pflag.FlagSet, f *archive.Format) {
	fs.VarP(f, "format", "f", fmt.Sprintf("output format %v (default from config)", archive.ValidFormats()))
}

// status prints a success line to w unless quiet is set.
func status(w io.Writer, quiet bool, format string, args ...any) {
	if quiet {
		return
	}
	color.New(color.FgGreen).Fprintf(w, format+"\n", args...)
}

// baseName strips directories and all extensions from path.
func baseName(path string) string {
	base := filepath.Base(compression.StripExtension(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
