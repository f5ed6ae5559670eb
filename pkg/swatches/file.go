package swatches

import (
	"fmt"
	"os"
)

// ReadFile reads and decodes the palette file at path.
func (c *Codec) ReadFile(path, space string) (*Palette, error) {
	if err := c.CheckSpace(orNative(space)); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) // #nosec G304 - User-specified palette path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}
	return c.Decode(data, space)
}

// WriteFile encodes p and writes it to path.
func (c *Codec) WriteFile(path string, p *Palette, format Format) error {
	data, err := c.EncodePalette(p, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - Palette files are not sensitive
		return fmt.Errorf("failed to write palette file: %w", err)
	}
	return nil
}

func orNative(space string) string {
	if space == "" {
		return NativeSpace
	}
	return space
}
