package colour

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/swatches/internal/security"
)

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Triple returns the colour as an rgb-space triple.
func (rgb RGB) Triple() Triple {
	return Triple{float64(rgb.R), float64(rgb.G), float64(rgb.B)}
}

func (rgb RGB) toColorful() colorful.Color {
	return colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
}

// RGBFromTriple clamps and rounds an rgb-space triple.
func RGBFromTriple(v Triple) RGB {
	return RGB{
		R: security.SafeUint8(v[0]),
		G: security.SafeUint8(v[1]),
		B: security.SafeUint8(v[2]),
	}
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ParseHex parses "#rrggbb", "rrggbb", "#rgb" or "rgb" into an RGB value.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 3 && len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q: expected 3 or 6 hex digits", s)
	}
	c, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// ToRGBIn converts a triple in the named space to RGB using conv.
func ToRGBIn(conv *Converter, space string, v Triple) (RGB, error) {
	rgb, err := conv.Convert(space, SpaceRGB, v)
	if err != nil {
		return RGB{}, err
	}
	return RGBFromTriple(rgb), nil
}
