// Package colour provides colour-space conversion, palette extraction and
// terminal preview helpers.
package colour

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Colour space tags. Values use the human scale of each model: degrees for
// hue, percent for saturation/value/lightness/whiteness/blackness, 0-255 for RGB.
const (
	SpaceHSV = "hsv"
	SpaceRGB = "rgb"
	SpaceHSL = "hsl"
	SpaceHWB = "hwb"
	SpaceXYZ = "xyz"
	SpaceLab = "lab"
	SpaceLCh = "lch"
)

// NativeSpace is the model palette files store colours in.
const NativeSpace = SpaceHSV

var (
	// ErrUnsupportedSpace is returned when a conversion names an unknown space.
	ErrUnsupportedSpace = errors.New("unsupported colour space")

	// ErrOutOfRange is returned when a component lies outside its space's bounds.
	ErrOutOfRange = errors.New("colour component out of range")
)

// Triple is a three-component colour value.
type Triple = [3]float64

// tolerance absorbs float noise at range boundaries, e.g. 100.00000000001%.
const tolerance = 1e-9

type space struct {
	name   string
	bounds *[3][2]float64
	decode func(Triple) colorful.Color
	encode func(colorful.Color) Triple
}

var (
	hueBounds = [3][2]float64{{0, 360}, {0, 100}, {0, 100}}
	rgbBounds = [3][2]float64{{0, 255}, {0, 255}, {0, 255}}
)

// Converter converts colour triples between the registered spaces.
// The zero value is not usable; construct with NewConverter.
type Converter struct {
	spaces map[string]space
	order  []string
}

// NewConverter creates a Converter with every built-in space registered.
func NewConverter() *Converter {
	c := &Converter{spaces: make(map[string]space)}
	c.register(space{name: SpaceHSV, bounds: &hueBounds, decode: fromHSV, encode: toHSV})
	c.register(space{name: SpaceRGB, bounds: &rgbBounds, decode: fromRGB, encode: toRGB})
	c.register(space{name: SpaceHSL, bounds: &hueBounds, decode: fromHSL, encode: toHSL})
	c.register(space{name: SpaceHWB, bounds: &hueBounds, decode: fromHWB, encode: toHWB})
	c.register(space{name: SpaceXYZ, decode: fromXYZ, encode: toXYZ})
	c.register(space{name: SpaceLab, decode: fromLab, encode: toLab})
	c.register(space{name: SpaceLCh, decode: fromLCh, encode: toLCh})
	return c
}

func (c *Converter) register(s space) {
	c.spaces[s.name] = s
	c.order = append(c.order, s.name)
}

// Supports reports whether name is a registered colour space.
func (c *Converter) Supports(name string) bool {
	_, ok := c.spaces[name]
	return ok
}

// Spaces returns the registered space names, native space first.
func (c *Converter) Spaces() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Convert converts v from one space to another.
// Converting a space to itself returns the validated input unchanged.
func (c *Converter) Convert(from, to string, v Triple) (Triple, error) {
	src, ok := c.spaces[from]
	if !ok {
		return Triple{}, fmt.Errorf("%w: %s", ErrUnsupportedSpace, from)
	}
	dst, ok := c.spaces[to]
	if !ok {
		return Triple{}, fmt.Errorf("%w: %s", ErrUnsupportedSpace, to)
	}
	if err := src.validate(v); err != nil {
		return Triple{}, err
	}
	if from == to {
		return v, nil
	}
	return dst.encode(src.decode(v)), nil
}

func (s space) validate(v Triple) error {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %s component %d is not finite", ErrOutOfRange, s.name, i)
		}
		if s.bounds == nil {
			continue
		}
		lo, hi := s.bounds[i][0], s.bounds[i][1]
		if x < lo-tolerance || x > hi+tolerance {
			return fmt.Errorf("%w: %s component %d = %g, want %g-%g", ErrOutOfRange, s.name, i, x, lo, hi)
		}
	}
	return nil
}

// normHue wraps a hue into [0, 360). go-colorful treats 360 as out of range.
func normHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func fromHSV(v Triple) colorful.Color {
	return colorful.Hsv(normHue(v[0]), v[1]/100, v[2]/100)
}

func toHSV(c colorful.Color) Triple {
	h, s, v := c.Clamped().Hsv()
	return Triple{h, s * 100, v * 100}
}

func fromRGB(v Triple) colorful.Color {
	return colorful.Color{R: v[0] / 255, G: v[1] / 255, B: v[2] / 255}
}

func toRGB(c colorful.Color) Triple {
	r, g, b := c.Clamped().RGB255()
	return Triple{float64(r), float64(g), float64(b)}
}

func fromHSL(v Triple) colorful.Color {
	return colorful.Hsl(normHue(v[0]), v[1]/100, v[2]/100)
}

func toHSL(c colorful.Color) Triple {
	h, s, l := c.Clamped().Hsl()
	return Triple{h, s * 100, l * 100}
}

func fromHWB(v Triple) colorful.Color {
	w, b := v[1]/100, v[2]/100
	if w+b >= 1 {
		grey := w / (w + b)
		return colorful.Color{R: grey, G: grey, B: grey}
	}
	val := 1 - b
	return colorful.Hsv(normHue(v[0]), 1-w/val, val)
}

func toHWB(c colorful.Color) Triple {
	h, s, v := c.Clamped().Hsv()
	return Triple{h, (1 - s) * v * 100, (1 - v) * 100}
}

func fromXYZ(v Triple) colorful.Color {
	return colorful.Xyz(v[0]/100, v[1]/100, v[2]/100)
}

func toXYZ(c colorful.Color) Triple {
	x, y, z := c.Xyz()
	return Triple{x * 100, y * 100, z * 100}
}

func fromLab(v Triple) colorful.Color {
	return colorful.Lab(v[0]/100, v[1]/100, v[2]/100)
}

func toLab(c colorful.Color) Triple {
	l, a, b := c.Lab()
	return Triple{l * 100, a * 100, b * 100}
}

// LCh triples are ordered lightness, chroma, hue.
func fromLCh(v Triple) colorful.Color {
	return colorful.Hcl(normHue(v[2]), v[1]/100, v[0]/100)
}

func toLCh(c colorful.Color) Triple {
	h, ch, l := c.Hcl()
	return Triple{l * 100, ch * 100, h}
}
