package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/swatches/internal/colour"
	"github.com/jmylchreest/swatches/pkg/swatches"
)

// parseColourSpec parses one --colour value. Accepted forms:
//
//	-, empty, null        an empty slot
//	#ff8800, #f80         hex RGB
//	rgb:255,136,0         space:a,b,c
//	hsl(30, 100, 50)      space(a, b, c)
func parseColourSpec(spec string) (*swatches.Swatch, error) {
	s := strings.TrimSpace(spec)
	switch strings.ToLower(s) {
	case "-", "empty", "null", "none":
		return nil, nil
	}

	if strings.HasPrefix(s, "#") {
		rgb, err := colour.ParseHex(s)
		if err != nil {
			return nil, err
		}
		v := rgb.Triple()
		return swatches.NewSwatch(colour.SpaceRGB, v[0], v[1], v[2]), nil
	}

	var space, values string
	if i := strings.IndexByte(s, ':'); i > 0 {
		space, values = s[:i], s[i+1:]
	} else if i := strings.IndexByte(s, '('); i > 0 && strings.HasSuffix(s, ")") {
		space, values = s[:i], s[i+1:len(s)-1]
	} else {
		return nil, fmt.Errorf("invalid colour %q: expected space:a,b,c, space(a,b,c) or #hex", spec)
	}

	parts := strings.Split(values, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid colour %q: expected 3 components, got %d", spec, len(parts))
	}

	var v [3]float64
	for i, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(p), "%"), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid colour %q: component %d: %w", spec, i, err)
		}
		v[i] = n
	}

	return &swatches.Swatch{Values: v, Space: strings.ToLower(strings.TrimSpace(space))}, nil
}

// parseColourSpecs parses every --colour value in order.
func parseColourSpecs(specs []string) ([]*swatches.Swatch, error) {
	out := make([]*swatches.Swatch, 0, len(specs))
	for _, spec := range specs {
		s, err := parseColourSpec(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
