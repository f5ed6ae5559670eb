// Package swatches reads and writes Procreate .swatches palette files.
//
// A .swatches file is a zip container holding a single Swatches.json
// document. Colours are stored as normalized HSV; the Codec converts them
// to and from any colour space its Converter supports.
package swatches

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// EntryName is the archive entry that holds the swatch document.
	EntryName = "Swatches.json"

	// MaxSwatches is the number of slots a palette file can hold.
	// Encode silently drops anything beyond it.
	MaxSwatches = 30

	// NativeSpace is the colour space palette files store.
	NativeSpace = "hsv"
)

// Swatch is a filled palette slot: a colour value tagged with its space.
type Swatch struct {
	Values [3]float64
	Space  string
}

// NewSwatch creates a swatch in the given space.
func NewSwatch(space string, a, b, c float64) *Swatch {
	return &Swatch{Values: [3]float64{a, b, c}, Space: space}
}

// MarshalJSON encodes the swatch as [[a, b, c], space].
func (s Swatch) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{s.Values, s.Space})
}

// UnmarshalJSON decodes a [[a, b, c], space] pair. Any other shape is a
// precondition error.
func (s *Swatch) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil || len(parts) != 2 {
		return &PreconditionError{Arg: "swatch", Reason: "must be null or [[...colorValues], colorSpace]"}
	}

	var values []float64
	if err := json.Unmarshal(parts[0], &values); err != nil || len(values) != 3 {
		return &PreconditionError{Arg: "swatch", Reason: "color values must be an array of three numbers"}
	}

	var space string
	if err := json.Unmarshal(parts[1], &space); err != nil || space == "" {
		return &PreconditionError{Arg: "swatch", Reason: "color space must be a non-empty string"}
	}

	s.Values = [3]float64{values[0], values[1], values[2]}
	s.Space = space
	return nil
}

// Palette is a named, ordered list of slots. A nil entry is an empty slot
// and keeps its position.
type Palette struct {
	Name     string    `json:"name"`
	Swatches []*Swatch `json:"swatches"`
}

// Len returns the number of slots, empty ones included.
func (p *Palette) Len() int {
	return len(p.Swatches)
}

// Filled returns the number of non-empty slots.
func (p *Palette) Filled() int {
	n := 0
	for _, s := range p.Swatches {
		if s != nil {
			n++
		}
	}
	return n
}

// All returns an iterator over every slot, empty slots yielding nil.
func (p *Palette) All() func(func(int, *Swatch) bool) {
	return func(yield func(int, *Swatch) bool) {
		for i, s := range p.Swatches {
			if !yield(i, s) {
				return
			}
		}
	}
}

// UnmarshalJSON decodes {"name": ..., "swatches": [...]}, naming the
// offending element in any shape error. "colors" is accepted as an alias
// for "swatches".
func (p *Palette) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return &PreconditionError{Arg: "palette", Reason: "must be an object"}
	}

	name := ""
	if v, ok := raw["name"]; ok {
		if err := json.Unmarshal(v, &name); err != nil {
			return &PreconditionError{Arg: "name", Reason: fmt.Sprintf("must be a string, got %s", jsonKind(v))}
		}
	}

	list, ok := raw["swatches"]
	if !ok {
		list, ok = raw["colors"]
	}
	if !ok {
		return &PreconditionError{Arg: "swatches", Reason: "missing"}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(list, &elems); err != nil || elems == nil {
		return &PreconditionError{Arg: "swatches", Reason: fmt.Sprintf("must be an array, got %s", jsonKind(list))}
	}

	slots := make([]*Swatch, len(elems))
	for i, elem := range elems {
		if bytes.Equal(bytes.TrimSpace(elem), []byte("null")) {
			continue
		}
		var s Swatch
		if err := json.Unmarshal(elem, &s); err != nil {
			reason := err.Error()
			var pe *PreconditionError
			if errors.As(err, &pe) {
				reason = pe.Reason
			}
			return &PreconditionError{
				Arg:    fmt.Sprintf("swatches[%d]", i),
				Reason: fmt.Sprintf("%s (got %s)", reason, string(elem)),
			}
		}
		slots[i] = &s
	}

	p.Name = name
	p.Swatches = slots
	return nil
}

// ParsePalette decodes the JSON view of a palette.
func ParsePalette(data []byte) (*Palette, error) {
	var p Palette
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func jsonKind(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "nothing"
	}
	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
