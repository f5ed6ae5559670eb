package swatches

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// storedSwatch is a slot as written to Swatches.json.
type storedSwatch struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
	Alpha      int     `json:"alpha"`
	ColorSpace int     `json:"colorSpace"`
}

// storedDocument is the Swatches.json document written by Encode.
type storedDocument struct {
	Name     string          `json:"name"`
	Swatches []*storedSwatch `json:"swatches"`
}

// rawSwatch is a slot as read back. Only hue, saturation and brightness
// carry meaning; alpha and colorSpace are ignored.
type rawSwatch struct {
	Hue        *float64 `json:"hue"`
	Saturation *float64 `json:"saturation"`
	Brightness *float64 `json:"brightness"`
}

// rawDocument is the canonical form of a parsed Swatches.json.
type rawDocument struct {
	Name     *string      `json:"name"`
	Swatches []*rawSwatch `json:"swatches"`
}

// documentShape identifies which of the accepted layouts a document uses.
type documentShape int

const (
	// shapeObject is the plain {name, swatches} object.
	shapeObject documentShape = iota
	// shapeWrapped is an array whose first element is the object. Some
	// exporters produce it; Encode never does.
	shapeWrapped
)

var errEmptyDocument = errors.New("empty document")

// resolveShape inspects the first JSON token to pick a layout.
func resolveShape(data []byte) (documentShape, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return 0, errEmptyDocument
	}
	switch trimmed[0] {
	case '{':
		return shapeObject, nil
	case '[':
		return shapeWrapped, nil
	default:
		return 0, fmt.Errorf("document must be an object or an array, starts with %q", trimmed[0])
	}
}

// parseDocument turns Swatches.json text into a name and a list of raw
// records, nil for empty slots.
func parseDocument(text string) (string, []*rawSwatch, error) {
	data := []byte(text)

	shape, err := resolveShape(data)
	if err != nil {
		return "", nil, err
	}

	if shape == shapeWrapped {
		var wrapped []json.RawMessage
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return "", nil, fmt.Errorf("failed to parse wrapped document: %w", err)
		}
		if len(wrapped) == 0 {
			return "", nil, errEmptyDocument
		}
		data = wrapped[0]
		if s, err := resolveShape(data); err != nil || s != shapeObject {
			return "", nil, fmt.Errorf("wrapped document must contain an object")
		}
	}

	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if doc.Swatches == nil {
		return "", nil, fmt.Errorf("document has no swatches array")
	}

	for i, s := range doc.Swatches {
		if s == nil {
			continue
		}
		if s.Hue == nil || s.Saturation == nil || s.Brightness == nil {
			return "", nil, fmt.Errorf("swatch %d is missing hue, saturation or brightness", i)
		}
	}

	name := ""
	if doc.Name != nil {
		name = *doc.Name
	}
	return name, doc.Swatches, nil
}

// humanHSV scales a stored record to degrees and percent.
func (s *rawSwatch) humanHSV() [3]float64 {
	return [3]float64{*s.Hue * 360, *s.Saturation * 100, *s.Brightness * 100}
}

// newStoredSwatch scales a human-scale HSV triple down to [0,1] storage.
func newStoredSwatch(hsv [3]float64) *storedSwatch {
	return &storedSwatch{
		Hue:        hsv[0] / 360,
		Saturation: hsv[1] / 100,
		Brightness: hsv[2] / 100,
		Alpha:      1,
		ColorSpace: 0,
	}
}
