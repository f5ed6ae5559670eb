package swatches

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatches/internal/archive"
	"github.com/jmylchreest/swatches/internal/colour"
	"github.com/jmylchreest/swatches/internal/text"
)

// Format selects the representation Encode returns.
type Format = archive.Format

const (
	// FormatBytes returns the raw zip container.
	FormatBytes = archive.FormatBytes
	// FormatBase64 returns the container as base64 text.
	FormatBase64 = archive.FormatBase64
)

// ParseFormat parses a Format name; "" selects FormatBytes.
func ParseFormat(name string) (Format, error) {
	return archive.ParseFormat(name)
}

// Archive extracts and builds the container around Swatches.json.
type Archive interface {
	Extract(data []byte) (map[string][]byte, error)
	Build(entries map[string][]byte, opts archive.Options) ([]byte, error)
}

// Converter reports supported colour spaces and converts triples between them.
// It must support NativeSpace.
type Converter interface {
	Supports(space string) bool
	Spaces() []string
	Convert(from, to string, v [3]float64) ([3]float64, error)
}

// TextDecoder turns entry bytes into a UTF-8 string.
type TextDecoder interface {
	Decode(b []byte) (string, error)
}

// Codec decodes and encodes palette files. It holds no mutable state and is
// safe for concurrent use.
type Codec struct {
	archive   Archive
	converter Converter
	text      TextDecoder
	logger    hclog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithArchive replaces the zip container adapter.
func WithArchive(a Archive) Option {
	return func(c *Codec) { c.archive = a }
}

// WithConverter replaces the colour converter.
func WithConverter(conv Converter) Option {
	return func(c *Codec) { c.converter = conv }
}

// WithTextDecoder replaces the entry text decoder.
func WithTextDecoder(d TextDecoder) Option {
	return func(c *Codec) { c.text = d }
}

// WithLogger sets the logger used for decode diagnostics.
func WithLogger(l hclog.Logger) Option {
	return func(c *Codec) { c.logger = l }
}

// New creates a Codec. Collaborators not supplied through options default to
// the zip archive, the built-in colour converter and a strict UTF-8 decoder.
func New(opts ...Option) *Codec {
	c := &Codec{
		archive:   archive.NewZip(),
		converter: colour.NewConverter(),
		text:      text.NewDecoder(),
		logger:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Spaces returns the colour spaces Decode and Encode accept.
func (c *Codec) Spaces() []string {
	return c.converter.Spaces()
}

// CheckSpace returns an *UnsupportedColorSpaceError unless space is
// supported.
func (c *Codec) CheckSpace(space string) error {
	if space == NativeSpace || c.converter.Supports(space) {
		return nil
	}
	return &UnsupportedColorSpaceError{Space: space}
}

// Decode reads a palette file and returns its colours in space ("" means
// hsv). The space is validated before data is looked at. Every other failure
// is reported as an *InvalidFileError.
func (c *Codec) Decode(data []byte, space string) (*Palette, error) {
	space = orNative(space)
	if err := c.CheckSpace(space); err != nil {
		return nil, err
	}

	p, err := c.decode(data, space)
	if err != nil {
		c.logger.Debug("failed to decode palette file", "space", space, "size", len(data), "error", err)
		return nil, &InvalidFileError{cause: err}
	}

	c.logger.Trace("decoded palette", "name", p.Name, "slots", p.Len(), "space", space)
	return p, nil
}

func (c *Codec) decode(data []byte, space string) (*Palette, error) {
	entries, err := c.archive.Extract(data)
	if err != nil {
		return nil, err
	}

	entry, ok := entries[EntryName]
	if !ok {
		return nil, fmt.Errorf("archive has no %s entry", EntryName)
	}

	doc, err := c.text.Decode(entry)
	if err != nil {
		return nil, err
	}

	name, records, err := parseDocument(doc)
	if err != nil {
		return nil, err
	}

	slots := make([]*Swatch, len(records))
	for i, rec := range records {
		if rec == nil {
			continue
		}
		values := rec.humanHSV()
		if space != NativeSpace {
			values, err = c.converter.Convert(NativeSpace, space, values)
			if err != nil {
				return nil, fmt.Errorf("swatch %d: %w", i, err)
			}
		}
		slots[i] = &Swatch{Values: values, Space: space}
	}

	return &Palette{Name: name, Swatches: slots}, nil
}

// Encode builds a palette file from name and slots. Only the first
// MaxSwatches slots are used; a nil slot is written as an empty slot.
func (c *Codec) Encode(name string, slots []*Swatch, format Format) ([]byte, error) {
	if format == "" {
		format = FormatBytes
	}
	if format != FormatBytes && format != FormatBase64 {
		return nil, &PreconditionError{Arg: "format", Reason: fmt.Sprintf("unknown output format %q", format)}
	}

	if len(slots) > MaxSwatches {
		c.logger.Debug("truncating palette", "name", name, "slots", len(slots), "max", MaxSwatches)
		slots = slots[:MaxSwatches]
	}

	stored := make([]*storedSwatch, len(slots))
	for i, s := range slots {
		if s == nil {
			continue
		}
		if s.Space == "" {
			return nil, &PreconditionError{
				Arg:    fmt.Sprintf("swatches[%d]", i),
				Reason: "each entry must be null or a color value with a color space",
			}
		}

		if err := c.CheckSpace(s.Space); err != nil {
			return nil, err
		}
		// Same-space conversion still validates the values.
		hsv, err := c.converter.Convert(s.Space, NativeSpace, s.Values)
		if err != nil {
			return nil, &InvalidColorError{Values: s.Values, Space: s.Space, cause: err}
		}
		stored[i] = newStoredSwatch(hsv)
	}

	doc, err := json.Marshal(storedDocument{Name: name, Swatches: stored})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal swatch document: %w", err)
	}

	out, err := c.archive.Build(map[string][]byte{EntryName: doc}, archive.Options{Format: format})
	if err != nil {
		return nil, fmt.Errorf("failed to build palette archive: %w", err)
	}
	return out, nil
}

// EncodePalette encodes p; see Encode.
func (c *Codec) EncodePalette(p *Palette, format Format) ([]byte, error) {
	if p == nil {
		return nil, &PreconditionError{Arg: "palette", Reason: "must not be nil"}
	}
	return c.Encode(p.Name, p.Swatches, format)
}
