package swatches

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors. Every input error returned by Decode and Encode matches
// exactly one of these with errors.Is. A failure to build the archive in
// Encode is returned wrapped as-is.
var (
	ErrUnsupportedColorSpace = errors.New("unsupported color space")
	ErrInvalidFile           = errors.New("invalid .swatches file")
	ErrInvalidColor          = errors.New("invalid color")
	ErrPrecondition          = errors.New("invalid argument")
)

// UnsupportedColorSpaceError reports a colour space the converter does not know.
type UnsupportedColorSpaceError struct {
	Space string
}

func (e *UnsupportedColorSpaceError) Error() string {
	return fmt.Sprintf("color space %s is not supported", e.Space)
}

// Is matches ErrUnsupportedColorSpace.
func (e *UnsupportedColorSpaceError) Is(target error) bool {
	return target == ErrUnsupportedColorSpace
}

// InvalidFileError is returned for any failure while reading a palette file.
// The message is fixed; the underlying failure is available through Cause
// for diagnostics but deliberately not through Unwrap.
type InvalidFileError struct {
	cause error
}

func (e *InvalidFileError) Error() string {
	return ErrInvalidFile.Error()
}

// Is matches ErrInvalidFile.
func (e *InvalidFileError) Is(target error) bool {
	return target == ErrInvalidFile
}

// Cause returns the failure that made the file unreadable.
func (e *InvalidFileError) Cause() error {
	return e.cause
}

// InvalidColorError reports a colour value that could not be converted to
// the native space.
type InvalidColorError struct {
	Values [3]float64
	Space  string
	cause  error
}

func (e *InvalidColorError) Error() string {
	parts := make([]string, len(e.Values))
	for i, v := range e.Values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("%s is not a valid %s color", strings.Join(parts, ","), e.Space)
}

// Is matches ErrInvalidColor.
func (e *InvalidColorError) Is(target error) bool {
	return target == ErrInvalidColor
}

func (e *InvalidColorError) Unwrap() error {
	return e.cause
}

// PreconditionError reports a malformed argument to Encode or ParsePalette.
// It is returned before any conversion or archive work happens.
type PreconditionError struct {
	// Arg names the offending argument, e.g. "name" or "swatches[3]".
	Arg    string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Arg, e.Reason)
}

// Is matches ErrPrecondition.
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}
