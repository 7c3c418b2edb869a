package relptr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrBounds is matched by every *BoundsError.
var ErrBounds = errors.New("read outside buffer")

// BoundsError indicates that decoding a field would read outside the buffer.
// This means the input is truncated or corrupt.
type BoundsError struct {
	// Kind is the encoding being decoded ("pointer", "string", "slice", "record")
	Kind string

	// Field is the absolute offset of the field holding the pointer
	Field int

	// Start is the absolute offset where the read begins
	Start int64

	// Length is the number of bytes the read needs
	Length int64

	// Size is the length of the buffer
	Size int

	// Reason optionally describes the failure
	Reason string
}

func (e *BoundsError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s at field 0x%X: %s (start 0x%X, buffer %d bytes)",
			e.Kind, e.Field, e.Reason, e.Start, e.Size)
	}
	return fmt.Sprintf("%s at field 0x%X: read [0x%X, 0x%X) outside buffer of %d bytes",
		e.Kind, e.Field, e.Start, e.Start+e.Length, e.Size)
}

// Is reports whether target is ErrBounds.
func (e *BoundsError) Is(target error) bool {
	return target == ErrBounds
}

// IsBoundsError returns true if err is, or wraps, a *BoundsError.
func IsBoundsError(err error) bool {
	var be *BoundsError
	return errors.As(err, &be)
}

// checkRange returns a *BoundsError unless [start, start+length) lies inside buf.
func checkRange(buf []byte, kind string, field int, start, length int64) error {
	if start < 0 || length < 0 || start+length > int64(len(buf)) {
		return &BoundsError{
			Kind:   kind,
			Field:  field,
			Start:  start,
			Length: length,
			Size:   len(buf),
		}
	}
	return nil
}
