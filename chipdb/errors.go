package chipdb

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMissingTemplate is matched by every *MissingTemplateError.
var ErrMissingTemplate = errors.New("missing location-type template")

// MissingTemplateError indicates that a tile has no valid location-type
// template. Padding tiles at or beyond num_tiles always report this; callers
// enumerating the grid treat it as "no primitives here".
type MissingTemplateError struct {
	// Tile is the row-major tile index
	Tile int

	// Reason describes why no template applies
	Reason string
}

func (e *MissingTemplateError) Error() string {
	return fmt.Sprintf("tile %d has no template: %s", e.Tile, e.Reason)
}

// Is reports whether target is ErrMissingTemplate.
func (e *MissingTemplateError) Is(target error) bool {
	return target == ErrMissingTemplate
}

// IndexError indicates an index outside a decoded table.
type IndexError struct {
	Table string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range: table has %d entries",
		e.Table, e.Index, e.Len)
}
