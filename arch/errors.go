package arch

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/EDAcation/nextpnr-viewer-sub000/chipdb"
)

// ErrNotFound is matched by every lookup that finds nothing.
var ErrNotFound = errors.New("not found")

// PipNotFoundError indicates that no pip in the owning tile joins the two
// named endpoints.
type PipNotFoundError struct {
	Location chipdb.Location
	From     Endpoint
	To       Endpoint
}

func (e *PipNotFoundError) Error() string {
	return fmt.Sprintf("no pip at %s from %s to %s", e.Location, e.From, e.To)
}

// Is reports whether target is ErrNotFound.
func (e *PipNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotFoundError indicates that a named lookup other than a pip failed.
type NotFoundError struct {
	What string
}

func (e *NotFoundError) Error() string {
	return e.What + " not found"
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DecalKindError indicates a decal of the wrong kind was passed in.
type DecalKindError struct {
	Want DecalKind
	Got  Decal
}

func (e *DecalKindError) Error() string {
	return fmt.Sprintf("expected %s decal, got %s", e.Want, e.Got)
}

// IsNotFound returns true if err is, or wraps, a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
