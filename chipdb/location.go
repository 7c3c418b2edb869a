package chipdb

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/EDAcation/nextpnr-viewer-sub000/relptr"
)

// Location is a tile coordinate, or a delta between two tile coordinates.
type Location struct {
	X int16
	Y int16
}

func locationAt(buf []byte, off int) Location {
	return Location{X: relptr.Int16(buf, off), Y: relptr.Int16(buf, off+2)}
}

// Add returns l offset by d.
func (l Location) Add(d Location) Location {
	return Location{X: l.X + d.X, Y: l.Y + d.Y}
}

// Sub returns the delta that takes o to l.
func (l Location) Sub(o Location) Location {
	return Location{X: l.X - o.X, Y: l.Y - o.Y}
}

// IsZero reports whether l is the origin (an intra-tile delta).
func (l Location) IsZero() bool {
	return l.X == 0 && l.Y == 0
}

func (l Location) String() string {
	return fmt.Sprintf("X%dY%d", l.X, l.Y)
}

// LocationType is a tile template shared by every tile of one kind.
type LocationType struct{ record }

func newLocationType(buf []byte, off int) LocationType {
	return LocationType{record{buf, off}}
}

// Bels returns the template's bel table.
func (t LocationType) Bels() (relptr.Slice[Bel], error) {
	s, err := sliceOf(t.record, locBelData, BelSize, newBel)
	return s, errors.Wrap(err, "bel_data")
}

// Wires returns the template's wire table.
func (t LocationType) Wires() (relptr.Slice[Wire], error) {
	s, err := sliceOf(t.record, locWireData, WireSize, newWire)
	return s, errors.Wrap(err, "wire_data")
}

// Pips returns the template's pip table.
func (t LocationType) Pips() (relptr.Slice[Pip], error) {
	s, err := sliceOf(t.record, locPipData, PipSize, newPip)
	return s, errors.Wrap(err, "pip_data")
}

// Bel returns bel i of the template.
func (t LocationType) Bel(i int) (Bel, error) {
	bels, err := t.Bels()
	if err != nil {
		return Bel{}, err
	}
	bel, ok := bels.Get(i)
	if !ok {
		return Bel{}, &IndexError{Table: "bel_data", Index: i, Len: bels.Len()}
	}
	return bel, nil
}

// Wire returns wire i of the template.
func (t LocationType) Wire(i int) (Wire, error) {
	wires, err := t.Wires()
	if err != nil {
		return Wire{}, err
	}
	wire, ok := wires.Get(i)
	if !ok {
		return Wire{}, &IndexError{Table: "wire_data", Index: i, Len: wires.Len()}
	}
	return wire, nil
}

// Pip returns pip i of the template.
func (t LocationType) Pip(i int) (Pip, error) {
	pips, err := t.Pips()
	if err != nil {
		return Pip{}, err
	}
	pip, ok := pips.Get(i)
	if !ok {
		return Pip{}, &IndexError{Table: "pip_data", Index: i, Len: pips.Len()}
	}
	return pip, nil
}
