package chipdb

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/EDAcation/nextpnr-viewer-sub000/relptr"
)

// Wire is one routing segment in a tile template.
//
// The uphill and downhill pip lists are decoded at most once per Wire value
// and shared by its copies. All other accessors decode on every call.
type Wire struct {
	record
	uphill   func() ([]PipLocator, error)
	downhill func() ([]PipLocator, error)
}

func newWire(buf []byte, off int) Wire {
	w := Wire{record: record{buf, off}}
	w.uphill = sync.OnceValues(func() ([]PipLocator, error) {
		return w.locators(wirePipsUphill, "pips_uphill")
	})
	w.downhill = sync.OnceValues(func() ([]PipLocator, error) {
		return w.locators(wirePipsDownhill, "pips_downhill")
	})
	return w
}

func (w Wire) locators(at int, what string) ([]PipLocator, error) {
	s, err := sliceOf(w.record, at, PipLocatorSize, newPipLocator)
	if err != nil {
		return nil, errors.Wrap(err, what)
	}
	return s.Collect(), nil
}

// Name returns the wire name, e.g. "H02W0701".
func (w Wire) Name() (string, error) {
	name, err := w.str(wireName)
	return name, errors.Wrap(err, "wire name")
}

// Type returns the wire kind as a constant ID.
func (w Wire) Type() int16 { return w.i16(wireType) }

// TileWire returns the dense identifier used for geometry lookup.
func (w Wire) TileWire() int16 { return w.i16(wireTileWire) }

// PipsUphill returns the pips driving this wire. The result is computed once
// and must not be modified.
func (w Wire) PipsUphill() ([]PipLocator, error) {
	if w.uphill == nil {
		return w.locators(wirePipsUphill, "pips_uphill")
	}
	return w.uphill()
}

// PipsDownhill returns the pips driven by this wire. The result is computed
// once and must not be modified.
func (w Wire) PipsDownhill() ([]PipLocator, error) {
	if w.downhill == nil {
		return w.locators(wirePipsDownhill, "pips_downhill")
	}
	return w.downhill()
}

// BelPins returns the bel pins attached to this wire.
func (w Wire) BelPins() (relptr.Slice[BelPort], error) {
	s, err := sliceOf(w.record, wireBelPins, BelPortSize, newBelPort)
	return s, errors.Wrap(err, "bel_pins")
}

// PipLocator addresses a pip in the template of a tile relative to the
// wire's tile.
type PipLocator struct {
	RelLoc Location
	Index  int32
}

func newPipLocator(buf []byte, off int) PipLocator {
	return PipLocator{
		RelLoc: locationAt(buf, off),
		Index:  relptr.Int32(buf, off+4),
	}
}

// BelPort is one bel pin attached to a wire.
type BelPort struct{ record }

func newBelPort(buf []byte, off int) BelPort {
	return BelPort{record{buf, off}}
}

// RelBelLoc is the bel's tile relative to the wire's tile.
func (p BelPort) RelBelLoc() Location { return p.loc(0) }

// BelIndex indexes bel_data of the template at the bel's tile.
func (p BelPort) BelIndex() int32 { return p.i32(4) }

// Port is the pin name as a constant ID.
func (p BelPort) Port() int32 { return p.i32(8) }
