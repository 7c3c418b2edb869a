package chipdb

import (
	"github.com/pkg/errors"

	"github.com/EDAcation/nextpnr-viewer-sub000/relptr"
)

// Bel is a placeable logic primitive in a tile template.
type Bel struct{ record }

func newBel(buf []byte, off int) Bel {
	return Bel{record{buf, off}}
}

// Name returns the bel name, e.g. "SLICEA".
func (b Bel) Name() (string, error) {
	name, err := b.str(belName)
	return name, errors.Wrap(err, "bel name")
}

// Type returns the primitive kind as a constant ID.
func (b Bel) Type() int32 { return b.i32(belType) }

// Z returns the sub-tile stacking index.
func (b Bel) Z() int32 { return b.i32(belZ) }

// Wires returns the bel's pins and the wires they attach to.
func (b Bel) Wires() (relptr.Slice[BelWire], error) {
	s, err := sliceOf(b.record, belBelWires, BelWireSize, newBelWire)
	return s, errors.Wrap(err, "bel_wires")
}

// BelWire connects one bel pin to a wire, possibly in a neighbouring tile.
type BelWire struct{ record }

func newBelWire(buf []byte, off int) BelWire {
	return BelWire{record{buf, off}}
}

// RelWireLoc is the wire's tile relative to the bel's tile.
func (w BelWire) RelWireLoc() Location { return w.loc(0) }

// WireIndex indexes wire_data of the template at the wire's tile.
func (w BelWire) WireIndex() int32 { return w.i32(4) }

// Port is the pin name as a constant ID.
func (w BelWire) Port() int32 { return w.i32(8) }

// Type is the pin direction.
func (w BelWire) Type() PortType { return PortType(w.i32(12)) }
