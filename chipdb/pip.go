package chipdb

// Pip is a programmable connection between two wires. Its endpoints may lie
// in neighbouring tiles; the locations are deltas from the owning tile.
type Pip struct{ record }

func newPip(buf []byte, off int) Pip {
	return Pip{record{buf, off}}
}

// RelSrcLoc is the source wire's tile relative to the owning tile.
func (p Pip) RelSrcLoc() Location { return p.loc(pipRelSrcLoc) }

// RelDstLoc is the destination wire's tile relative to the owning tile.
func (p Pip) RelDstLoc() Location { return p.loc(pipRelDstLoc) }

// SrcIdx indexes wire_data of the template at the source tile.
func (p Pip) SrcIdx() int16 { return p.i16(pipSrcIdx) }

// DstIdx indexes wire_data of the template at the destination tile.
func (p Pip) DstIdx() int16 { return p.i16(pipDstIdx) }

func (p Pip) TimingClass() int16  { return p.i16(pipTimingClass) }
func (p Pip) TileType() int8      { return p.i8(pipTileType) }
func (p Pip) PipType() int8       { return p.i8(pipPipType) }
func (p Pip) LutpermFlags() int16 { return p.i16(pipLutpermFlags) }
