package chipdbtest

import "encoding/binary"

// writer appends records to a growing blob and patches self-relative
// pointers in place.
type writer struct {
	buf []byte
}

// alloc reserves n zeroed bytes aligned to 4 and returns their offset.
func (w *writer) alloc(n int) int {
	for len(w.buf)%4 != 0 {
		w.buf = append(w.buf, 0)
	}
	off := len(w.buf)
	w.buf = append(w.buf, make([]byte, n)...)
	return off
}

func (w *writer) i32(off int, v int32) {
	binary.LittleEndian.PutUint32(w.buf[off:], uint32(v))
}

func (w *writer) i16(off int, v int16) {
	binary.LittleEndian.PutUint16(w.buf[off:], uint16(v))
}

func (w *writer) i8(off int, v int8) {
	w.buf[off] = byte(v)
}

func (w *writer) loc(off int, l Loc) {
	w.i16(off, l.X)
	w.i16(off+2, l.Y)
}

func (w *writer) rel(field, target int) {
	w.i32(field, int32(target-field))
}

// slice writes a slice header at field for count elements of size bytes and
// returns the offset of the first element.
func (w *writer) slice(field, count, size int) int {
	if count == 0 {
		return 0
	}
	base := w.alloc(count * size)
	w.rel(field, base)
	w.i32(field+4, int32(count))
	return base
}

func (w *writer) str(field int, s string) {
	off := w.alloc(len(s) + 1)
	copy(w.buf[off:], s)
	w.rel(field, off)
}

// Build serializes c into a chip database blob.
func Build(c Chip) []byte {
	w := &writer{}
	root := w.alloc(4)
	chip := w.alloc(80)
	w.rel(root, chip)

	numTiles := c.NumTiles
	if numTiles == 0 {
		numTiles = c.Width * c.Height
	}
	w.i32(chip+0, c.Width)
	w.i32(chip+4, c.Height)
	w.i32(chip+8, numTiles)
	w.i32(chip+12, c.ConstIDCount)

	base := w.slice(chip+16, len(c.Locations), 24)
	for i, l := range c.Locations {
		w.location(base+i*24, l)
	}

	types := c.LocationType
	if types == nil {
		types = make([]int32, c.Width*c.Height)
	}
	base = w.slice(chip+24, len(types), 4)
	for i, t := range types {
		w.i32(base+i*4, t)
	}

	base = w.slice(chip+32, len(c.GlobalInfo), 8)
	for i, g := range c.GlobalInfo {
		off := base + i*8
		w.i16(off, g.TapCol)
		w.i8(off+2, g.TapDir)
		w.i8(off+3, g.Quad)
		w.i16(off+4, g.SpineRow)
		w.i16(off+6, g.SpineCol)
	}

	base = w.slice(chip+40, len(c.TileTypeNames), 4)
	for i, name := range c.TileTypeNames {
		w.str(base+i*4, name)
	}

	base = w.slice(chip+48, len(c.Packages), 12)
	for i, p := range c.Packages {
		off := base + i*12
		w.str(off, p.Name)
		pins := w.slice(off+4, len(p.Pins), 12)
		for j, pin := range p.Pins {
			poff := pins + j*12
			w.str(poff, pin.Name)
			w.loc(poff+4, pin.AbsLoc)
			w.i32(poff+8, pin.BelIndex)
		}
	}

	base = w.slice(chip+56, len(c.PIOs), 16)
	for i, p := range c.PIOs {
		off := base + i*16
		w.loc(off, p.AbsLoc)
		w.i32(off+4, p.BelIndex)
		w.str(off+8, p.FunctionName)
		w.i16(off+12, p.Bank)
		w.i16(off+14, p.DQSGroup)
	}

	base = w.slice(chip+64, len(c.TileInfo), 8)
	for i, tiles := range c.TileInfo {
		names := w.slice(base+i*8, len(tiles), 8)
		for j, t := range tiles {
			w.str(names+j*8, t.Name)
			w.i16(names+j*8+4, t.TypeIdx)
		}
	}

	base = w.slice(chip+72, len(c.SpeedGrades), 16)
	for i, sg := range c.SpeedGrades {
		w.speedGrade(base+i*16, sg)
	}

	return w.buf
}

func (w *writer) location(off int, l Location) {
	bels := w.slice(off, len(l.Bels), 20)
	for i, b := range l.Bels {
		boff := bels + i*20
		w.str(boff, b.Name)
		w.i32(boff+4, b.Type)
		w.i32(boff+8, b.Z)
		pins := w.slice(boff+12, len(b.Wires), 16)
		for j, bw := range b.Wires {
			poff := pins + j*16
			w.loc(poff, bw.RelWireLoc)
			w.i32(poff+4, bw.WireIndex)
			w.i32(poff+8, bw.Port)
			w.i32(poff+12, bw.Type)
		}
	}
	if l.BadBelCount != 0 {
		w.i32(off+4, l.BadBelCount)
	}

	wires := w.slice(off+8, len(l.Wires), 32)
	for i, wi := range l.Wires {
		woff := wires + i*32
		w.str(woff, wi.Name)
		w.i16(woff+4, wi.Type)
		w.i16(woff+6, wi.TileWire)
		w.locators(woff+8, wi.Uphill)
		w.locators(woff+16, wi.Downhill)
		ports := w.slice(woff+24, len(wi.BelPins), 12)
		for j, p := range wi.BelPins {
			poff := ports + j*12
			w.loc(poff, p.RelBelLoc)
			w.i32(poff+4, p.BelIndex)
			w.i32(poff+8, p.Port)
		}
	}

	pips := w.slice(off+16, len(l.Pips), 20)
	for i, p := range l.Pips {
		poff := pips + i*20
		w.loc(poff, p.RelSrc)
		w.loc(poff+4, p.RelDst)
		w.i16(poff+8, p.SrcIdx)
		w.i16(poff+10, p.DstIdx)
		w.i16(poff+12, p.TimingClass)
		w.i8(poff+14, p.TileType)
		w.i8(poff+15, p.PipType)
		w.i16(poff+16, p.LutpermFlags)
	}
}

func (w *writer) locators(field int, locs []PipLocator) {
	base := w.slice(field, len(locs), 8)
	for i, l := range locs {
		w.loc(base+i*8, l.RelLoc)
		w.i32(base+i*8+4, l.Index)
	}
}

func (w *writer) speedGrade(off int, sg SpeedGrade) {
	cells := w.slice(off, len(sg.CellTimings), 20)
	for i, ct := range sg.CellTimings {
		coff := cells + i*20
		w.i32(coff, ct.CellType)
		arcs := w.slice(coff+4, len(ct.PropDelays), 16)
		for j, d := range ct.PropDelays {
			for k, v := range d {
				w.i32(arcs+j*16+k*4, v)
			}
		}
		checks := w.slice(coff+12, len(ct.SetupHolds), 24)
		for j, sh := range ct.SetupHolds {
			for k, v := range sh {
				w.i32(checks+j*24+k*4, v)
			}
		}
	}
	classes := w.slice(off+8, len(sg.PipClasses), 16)
	for i, d := range sg.PipClasses {
		for k, v := range d {
			w.i32(classes+i*16+k*4, v)
		}
	}
}
