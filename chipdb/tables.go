package chipdb

import (
	"github.com/pkg/errors"

	"github.com/EDAcation/nextpnr-viewer-sub000/relptr"
)

// GlobalInfo describes global clock routing for one tile.
type GlobalInfo struct{ record }

func newGlobalInfo(buf []byte, off int) GlobalInfo {
	return GlobalInfo{record{buf, off}}
}

func (g GlobalInfo) TapCol() int16   { return g.i16(0) }
func (g GlobalInfo) TapDir() int8    { return g.i8(2) }
func (g GlobalInfo) Quad() int8      { return g.i8(3) }
func (g GlobalInfo) SpineRow() int16 { return g.i16(4) }
func (g GlobalInfo) SpineCol() int16 { return g.i16(6) }

// PackageInfo is the pin-out of one device package.
type PackageInfo struct{ record }

func newPackageInfo(buf []byte, off int) PackageInfo {
	return PackageInfo{record{buf, off}}
}

// Name returns the package name, e.g. "CABGA381".
func (p PackageInfo) Name() (string, error) {
	name, err := p.str(0)
	return name, errors.Wrap(err, "package name")
}

// Pins returns the package's pins.
func (p PackageInfo) Pins() (relptr.Slice[PackagePin], error) {
	s, err := sliceOf(p.record, 4, PackagePinSize, newPackagePin)
	return s, errors.Wrap(err, "pin_data")
}

// PackagePin binds a package ball to an I/O bel.
type PackagePin struct{ record }

func newPackagePin(buf []byte, off int) PackagePin {
	return PackagePin{record{buf, off}}
}

// Name returns the ball name, e.g. "B11".
func (p PackagePin) Name() (string, error) {
	name, err := p.str(0)
	return name, errors.Wrap(err, "pin name")
}

// AbsLoc is the tile of the I/O bel.
func (p PackagePin) AbsLoc() Location { return p.loc(4) }

// BelIndex indexes bel_data of the template at AbsLoc.
func (p PackagePin) BelIndex() int32 { return p.i32(8) }

// PIOInfo describes one I/O pad.
type PIOInfo struct{ record }

func newPIOInfo(buf []byte, off int) PIOInfo {
	return PIOInfo{record{buf, off}}
}

func (p PIOInfo) AbsLoc() Location { return p.loc(0) }
func (p PIOInfo) BelIndex() int32  { return p.i32(4) }

// FunctionName returns the pad's dedicated function, e.g. "PCLKT0_0".
func (p PIOInfo) FunctionName() (string, error) {
	name, err := p.str(8)
	return name, errors.Wrap(err, "pio function name")
}

func (p PIOInfo) Bank() int16     { return p.i16(12) }
func (p PIOInfo) DQSGroup() int16 { return p.i16(14) }

// TileInfo lists the physical tiles at one grid location.
type TileInfo struct{ record }

func newTileInfo(buf []byte, off int) TileInfo {
	return TileInfo{record{buf, off}}
}

// Names returns the tiles stacked at this location.
func (t TileInfo) Names() (relptr.Slice[TileName], error) {
	s, err := sliceOf(t.record, 0, TileNameSize, newTileName)
	return s, errors.Wrap(err, "tile_names")
}

// TileName is one physical tile.
type TileName struct{ record }

func newTileName(buf []byte, off int) TileName {
	return TileName{record{buf, off}}
}

func (t TileName) Name() (string, error) {
	name, err := t.str(0)
	return name, errors.Wrap(err, "tile name")
}

// TypeIdx indexes the chip's tile type names.
func (t TileName) TypeIdx() int16 { return t.i16(4) }

// SpeedGrade holds the timing tables of one speed grade.
type SpeedGrade struct{ record }

func newSpeedGrade(buf []byte, off int) SpeedGrade {
	return SpeedGrade{record{buf, off}}
}

func (s SpeedGrade) CellTimings() (relptr.Slice[CellTiming], error) {
	out, err := sliceOf(s.record, 0, CellTimingSize, newCellTiming)
	return out, errors.Wrap(err, "cell_timings")
}

// PipClasses is indexed by Pip.TimingClass.
func (s SpeedGrade) PipClasses() (relptr.Slice[PipDelay], error) {
	out, err := sliceOf(s.record, 8, PipDelaySize, newPipDelay)
	return out, errors.Wrap(err, "pip_classes")
}

// CellTiming holds the timing arcs of one cell type.
type CellTiming struct{ record }

func newCellTiming(buf []byte, off int) CellTiming {
	return CellTiming{record{buf, off}}
}

func (c CellTiming) CellType() int32 { return c.i32(0) }

func (c CellTiming) PropDelays() (relptr.Slice[CellPropDelay], error) {
	s, err := sliceOf(c.record, 4, CellPropDelaySize, newCellPropDelay)
	return s, errors.Wrap(err, "prop_delays")
}

func (c CellTiming) SetupHolds() (relptr.Slice[CellSetupHold], error) {
	s, err := sliceOf(c.record, 12, CellSetupHoldSize, newCellSetupHold)
	return s, errors.Wrap(err, "setup_holds")
}

// CellPropDelay is a combinational arc.
type CellPropDelay struct {
	FromPort int32
	ToPort   int32
	MinDelay int32
	MaxDelay int32
}

func newCellPropDelay(buf []byte, off int) CellPropDelay {
	return CellPropDelay{
		FromPort: relptr.Int32(buf, off),
		ToPort:   relptr.Int32(buf, off+4),
		MinDelay: relptr.Int32(buf, off+8),
		MaxDelay: relptr.Int32(buf, off+12),
	}
}

// CellSetupHold is a setup/hold check against a clock port.
type CellSetupHold struct {
	SigPort   int32
	ClockPort int32
	MinSetup  int32
	MaxSetup  int32
	MinHold   int32
	MaxHold   int32
}

func newCellSetupHold(buf []byte, off int) CellSetupHold {
	return CellSetupHold{
		SigPort:   relptr.Int32(buf, off),
		ClockPort: relptr.Int32(buf, off+4),
		MinSetup:  relptr.Int32(buf, off+8),
		MaxSetup:  relptr.Int32(buf, off+12),
		MinHold:   relptr.Int32(buf, off+16),
		MaxHold:   relptr.Int32(buf, off+20),
	}
}

// PipDelay is the delay model of one pip timing class.
type PipDelay struct {
	MinBaseDelay   int32
	MaxBaseDelay   int32
	MinFanoutAdder int32
	MaxFanoutAdder int32
}

func newPipDelay(buf []byte, off int) PipDelay {
	return PipDelay{
		MinBaseDelay:   relptr.Int32(buf, off),
		MaxBaseDelay:   relptr.Int32(buf, off+4),
		MinFanoutAdder: relptr.Int32(buf, off+8),
		MaxFanoutAdder: relptr.Int32(buf, off+12),
	}
}
