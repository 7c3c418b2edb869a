// Package chipdbtest serializes Go descriptions of chips into chip database
// blobs, for tests and demos.
//
// The blob layout matches package chipdb: a self-relative root pointer at
// offset 0 followed by the ChipInfo header and its tables.
package chipdbtest

// Loc is a tile coordinate or delta.
type Loc struct {
	X int16
	Y int16
}

// Chip describes a whole chip database.
type Chip struct {
	Width  int32
	Height int32

	// NumTiles defaults to Width*Height when zero.
	NumTiles     int32
	ConstIDCount int32

	Locations []Location

	// LocationType maps tile index to Locations index. When nil every tile
	// uses template 0.
	LocationType []int32

	GlobalInfo    []GlobalInfo
	TileTypeNames []string
	Packages      []Package
	PIOs          []PIO
	TileInfo      [][]TileName
	SpeedGrades   []SpeedGrade
}

// Location is one tile template.
type Location struct {
	Bels  []Bel
	Wires []Wire
	Pips  []Pip

	// BadBelCount, when non-zero, replaces the bel_data element count so the
	// table points past the end of the blob.
	BadBelCount int32
}

type Bel struct {
	Name  string
	Type  int32
	Z     int32
	Wires []BelWire
}

type BelWire struct {
	RelWireLoc Loc
	WireIndex  int32
	Port       int32
	Type       int32
}

type Wire struct {
	Name     string
	Type     int16
	TileWire int16
	Uphill   []PipLocator
	Downhill []PipLocator
	BelPins  []BelPort
}

type PipLocator struct {
	RelLoc Loc
	Index  int32
}

type BelPort struct {
	RelBelLoc Loc
	BelIndex  int32
	Port      int32
}

type Pip struct {
	RelSrc       Loc
	RelDst       Loc
	SrcIdx       int16
	DstIdx       int16
	TimingClass  int16
	TileType     int8
	PipType      int8
	LutpermFlags int16
}

type GlobalInfo struct {
	TapCol   int16
	TapDir   int8
	Quad     int8
	SpineRow int16
	SpineCol int16
}

type Package struct {
	Name string
	Pins []PackagePin
}

type PackagePin struct {
	Name     string
	AbsLoc   Loc
	BelIndex int32
}

type PIO struct {
	AbsLoc       Loc
	BelIndex     int32
	FunctionName string
	Bank         int16
	DQSGroup     int16
}

type TileName struct {
	Name    string
	TypeIdx int16
}

type SpeedGrade struct {
	CellTimings []CellTiming
	PipClasses  [][4]int32
}

type CellTiming struct {
	CellType   int32
	PropDelays [][4]int32
	SetupHolds [][6]int32
}
