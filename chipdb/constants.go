package chipdb

// Record sizes in bytes.
const (
	ChipInfoSize      = 80
	LocationTypeSize  = 24
	LocationSize      = 4
	BelSize           = 20
	BelWireSize       = 16
	BelPortSize       = 12
	WireSize          = 32
	PipSize           = 20
	PipLocatorSize    = 8
	GlobalInfoSize    = 8
	PackageInfoSize   = 12
	PackagePinSize    = 12
	PIOInfoSize       = 16
	TileInfoSize      = 8
	TileNameSize      = 8
	SpeedGradeSize    = 16
	CellTimingSize    = 20
	CellPropDelaySize = 16
	CellSetupHoldSize = 24
	PipDelaySize      = 16
)

// ChipInfo field offsets.
const (
	chipWidth          = 0
	chipHeight         = 4
	chipNumTiles       = 8
	chipConstIDCount   = 12
	chipLocations      = 16
	chipLocationType   = 24
	chipLocationGlobal = 32
	chipTileTypeNames  = 40
	chipPackageInfo    = 48
	chipPIOInfo        = 56
	chipTileInfo       = 64
	chipSpeedGrades    = 72
)

// LocationType field offsets.
const (
	locBelData  = 0
	locWireData = 8
	locPipData  = 16
)

// Bel field offsets.
const (
	belName     = 0
	belType     = 4
	belZ        = 8
	belBelWires = 12
)

// Wire field offsets.
const (
	wireName         = 0
	wireType         = 4
	wireTileWire     = 6
	wirePipsUphill   = 8
	wirePipsDownhill = 16
	wireBelPins      = 24
)

// Pip field offsets.
const (
	pipRelSrcLoc    = 0
	pipRelDstLoc    = 4
	pipSrcIdx       = 8
	pipDstIdx       = 10
	pipTimingClass  = 12
	pipTileType     = 14
	pipPipType      = 15
	pipLutpermFlags = 16
)

// PortType is the direction of a bel pin.
type PortType int32

const (
	PortIn    PortType = 0
	PortOut   PortType = 1
	PortInOut PortType = 2
)

func (p PortType) String() string {
	switch p {
	case PortIn:
		return "in"
	case PortOut:
		return "out"
	case PortInOut:
		return "inout"
	default:
		return "unknown"
	}
}

// Global clock routing quadrants.
const (
	QuadUL = 0
	QuadLL = 1
	QuadUR = 2
	QuadLR = 3
)

// Global clock tap directions.
const (
	TapDirLeft  = 0
	TapDirRight = 1
)
