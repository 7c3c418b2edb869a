package chipdb

import (
	"testing"

	"github.com/EDAcation/nextpnr-viewer-sub000/internal/chipdbtest"
)

// testChip is a 3x2 grid whose last tile is padding (num_tiles = 5).
// Tiles 0, 2 and 4 use the PLC template; tiles 1 and 3 are empty.
func testChip() chipdbtest.Chip {
	plc := chipdbtest.Location{
		Bels: []chipdbtest.Bel{
			{
				Name: "SLICEA",
				Type: 17,
				Z:    0,
				Wires: []chipdbtest.BelWire{
					{WireIndex: 0, Port: 40, Type: int32(PortIn)},
					{WireIndex: 1, Port: 41, Type: int32(PortOut)},
				},
			},
			{Name: "SLICEB", Type: 17, Z: 1},
		},
		Wires: []chipdbtest.Wire{
			{
				Name:     "A0",
				Type:     3,
				TileWire: 120,
				Uphill:   []chipdbtest.PipLocator{{RelLoc: chipdbtest.Loc{}, Index: 0}},
				BelPins:  []chipdbtest.BelPort{{BelIndex: 0, Port: 40}},
			},
			{
				Name:     "F0",
				Type:     4,
				TileWire: -2,
				Downhill: []chipdbtest.PipLocator{
					{RelLoc: chipdbtest.Loc{}, Index: 0},
					{RelLoc: chipdbtest.Loc{X: 1}, Index: 1},
				},
			},
		},
		Pips: []chipdbtest.Pip{
			{SrcIdx: 1, DstIdx: 0, TimingClass: 2, TileType: 5, PipType: 1, LutpermFlags: 0x11},
			{RelSrc: chipdbtest.Loc{X: -1}, SrcIdx: 1, DstIdx: 0, TimingClass: 3, PipType: -1},
		},
	}

	return chipdbtest.Chip{
		Width:         3,
		Height:        2,
		NumTiles:      5,
		ConstIDCount:  1234,
		Locations:     []chipdbtest.Location{plc, {}},
		LocationType:  []int32{0, 1, 0, 1, 0, 0},
		GlobalInfo:    []chipdbtest.GlobalInfo{{TapCol: 2, TapDir: TapDirRight, Quad: QuadLR, SpineRow: 7, SpineCol: 9}},
		TileTypeNames: []string{"PLC2", "TAP_DRIVE"},
		Packages: []chipdbtest.Package{
			{
				Name: "CABGA381",
				Pins: []chipdbtest.PackagePin{{Name: "B11", AbsLoc: chipdbtest.Loc{X: 2, Y: 1}, BelIndex: 1}},
			},
		},
		PIOs: []chipdbtest.PIO{
			{AbsLoc: chipdbtest.Loc{X: 2, Y: 1}, BelIndex: 1, FunctionName: "PCLKT0_0", Bank: 0, DQSGroup: -1},
		},
		TileInfo: [][]chipdbtest.TileName{
			{{Name: "R1C1:PLC2", TypeIdx: 0}},
			{{Name: "R1C2:TAP_DRIVE", TypeIdx: 1}, {Name: "R1C2:CIB", TypeIdx: 0}},
		},
		SpeedGrades: []chipdbtest.SpeedGrade{
			{
				CellTimings: []chipdbtest.CellTiming{
					{
						CellType:   17,
						PropDelays: [][4]int32{{40, 41, 100, 200}},
						SetupHolds: [][6]int32{{40, 50, 1, 2, 3, 4}},
					},
				},
				PipClasses: [][4]int32{{10, 20, 1, 2}},
			},
		},
	}
}

func openTestChip(t *testing.T) ChipInfo {
	t.Helper()
	chip, err := Open(chipdbtest.Build(testChip()))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	return chip
}
