package arch

import (
	"testing"

	"github.com/EDAcation/nextpnr-viewer-sub000/chipdb"
	"github.com/EDAcation/nextpnr-viewer-sub000/internal/chipdbtest"
)

// plcTemplate has two bels, three wires and three pips:
//
//	pip 0: F0 -> A0 inside the tile
//	pip 1: H02W0701 of the west neighbour -> A0
//	pip 2: F0 -> A0 again
func plcTemplate() chipdbtest.Location {
	return chipdbtest.Location{
		Bels: []chipdbtest.Bel{
			{
				Name: "SLICEA",
				Type: 17,
				Wires: []chipdbtest.BelWire{
					{WireIndex: 0, Port: 40, Type: int32(chipdb.PortIn)},
					{WireIndex: 1, Port: 41, Type: int32(chipdb.PortOut)},
				},
			},
			{Name: "SLICEB", Type: 17, Z: 1},
		},
		Wires: []chipdbtest.Wire{
			{
				Name:    "A0",
				Uphill:  []chipdbtest.PipLocator{{Index: 0}, {Index: 1}},
				BelPins: []chipdbtest.BelPort{{BelIndex: 0, Port: 40}},
			},
			{
				Name:     "F0",
				Downhill: []chipdbtest.PipLocator{{Index: 0}, {Index: 2}},
			},
			{
				Name:     "H02W0701",
				Downhill: []chipdbtest.PipLocator{{RelLoc: chipdbtest.Loc{X: 1}, Index: 1}},
			},
		},
		Pips: []chipdbtest.Pip{
			{SrcIdx: 1, DstIdx: 0},
			{RelSrc: chipdbtest.Loc{X: -1}, SrcIdx: 2, DstIdx: 0},
			{SrcIdx: 1, DstIdx: 0, TimingClass: 1},
		},
	}
}

// testChip is a 3x2 grid. Tile (2,0) uses the empty template and tile (2,1)
// is padding beyond num_tiles; the other four tiles use the PLC template.
func testChip() chipdbtest.Chip {
	return chipdbtest.Chip{
		Width:        3,
		Height:       2,
		NumTiles:     5,
		Locations:    []chipdbtest.Location{plcTemplate(), {}},
		LocationType: []int32{0, 0, 1, 0, 0, 0},
		Packages: []chipdbtest.Package{
			{
				Name: "CABGA256",
				Pins: []chipdbtest.PackagePin{
					{Name: "A2", AbsLoc: chipdbtest.Loc{X: 1, Y: 1}, BelIndex: 1},
				},
			},
		},
		TileInfo: [][]chipdbtest.TileName{
			{{Name: "R1C1:PLC2"}},
			{{Name: "R1C2:PLC2"}},
			{{Name: "R1C3:TAP_DRIVE"}},
			{{Name: "R2C1:PLC2"}},
			{{Name: "R2C2:PLC2"}, {Name: "R2C2:CIB"}},
		},
	}
}

func newTestArch(t *testing.T, c chipdbtest.Chip, opts ...Option) *Arch {
	t.Helper()
	chip, err := chipdb.Open(chipdbtest.Build(c))
	if err != nil {
		t.Fatalf("chipdb.Open() error: %v", err)
	}
	return New(chip, opts...)
}

func loc(x, y int16) chipdb.Location {
	return chipdb.Location{X: x, Y: y}
}
