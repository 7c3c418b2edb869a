package chipdbtest

import "fmt"

// Demo returns a small but complete chip: a width x height grid of logic
// tiles ringed by I/O tiles, with one package bonding the west I/O column.
func Demo(width, height int32) Chip {
	plc := Location{
		Bels: []Bel{
			{Name: "SLICEA", Type: 1, Z: 0, Wires: []BelWire{{WireIndex: 0, Port: 10}, {WireIndex: 1, Port: 11, Type: 1}}},
			{Name: "SLICEB", Type: 1, Z: 1, Wires: []BelWire{{WireIndex: 2, Port: 10}, {WireIndex: 3, Port: 11, Type: 1}}},
		},
		Wires: []Wire{
			{Name: "A0", TileWire: 0, Uphill: []PipLocator{{Index: 0}, {Index: 2}}, BelPins: []BelPort{{BelIndex: 0, Port: 10}}},
			{Name: "F0", TileWire: 1, Downhill: []PipLocator{{Index: 0}, {Index: 1}}, BelPins: []BelPort{{BelIndex: 0, Port: 11}}},
			{Name: "A1", TileWire: 2, Uphill: []PipLocator{{Index: 1}}, BelPins: []BelPort{{BelIndex: 1, Port: 10}}},
			{Name: "F1", TileWire: 3, BelPins: []BelPort{{BelIndex: 1, Port: 11}}},
			{Name: "H02W0701", TileWire: 4, Downhill: []PipLocator{{RelLoc: Loc{X: 1}, Index: 2}}},
		},
		Pips: []Pip{
			{SrcIdx: 1, DstIdx: 0},
			{SrcIdx: 1, DstIdx: 2},
			{RelSrc: Loc{X: -1}, SrcIdx: 4, DstIdx: 0, TimingClass: 1},
		},
	}
	pio := Location{
		Bels: []Bel{
			{Name: "PIOA", Type: 2, Z: 0},
			{Name: "PIOB", Type: 2, Z: 1},
		},
		Wires: []Wire{{Name: "PADDOA"}, {Name: "PADDOB"}},
	}

	c := Chip{
		Width:         width,
		Height:        height,
		ConstIDCount:  64,
		Locations:     []Location{plc, pio, {}},
		LocationType:  make([]int32, width*height),
		TileTypeNames: []string{"PLC2", "PIOL", "EMPTY"},
		TileInfo:      make([][]TileName, width*height),
	}

	pkg := Package{Name: "DEMO64"}
	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			i := y*width + x
			edge := x == 0 || y == 0 || x == width-1 || y == height-1
			corner := (x == 0 || x == width-1) && (y == 0 || y == height-1)
			switch {
			case corner:
				c.LocationType[i] = 2
				c.TileInfo[i] = []TileName{{Name: fmt.Sprintf("R%dC%d:EMPTY", y, x), TypeIdx: 2}}
			case edge:
				c.LocationType[i] = 1
				c.TileInfo[i] = []TileName{{Name: fmt.Sprintf("R%dC%d:PIOL", y, x), TypeIdx: 1}}
				if x == 0 {
					pkg.Pins = append(pkg.Pins, PackagePin{
						Name:   fmt.Sprintf("P%d", y),
						AbsLoc: Loc{X: int16(x), Y: int16(y)},
					})
				}
			default:
				c.TileInfo[i] = []TileName{{Name: fmt.Sprintf("R%dC%d:PLC2", y, x), TypeIdx: 0}}
			}
		}
	}
	c.Packages = []Package{pkg}
	return c
}
