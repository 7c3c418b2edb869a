// Package chipdb provides typed, zero-copy views over an ECP5 chip database.
//
// # Database Layout
//
// The database is one immutable little-endian blob. It starts with a
// self-relative pointer to the ChipInfo header; every nested table is
// reached through further self-relative pointers and slices (see package
// relptr).
//
//	ChipInfo:     [WIDTH(4)][HEIGHT(4)][NUM_TILES(4)][CONST_ID_COUNT(4)]
//	              [LOCATIONS(8)][LOCATION_TYPE(8)][LOCATION_GLBINFO(8)]
//	              [TILETYPE_NAMES(8)][PACKAGE_INFO(8)][PIO_INFO(8)]
//	              [TILE_INFO(8)][SPEED_GRADES(8)]
//	LocationType: [BEL_DATA(8)][WIRE_DATA(8)][PIP_DATA(8)]
//	Bel:          [NAME(4)][TYPE(4)][Z(4)][BEL_WIRES(8)]
//	Wire:         [NAME(4)][TYPE(2)][TILE_WIRE(2)][PIPS_UPHILL(8)]
//	              [PIPS_DOWNHILL(8)][BEL_PINS(8)]
//	Pip:          [REL_SRC_LOC(4)][REL_DST_LOC(4)][SRC_IDX(2)][DST_IDX(2)]
//	              [TIMING_CLASS(2)][TILE_TYPE(1)][PIP_TYPE(1)]
//	              [LUTPERM_FLAGS(2)][PADDING(2)]
//
// # Tile Deduplication
//
// Tiles of identical function share one LocationType template. The tile at
// (x, y) has index y*width + x and uses
//
//	locations[location_type[index]]
//
// Tiles at or beyond num_tiles have no template and contribute no
// primitives; Template reports them with ErrMissingTemplate.
//
// # Usage
//
//	chip, err := chipdb.Load("chipdb-45k.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tmpl, err := chip.TemplateAt(chipdb.Location{X: 10, Y: 12})
//	bels, err := tmpl.Bels()
//	for _, bel := range bels.All() {
//	    name, _ := bel.Name()
//	    fmt.Println(name, bel.Z())
//	}
//
// Views are cheap values holding the buffer and an offset. Scalar accessors
// never fail because a view is only created once its window has been
// bounds-checked; accessors that follow pointers return errors.
package chipdb
