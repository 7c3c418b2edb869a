// Package arch enumerates the primitives of an ECP5 chip database and
// resolves interconnect elements by name.
//
// # Decals
//
// Every addressable primitive is handed out as a Decal: a kind, a tile
// location and an index into that tile's template table. A Decal carries no
// geometry; a renderer passes it back to Bel, Wire, Pip or DecalName to
// fetch what it needs to draw.
//
// # Enumeration
//
// Bels, Wires and Pips walk the tile grid in row-major order and emit one
// decal per entry of each tile's template table:
//
//	a := arch.New(chip)
//	bels, err := a.Bels()
//	for _, d := range bels {
//	    name, _ := a.DecalName(d)
//	    fmt.Println(d, name)
//	}
//
// Padding tiles and tiles without a template contribute nothing. A tile
// whose tables are corrupt also contributes nothing unless WithStrict is
// set, in which case enumeration stops with the decoding error.
//
// # Pip Resolution
//
// FindPip locates a pip from its owning tile and two named endpoints, as
// reported by a place-and-route tool:
//
//	d, err := a.FindPip(
//	    chipdb.Location{X: 10, Y: 12},
//	    arch.Endpoint{Location: chipdb.Location{X: 9, Y: 12}, Name: "H02E0101"},
//	    arch.Endpoint{Location: chipdb.Location{X: 10, Y: 12}, Name: "A0"},
//	)
//	if arch.IsNotFound(err) {
//	    // no such pip
//	}
//
// Endpoint locations are absolute tile coordinates.
//
// # Concurrency
//
// An Arch never changes after New and is safe for concurrent use.
package arch
