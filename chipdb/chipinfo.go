package chipdb

import (
	"github.com/pkg/errors"

	"github.com/EDAcation/nextpnr-viewer-sub000/relptr"
)

// ChipInfo is the database header: grid dimensions, templates and the
// per-tile template index.
type ChipInfo struct{ record }

func newChipInfo(buf []byte, off int) ChipInfo {
	return ChipInfo{record{buf, off}}
}

// Open decodes the database whose first field is a self-relative pointer
// to the ChipInfo header.
func Open(buf []byte) (ChipInfo, error) {
	chip, err := relptr.PtrAt(buf, 0, ChipInfoSize, newChipInfo)
	if err != nil {
		return ChipInfo{}, errors.Wrap(err, "chip info")
	}
	return chip, nil
}

// OpenAt decodes a ChipInfo header located directly at off.
func OpenAt(buf []byte, off int) (ChipInfo, error) {
	if off < 0 || off+ChipInfoSize > len(buf) {
		return ChipInfo{}, errors.Wrap(&relptr.BoundsError{
			Kind:   "record",
			Field:  off,
			Start:  int64(off),
			Length: ChipInfoSize,
			Size:   len(buf),
		}, "chip info")
	}
	return newChipInfo(buf, off), nil
}

// Width returns the number of tile columns.
func (c ChipInfo) Width() int { return int(c.i32(chipWidth)) }

// Height returns the number of tile rows.
func (c ChipInfo) Height() int { return int(c.i32(chipHeight)) }

// NumTiles returns the number of tiles with a template. It may be smaller
// than Width()*Height().
func (c ChipInfo) NumTiles() int { return int(c.i32(chipNumTiles)) }

// ConstIDCount returns the number of built-in constant IDs.
func (c ChipInfo) ConstIDCount() int32 { return c.i32(chipConstIDCount) }

// TileCount returns Width()*Height(), or 0 for a malformed header.
func (c ChipInfo) TileCount() int {
	w, h := c.Width(), c.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// TileIndex returns the row-major index of the tile at loc, and false if loc
// is outside the grid.
func (c ChipInfo) TileIndex(loc Location) (int, bool) {
	x, y := int(loc.X), int(loc.Y)
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return 0, false
	}
	return y*c.Width() + x, true
}

// TileLocation returns the coordinate of tile index.
func (c ChipInfo) TileLocation(index int) Location {
	w := c.Width()
	if w <= 0 {
		return Location{}
	}
	return Location{X: int16(index % w), Y: int16(index / w)}
}

// Locations returns the shared tile templates.
func (c ChipInfo) Locations() (relptr.Slice[LocationType], error) {
	s, err := sliceOf(c.record, chipLocations, LocationTypeSize, newLocationType)
	return s, errors.Wrap(err, "locations")
}

// LocationTypes returns the per-tile template index.
func (c ChipInfo) LocationTypes() (relptr.Slice[int32], error) {
	s, err := relptr.Int32SliceAt(c.buf, c.off+chipLocationType)
	return s, errors.Wrap(err, "location_type")
}

// Template returns the template governing tile index.
//
// Returns a *MissingTemplateError for tiles at or beyond NumTiles, or whose
// index entry does not name a template, and a wrapped *relptr.BoundsError if
// the tables themselves are corrupt.
func (c ChipInfo) Template(index int) (LocationType, error) {
	if index < 0 || index >= c.NumTiles() || index >= c.TileCount() {
		return LocationType{}, &MissingTemplateError{Tile: index, Reason: "beyond num_tiles"}
	}

	types, err := c.LocationTypes()
	if err != nil {
		return LocationType{}, err
	}
	typ, ok := types.Get(index)
	if !ok {
		return LocationType{}, &MissingTemplateError{Tile: index, Reason: "no location_type entry"}
	}

	locs, err := c.Locations()
	if err != nil {
		return LocationType{}, err
	}
	tmpl, ok := locs.Get(int(typ))
	if !ok {
		return LocationType{}, &MissingTemplateError{
			Tile:   index,
			Reason: "location_type entry out of range",
		}
	}
	return tmpl, nil
}

// TemplateAt returns the template governing the tile at loc.
func (c ChipInfo) TemplateAt(loc Location) (LocationType, error) {
	index, ok := c.TileIndex(loc)
	if !ok {
		return LocationType{}, &MissingTemplateError{Tile: -1, Reason: "location " + loc.String() + " outside grid"}
	}
	return c.Template(index)
}

// GlobalInfos returns the per-tile global clock routing table.
func (c ChipInfo) GlobalInfos() (relptr.Slice[GlobalInfo], error) {
	s, err := sliceOf(c.record, chipLocationGlobal, GlobalInfoSize, newGlobalInfo)
	return s, errors.Wrap(err, "location_glbinfo")
}

// TileTypeNames returns the tile type name table.
func (c ChipInfo) TileTypeNames() (relptr.Slice[relptr.StringRef], error) {
	s, err := relptr.StringSliceAt(c.buf, c.off+chipTileTypeNames)
	return s, errors.Wrap(err, "tiletype_names")
}

// TileTypeName returns tile type name i.
func (c ChipInfo) TileTypeName(i int) (string, error) {
	names, err := c.TileTypeNames()
	if err != nil {
		return "", err
	}
	ref, ok := names.Get(i)
	if !ok {
		return "", &IndexError{Table: "tiletype_names", Index: i, Len: names.Len()}
	}
	name, err := ref.Decode()
	return name, errors.Wrapf(err, "tile type %d", i)
}

// Packages returns the package pin-out tables.
func (c ChipInfo) Packages() (relptr.Slice[PackageInfo], error) {
	s, err := sliceOf(c.record, chipPackageInfo, PackageInfoSize, newPackageInfo)
	return s, errors.Wrap(err, "package_info")
}

// PIOs returns the I/O pad table.
func (c ChipInfo) PIOs() (relptr.Slice[PIOInfo], error) {
	s, err := sliceOf(c.record, chipPIOInfo, PIOInfoSize, newPIOInfo)
	return s, errors.Wrap(err, "pio_info")
}

// TileInfos returns the per-tile name table.
func (c ChipInfo) TileInfos() (relptr.Slice[TileInfo], error) {
	s, err := sliceOf(c.record, chipTileInfo, TileInfoSize, newTileInfo)
	return s, errors.Wrap(err, "tile_info")
}

// SpeedGrades returns the timing tables, one per speed grade.
func (c ChipInfo) SpeedGrades() (relptr.Slice[SpeedGrade], error) {
	s, err := sliceOf(c.record, chipSpeedGrades, SpeedGradeSize, newSpeedGrade)
	return s, errors.Wrap(err, "speed_grades")
}

// TileNames returns the names of the physical tiles stacked at loc, e.g.
// "R12C10:PLC2". A location outside the grid or the table has no names.
func (c ChipInfo) TileNames(loc Location) ([]string, error) {
	index, ok := c.TileIndex(loc)
	if !ok {
		return nil, nil
	}
	infos, err := c.TileInfos()
	if err != nil {
		return nil, err
	}
	info, ok := infos.Get(index)
	if !ok {
		return nil, nil
	}
	tiles, err := info.Names()
	if err != nil {
		return nil, errors.Wrapf(err, "tile %s", loc)
	}

	names := make([]string, 0, tiles.Len())
	for i, tile := range tiles.All() {
		name, err := tile.Name()
		if err != nil {
			return nil, errors.Wrapf(err, "tile %s name %d", loc, i)
		}
		names = append(names, name)
	}
	return names, nil
}
