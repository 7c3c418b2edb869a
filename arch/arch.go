package arch

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/EDAcation/nextpnr-viewer-sub000/chipdb"
)

// Arch enumerates and resolves the primitives of one chip database.
type Arch struct {
	chip   chipdb.ChipInfo
	config Config
}

// New creates an Arch over chip with the given options.
//
// Example:
//
//	chip, _ := chipdb.Load("chipdb-85k.bin")
//	a := arch.New(chip,
//	    arch.WithLogger(slog.Default()),
//	    arch.WithStrict(true),
//	)
func New(chip chipdb.ChipInfo, opts ...Option) *Arch {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Arch{
		chip:   chip,
		config: cfg,
	}
}

// Chip returns the underlying chip database.
func (a *Arch) Chip() chipdb.ChipInfo {
	return a.chip
}

// Bels returns a decal for every bel of the chip, in tile order.
func (a *Arch) Bels() ([]Decal, error) {
	return a.collect(DecalBel)
}

// Wires returns a decal for every wire of the chip, in tile order.
func (a *Arch) Wires() ([]Decal, error) {
	return a.collect(DecalWire)
}

// Pips returns a decal for every pip of the chip, in tile order.
func (a *Arch) Pips() ([]Decal, error) {
	return a.collect(DecalPip)
}

// Groups returns one group decal per interior tile, in tile order.
func (a *Arch) Groups() ([]Decal, error) {
	return a.collect(DecalGroup)
}

func (a *Arch) collect(kind DecalKind) ([]Decal, error) {
	var out []Decal
	for d, err := range a.Decals(kind) {
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	a.config.Logger.Debug("enumerated decals", "kind", kind, "count", len(out))
	return out, nil
}

// Decals returns an iterator over the decals of one kind. The sequence is
// recomputed on each iteration. In strict mode a decoding failure is yielded
// once as a non-nil error and ends the sequence.
func (a *Arch) Decals(kind DecalKind) iter.Seq2[Decal, error] {
	if kind == DecalGroup {
		return a.groups()
	}
	return func(yield func(Decal, error) bool) {
		if err := a.walk(kind, func(d Decal) bool { return yield(d, nil) }); err != nil {
			yield(Decal{}, err)
		}
	}
}

// walk runs the enumeration state machine over (tile, index).
//
// The cursor starts at (0, 0). While the tile is inside the grid and index
// has run past the tile's table, the cursor moves to the start of the next
// tile; otherwise it emits (tile, index) and advances index. tile never
// decreases and grows on every skip, so the walk ends after at most
// Width*Height tile visits even when every table is empty.
func (a *Arch) walk(kind DecalKind, emit func(Decal) bool) error {
	total := a.chip.TileCount()

	tile, index := 0, 0
	n, err := a.tableLen(kind, tile, total)
	if err != nil {
		return err
	}

	for tile < total {
		if index >= n {
			tile++
			index = 0
			if n, err = a.tableLen(kind, tile, total); err != nil {
				return err
			}
			continue
		}

		d := Decal{Kind: kind, Location: a.chip.TileLocation(tile), Index: int32(index)}
		if !emit(d) {
			return nil
		}
		index++
	}
	return nil
}

// tableLen returns the length of the kind's table in the template of tile.
// Tiles without a template have empty tables. Corrupt tables are empty too,
// unless the Arch is strict.
func (a *Arch) tableLen(kind DecalKind, tile, total int) (int, error) {
	if tile >= total {
		return 0, nil
	}

	n, err := a.templateTableLen(kind, tile)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, chipdb.ErrMissingTemplate) {
		return 0, nil
	}

	loc := a.chip.TileLocation(tile)
	if a.config.Strict {
		return 0, errors.Wrapf(err, "%s table of tile %s", kind, loc)
	}
	a.config.Logger.Warn("skipping corrupt tile",
		"kind", kind,
		"tile", loc.String(),
		"error", err,
	)
	return 0, nil
}

func (a *Arch) templateTableLen(kind DecalKind, tile int) (int, error) {
	tmpl, err := a.chip.Template(tile)
	if err != nil {
		return 0, err
	}

	switch kind {
	case DecalBel:
		s, err := tmpl.Bels()
		return s.Len(), err
	case DecalWire:
		s, err := tmpl.Wires()
		return s.Len(), err
	case DecalPip:
		s, err := tmpl.Pips()
		return s.Len(), err
	default:
		return 0, errors.Errorf("no table for %s decals", kind)
	}
}

// groups yields one decal per tile that is at least GroupBorder tiles away
// from every edge of the grid.
func (a *Arch) groups() iter.Seq2[Decal, error] {
	return func(yield func(Decal, error) bool) {
		border := a.config.GroupBorder
		w, h := a.chip.Width(), a.chip.Height()
		for y := border; y < h-border; y++ {
			for x := border; x < w-border; x++ {
				loc := chipdb.Location{X: int16(x), Y: int16(y)}
				if !yield(GroupDecal(loc), nil) {
					return
				}
			}
		}
	}
}
