package arch

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/EDAcation/nextpnr-viewer-sub000/chipdb"
)

func checkKind(d Decal, want DecalKind) error {
	if d.Kind != want {
		return &DecalKindError{Want: want, Got: d}
	}
	return nil
}

// Bel returns the bel addressed by a bel decal.
func (a *Arch) Bel(d Decal) (chipdb.Bel, error) {
	if err := checkKind(d, DecalBel); err != nil {
		return chipdb.Bel{}, err
	}
	tmpl, err := a.chip.TemplateAt(d.Location)
	if err != nil {
		return chipdb.Bel{}, err
	}
	bel, err := tmpl.Bel(int(d.Index))
	return bel, errors.Wrapf(err, "tile %s", d.Location)
}

// Wire returns the wire addressed by a wire decal.
func (a *Arch) Wire(d Decal) (chipdb.Wire, error) {
	if err := checkKind(d, DecalWire); err != nil {
		return chipdb.Wire{}, err
	}
	tmpl, err := a.chip.TemplateAt(d.Location)
	if err != nil {
		return chipdb.Wire{}, err
	}
	wire, err := tmpl.Wire(int(d.Index))
	return wire, errors.Wrapf(err, "tile %s", d.Location)
}

// Pip returns the pip addressed by a pip decal.
func (a *Arch) Pip(d Decal) (chipdb.Pip, error) {
	if err := checkKind(d, DecalPip); err != nil {
		return chipdb.Pip{}, err
	}
	tmpl, err := a.chip.TemplateAt(d.Location)
	if err != nil {
		return chipdb.Pip{}, err
	}
	pip, err := tmpl.Pip(int(d.Index))
	return pip, errors.Wrapf(err, "tile %s", d.Location)
}

// PipWires returns wire decals for the source and destination of a pip.
func (a *Arch) PipWires(d Decal) (src, dst Decal, err error) {
	pip, err := a.Pip(d)
	if err != nil {
		return Decal{}, Decal{}, err
	}
	src = WireDecal(d.Location.Add(pip.RelSrcLoc()), int32(pip.SrcIdx()))
	dst = WireDecal(d.Location.Add(pip.RelDstLoc()), int32(pip.DstIdx()))
	return src, dst, nil
}

// DecalName returns a display name: the bel or wire name, "src->dst" for a
// pip, and the first physical tile name for a group (or its coordinate if
// the tile is unnamed).
func (a *Arch) DecalName(d Decal) (string, error) {
	switch d.Kind {
	case DecalBel:
		bel, err := a.Bel(d)
		if err != nil {
			return "", err
		}
		return bel.Name()
	case DecalWire:
		wire, err := a.Wire(d)
		if err != nil {
			return "", err
		}
		return wire.Name()
	case DecalPip:
		src, dst, err := a.PipWires(d)
		if err != nil {
			return "", err
		}
		srcName, err := a.DecalName(src)
		if err != nil {
			return "", errors.Wrap(err, "pip source")
		}
		dstName, err := a.DecalName(dst)
		if err != nil {
			return "", errors.Wrap(err, "pip destination")
		}
		return srcName + "->" + dstName, nil
	case DecalGroup:
		names, err := a.chip.TileNames(d.Location)
		if err != nil {
			return "", err
		}
		if len(names) == 0 {
			return d.Location.String(), nil
		}
		return names[0], nil
	default:
		return "", errors.Errorf("unknown decal kind %d", d.Kind)
	}
}

// UphillPips returns pip decals for the pips driving a wire.
func (a *Arch) UphillPips(d Decal) ([]Decal, error) {
	wire, err := a.Wire(d)
	if err != nil {
		return nil, err
	}
	locs, err := wire.PipsUphill()
	if err != nil {
		return nil, errors.Wrapf(err, "%s", d)
	}
	return locatorDecals(d.Location, locs), nil
}

// DownhillPips returns pip decals for the pips driven by a wire.
func (a *Arch) DownhillPips(d Decal) ([]Decal, error) {
	wire, err := a.Wire(d)
	if err != nil {
		return nil, err
	}
	locs, err := wire.PipsDownhill()
	if err != nil {
		return nil, errors.Wrapf(err, "%s", d)
	}
	return locatorDecals(d.Location, locs), nil
}

func locatorDecals(origin chipdb.Location, locs []chipdb.PipLocator) []Decal {
	out := make([]Decal, len(locs))
	for i, l := range locs {
		out[i] = PipDecal(origin.Add(l.RelLoc), l.Index)
	}
	return out
}

// BelPins returns bel decals for the bels attached to a wire.
func (a *Arch) BelPins(d Decal) ([]Decal, error) {
	wire, err := a.Wire(d)
	if err != nil {
		return nil, err
	}
	pins, err := wire.BelPins()
	if err != nil {
		return nil, errors.Wrapf(err, "%s", d)
	}
	out := make([]Decal, 0, pins.Len())
	for _, p := range pins.All() {
		out = append(out, BelDecal(d.Location.Add(p.RelBelLoc()), p.BelIndex()))
	}
	return out, nil
}

// BelWires returns wire decals for the wires attached to a bel's pins.
func (a *Arch) BelWires(d Decal) ([]Decal, error) {
	bel, err := a.Bel(d)
	if err != nil {
		return nil, err
	}
	wires, err := bel.Wires()
	if err != nil {
		return nil, errors.Wrapf(err, "%s", d)
	}
	out := make([]Decal, 0, wires.Len())
	for _, w := range wires.All() {
		out = append(out, WireDecal(d.Location.Add(w.RelWireLoc()), w.WireIndex()))
	}
	return out, nil
}

// FindPackagePin returns the bel decal of the I/O bel bonded to pin of
// package pkg. Package names compare case-insensitively.
func (a *Arch) FindPackagePin(pkg, pin string) (Decal, error) {
	pkgs, err := a.chip.Packages()
	if err != nil {
		return Decal{}, err
	}

	for i, p := range pkgs.All() {
		name, err := p.Name()
		if err != nil {
			return Decal{}, errors.Wrapf(err, "package %d", i)
		}
		if !strings.EqualFold(name, pkg) {
			continue
		}

		pins, err := p.Pins()
		if err != nil {
			return Decal{}, errors.Wrapf(err, "package %s", name)
		}
		for j, pp := range pins.All() {
			pinName, err := pp.Name()
			if err != nil {
				return Decal{}, errors.Wrapf(err, "package %s pin %d", name, j)
			}
			if pinName == pin {
				return BelDecal(pp.AbsLoc(), pp.BelIndex()), nil
			}
		}
		return Decal{}, &NotFoundError{What: "pin " + pin + " of package " + name}
	}

	return Decal{}, &NotFoundError{What: "package " + pkg}
}
