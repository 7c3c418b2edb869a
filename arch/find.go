package arch

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/EDAcation/nextpnr-viewer-sub000/chipdb"
)

// Endpoint names a wire by tile and wire name.
type Endpoint struct {
	Location chipdb.Location
	Name     string
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s/%s", e.Location, e.Name)
}

// FindPip returns the pip owned by the tile at owner that drives to.Name
// from from.Name.
//
// Endpoint locations are absolute tile coordinates. They are converted to
// deltas from owner before being compared with the pip's relative source and
// destination locations.
//
// Returns a *PipNotFoundError (matching ErrNotFound) when no pip matches,
// including when owner has no template or no pips.
func (a *Arch) FindPip(owner chipdb.Location, from, to Endpoint) (Decal, error) {
	notFound := &PipNotFoundError{Location: owner, From: from, To: to}

	tmpl, err := a.chip.TemplateAt(owner)
	if errors.Is(err, chipdb.ErrMissingTemplate) {
		return Decal{}, notFound
	}
	if err != nil {
		return Decal{}, err
	}
	pips, err := tmpl.Pips()
	if err != nil {
		return Decal{}, errors.Wrapf(err, "tile %s", owner)
	}

	relFrom := from.Location.Sub(owner)
	relTo := to.Location.Sub(owner)

	for i, pip := range pips.All() {
		if pip.RelSrcLoc() != relFrom || pip.RelDstLoc() != relTo {
			continue
		}

		ok, err := a.wireNamed(owner.Add(pip.RelSrcLoc()), int(pip.SrcIdx()), from.Name)
		if err != nil {
			return Decal{}, errors.Wrapf(err, "pip %d source", i)
		}
		if !ok {
			continue
		}

		ok, err = a.wireNamed(owner.Add(pip.RelDstLoc()), int(pip.DstIdx()), to.Name)
		if err != nil {
			return Decal{}, errors.Wrapf(err, "pip %d destination", i)
		}
		if !ok {
			continue
		}

		a.config.Logger.Debug("found pip", "tile", owner.String(), "index", i)
		return PipDecal(owner, int32(i)), nil
	}

	return Decal{}, notFound
}

// wireNamed reports whether wire index of the tile at loc is called name.
// A wire that does not exist is simply not a match.
func (a *Arch) wireNamed(loc chipdb.Location, index int, name string) (bool, error) {
	tmpl, err := a.chip.TemplateAt(loc)
	if errors.Is(err, chipdb.ErrMissingTemplate) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	wires, err := tmpl.Wires()
	if err != nil {
		return false, err
	}
	wire, ok := wires.Get(index)
	if !ok {
		return false, nil
	}

	got, err := wire.Name()
	if err != nil {
		return false, err
	}
	return got == name, nil
}

// RoutedPip is one pip of a routed net, as read from a place-and-route
// report.
type RoutedPip struct {
	Location chipdb.Location
	From     Endpoint
	To       Endpoint
}

// ResolveRoute resolves every pip of a routed net. Pips that cannot be
// resolved are reported in failures and skipped; the rest are returned in
// order.
func (a *Arch) ResolveRoute(route []RoutedPip) (decals []Decal, failures []error) {
	for _, rp := range route {
		d, err := a.FindPip(rp.Location, rp.From, rp.To)
		if err != nil {
			a.config.Logger.Warn("unresolved routed pip",
				"tile", rp.Location.String(),
				"from", rp.From.String(),
				"to", rp.To.String(),
				"error", err,
			)
			failures = append(failures, err)
			continue
		}
		decals = append(decals, d)
	}
	return decals, failures
}
