package arch

import (
	"fmt"

	"github.com/EDAcation/nextpnr-viewer-sub000/chipdb"
)

// DecalKind selects which template table a Decal indexes.
type DecalKind uint8

const (
	DecalBel DecalKind = iota
	DecalWire
	DecalPip
	DecalGroup
)

func (k DecalKind) String() string {
	switch k {
	case DecalBel:
		return "bel"
	case DecalWire:
		return "wire"
	case DecalPip:
		return "pip"
	case DecalGroup:
		return "group"
	default:
		return fmt.Sprintf("DecalKind(%d)", uint8(k))
	}
}

// Decal is an opaque handle to one primitive instance. Index is always 0 for
// groups.
type Decal struct {
	Kind     DecalKind
	Location chipdb.Location
	Index    int32
}

// BelDecal addresses bel index of the tile at loc.
func BelDecal(loc chipdb.Location, index int32) Decal {
	return Decal{Kind: DecalBel, Location: loc, Index: index}
}

// WireDecal addresses wire index of the tile at loc.
func WireDecal(loc chipdb.Location, index int32) Decal {
	return Decal{Kind: DecalWire, Location: loc, Index: index}
}

// PipDecal addresses pip index of the tile at loc.
func PipDecal(loc chipdb.Location, index int32) Decal {
	return Decal{Kind: DecalPip, Location: loc, Index: index}
}

// GroupDecal addresses the group of the tile at loc.
func GroupDecal(loc chipdb.Location) Decal {
	return Decal{Kind: DecalGroup, Location: loc}
}

func (d Decal) String() string {
	if d.Kind == DecalGroup {
		return fmt.Sprintf("%s %s", d.Kind, d.Location)
	}
	return fmt.Sprintf("%s %s/%d", d.Kind, d.Location, d.Index)
}
