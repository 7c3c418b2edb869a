package arch

import (
	"errors"
	"strings"
	"testing"

	"github.com/EDAcation/nextpnr-viewer-sub000/chipdb"
	"github.com/EDAcation/nextpnr-viewer-sub000/internal/chipdbtest"
)

func TestFindPipNoPips(t *testing.T) {
	a := newTestArch(t, chipdbtest.Chip{Width: 1, Height: 1, Locations: []chipdbtest.Location{{}}})

	_, err := a.FindPip(
		loc(0, 0),
		Endpoint{Location: loc(0, 0), Name: "A"},
		Endpoint{Location: loc(0, 0), Name: "B"},
	)
	if !IsNotFound(err) {
		t.Fatalf("FindPip() error = %v, want not found", err)
	}
	var pnf *PipNotFoundError
	if !errors.As(err, &pnf) {
		t.Fatalf("FindPip() error = %T, want *PipNotFoundError", err)
	}
	if pnf.From.Name != "A" || pnf.To.Name != "B" {
		t.Errorf("PipNotFoundError = %+v", pnf)
	}
}

func TestFindPip(t *testing.T) {
	a := newTestArch(t, testChip())

	tests := []struct {
		name    string
		owner   chipdb.Location
		from    Endpoint
		to      Endpoint
		want    Decal
		wantErr bool
	}{
		{
			name:  "intra-tile pip, first of duplicates",
			owner: loc(1, 1),
			from:  Endpoint{Location: loc(1, 1), Name: "F0"},
			to:    Endpoint{Location: loc(1, 1), Name: "A0"},
			want:  PipDecal(loc(1, 1), 0),
		},
		{
			name:  "neighbour source in absolute coordinates",
			owner: loc(1, 0),
			from:  Endpoint{Location: loc(0, 0), Name: "H02W0701"},
			to:    Endpoint{Location: loc(1, 0), Name: "A0"},
			want:  PipDecal(loc(1, 0), 1),
		},
		{
			// Relative endpoint coordinates are not accepted.
			name:    "neighbour source in relative coordinates",
			owner:   loc(1, 0),
			from:    Endpoint{Location: loc(-1, 0), Name: "H02W0701"},
			to:      Endpoint{Location: loc(0, 0), Name: "A0"},
			wantErr: true,
		},
		{
			name:    "source name mismatch",
			owner:   loc(1, 1),
			from:    Endpoint{Location: loc(1, 1), Name: "F1"},
			to:      Endpoint{Location: loc(1, 1), Name: "A0"},
			wantErr: true,
		},
		{
			name:    "destination name mismatch",
			owner:   loc(1, 1),
			from:    Endpoint{Location: loc(1, 1), Name: "F0"},
			to:      Endpoint{Location: loc(1, 1), Name: "B0"},
			wantErr: true,
		},
		{
			// The west neighbour of (0,0) is off the grid.
			name:    "source tile outside grid",
			owner:   loc(0, 0),
			from:    Endpoint{Location: loc(-1, 0), Name: "H02W0701"},
			to:      Endpoint{Location: loc(0, 0), Name: "A0"},
			wantErr: true,
		},
		{
			// (2,0) uses the empty template, so its west neighbour pip does not exist.
			name:    "owner with empty template",
			owner:   loc(2, 0),
			from:    Endpoint{Location: loc(1, 0), Name: "H02W0701"},
			to:      Endpoint{Location: loc(2, 0), Name: "A0"},
			wantErr: true,
		},
		{
			name:    "owner is padding",
			owner:   loc(2, 1),
			from:    Endpoint{Location: loc(2, 1), Name: "F0"},
			to:      Endpoint{Location: loc(2, 1), Name: "A0"},
			wantErr: true,
		},
		{
			name:    "owner outside grid",
			owner:   loc(7, 7),
			from:    Endpoint{Location: loc(7, 7), Name: "F0"},
			to:      Endpoint{Location: loc(7, 7), Name: "A0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.FindPip(tt.owner, tt.from, tt.to)
			if tt.wantErr {
				if !IsNotFound(err) {
					t.Errorf("FindPip() = %v, %v, want not found", got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindPip() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FindPip() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindPipResolvesToSameWires(t *testing.T) {
	a := newTestArch(t, testChip())

	from := Endpoint{Location: loc(0, 1), Name: "H02W0701"}
	to := Endpoint{Location: loc(1, 1), Name: "A0"}
	d, err := a.FindPip(loc(1, 1), from, to)
	if err != nil {
		t.Fatal(err)
	}

	src, dst, err := a.PipWires(d)
	if err != nil {
		t.Fatal(err)
	}
	if src.Location != from.Location || dst.Location != to.Location {
		t.Errorf("PipWires() = %v, %v", src, dst)
	}
	name, err := a.DecalName(d)
	if err != nil {
		t.Fatal(err)
	}
	if name != "H02W0701->A0" {
		t.Errorf("DecalName() = %q, want H02W0701->A0", name)
	}
}

func TestResolveRoute(t *testing.T) {
	a := newTestArch(t, testChip())

	route := []RoutedPip{
		{
			Location: loc(0, 0),
			From:     Endpoint{Location: loc(0, 0), Name: "F0"},
			To:       Endpoint{Location: loc(0, 0), Name: "A0"},
		},
		{
			Location: loc(0, 0),
			From:     Endpoint{Location: loc(0, 0), Name: "Q7"},
			To:       Endpoint{Location: loc(0, 0), Name: "A0"},
		},
		{
			Location: loc(1, 0),
			From:     Endpoint{Location: loc(0, 0), Name: "H02W0701"},
			To:       Endpoint{Location: loc(1, 0), Name: "A0"},
		},
	}

	decals, failures := a.ResolveRoute(route)
	want := []Decal{PipDecal(loc(0, 0), 0), PipDecal(loc(1, 0), 1)}
	if len(decals) != len(want) {
		t.Fatalf("ResolveRoute() decals = %v, want %v", decals, want)
	}
	for i := range want {
		if decals[i] != want[i] {
			t.Errorf("decal %d = %v, want %v", i, decals[i], want[i])
		}
	}
	if len(failures) != 1 || !IsNotFound(failures[0]) {
		t.Fatalf("ResolveRoute() failures = %v, want one not-found", failures)
	}
	if !strings.Contains(failures[0].Error(), "Q7") {
		t.Errorf("failure should name the endpoint, got: %v", failures[0])
	}
}
