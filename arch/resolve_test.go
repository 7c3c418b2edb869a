package arch

import (
	"errors"
	"testing"

	"github.com/EDAcation/nextpnr-viewer-sub000/chipdb"
)

func TestResolveDecals(t *testing.T) {
	a := newTestArch(t, testChip())

	bel, err := a.Bel(BelDecal(loc(1, 1), 1))
	if err != nil {
		t.Fatal(err)
	}
	if name, _ := bel.Name(); name != "SLICEB" || bel.Z() != 1 {
		t.Errorf("Bel() = %q z=%d, want SLICEB z=1", name, bel.Z())
	}

	wire, err := a.Wire(WireDecal(loc(0, 1), 2))
	if err != nil {
		t.Fatal(err)
	}
	if name, _ := wire.Name(); name != "H02W0701" {
		t.Errorf("Wire() name = %q, want H02W0701", name)
	}

	pip, err := a.Pip(PipDecal(loc(0, 0), 2))
	if err != nil {
		t.Fatal(err)
	}
	if pip.TimingClass() != 1 {
		t.Errorf("Pip() timing class = %d, want 1", pip.TimingClass())
	}
}

func TestResolveErrors(t *testing.T) {
	a := newTestArch(t, testChip())

	var kindErr *DecalKindError
	if _, err := a.Bel(WireDecal(loc(0, 0), 0)); !errors.As(err, &kindErr) || kindErr.Want != DecalBel {
		t.Errorf("Bel(wire decal) error = %v, want *DecalKindError", err)
	}
	if _, err := a.Wire(PipDecal(loc(0, 0), 0)); !errors.As(err, &kindErr) {
		t.Errorf("Wire(pip decal) error = %v, want *DecalKindError", err)
	}
	if _, err := a.Pip(BelDecal(loc(0, 0), 0)); !errors.As(err, &kindErr) {
		t.Errorf("Pip(bel decal) error = %v, want *DecalKindError", err)
	}

	var idxErr *chipdb.IndexError
	if _, err := a.Bel(BelDecal(loc(0, 0), 9)); !errors.As(err, &idxErr) {
		t.Errorf("Bel(out of range) error = %v, want *chipdb.IndexError", err)
	}
	if _, err := a.Wire(WireDecal(loc(2, 1), 0)); !errors.Is(err, chipdb.ErrMissingTemplate) {
		t.Errorf("Wire(padding tile) error = %v, want ErrMissingTemplate", err)
	}
	if _, err := a.DecalName(Decal{Kind: DecalKind(9)}); err == nil {
		t.Error("DecalName(unknown kind) should fail")
	}
}

func TestDecalName(t *testing.T) {
	a := newTestArch(t, testChip())

	tests := []struct {
		decal Decal
		want  string
	}{
		{BelDecal(loc(0, 0), 0), "SLICEA"},
		{WireDecal(loc(1, 0), 1), "F0"},
		{PipDecal(loc(0, 1), 0), "F0->A0"},
		{PipDecal(loc(1, 0), 1), "H02W0701->A0"},
		{GroupDecal(loc(1, 1)), "R2C2:PLC2"},
		{GroupDecal(loc(2, 1)), "X2Y1"},
	}
	for _, tt := range tests {
		t.Run(tt.decal.String(), func(t *testing.T) {
			got, err := a.DecalName(tt.decal)
			if err != nil {
				t.Fatalf("DecalName() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecalName() = %q, want %q", got, tt.want)
			}
		})
	}

	// The west neighbour of (0,0) is off the grid.
	if _, err := a.DecalName(PipDecal(loc(0, 0), 1)); err == nil {
		t.Error("DecalName() of a pip leaving the grid should fail")
	}
}

func TestWireGraph(t *testing.T) {
	a := newTestArch(t, testChip())

	equal := func(t *testing.T, got, want []Decal) {
		t.Helper()
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	}

	t.Run("uphill", func(t *testing.T) {
		got, err := a.UphillPips(WireDecal(loc(1, 0), 0))
		if err != nil {
			t.Fatal(err)
		}
		equal(t, got, []Decal{PipDecal(loc(1, 0), 0), PipDecal(loc(1, 0), 1)})
	})

	t.Run("downhill across tiles", func(t *testing.T) {
		got, err := a.DownhillPips(WireDecal(loc(0, 0), 2))
		if err != nil {
			t.Fatal(err)
		}
		equal(t, got, []Decal{PipDecal(loc(1, 0), 1)})

		// Every downhill pip has this wire as its source.
		for _, d := range got {
			src, _, err := a.PipWires(d)
			if err != nil {
				t.Fatal(err)
			}
			if src != WireDecal(loc(0, 0), 2) {
				t.Errorf("source of %v = %v", d, src)
			}
		}
	})

	t.Run("bel pins", func(t *testing.T) {
		got, err := a.BelPins(WireDecal(loc(0, 1), 0))
		if err != nil {
			t.Fatal(err)
		}
		equal(t, got, []Decal{BelDecal(loc(0, 1), 0)})
	})

	t.Run("bel wires", func(t *testing.T) {
		got, err := a.BelWires(BelDecal(loc(0, 1), 0))
		if err != nil {
			t.Fatal(err)
		}
		equal(t, got, []Decal{WireDecal(loc(0, 1), 0), WireDecal(loc(0, 1), 1)})
	})

	t.Run("wrong kind", func(t *testing.T) {
		if _, err := a.UphillPips(BelDecal(loc(0, 0), 0)); err == nil {
			t.Error("UphillPips(bel) should fail")
		}
		if _, err := a.DownhillPips(BelDecal(loc(0, 0), 0)); err == nil {
			t.Error("DownhillPips(bel) should fail")
		}
		if _, err := a.BelPins(BelDecal(loc(0, 0), 0)); err == nil {
			t.Error("BelPins(bel) should fail")
		}
		if _, err := a.BelWires(WireDecal(loc(0, 0), 0)); err == nil {
			t.Error("BelWires(wire) should fail")
		}
	})
}

func TestFindPackagePin(t *testing.T) {
	a := newTestArch(t, testChip())

	got, err := a.FindPackagePin("cabga256", "A2")
	if err != nil {
		t.Fatalf("FindPackagePin() error: %v", err)
	}
	if got != BelDecal(loc(1, 1), 1) {
		t.Errorf("FindPackagePin() = %v, want bel X1Y1/1", got)
	}

	tests := []struct{ pkg, pin string }{
		{"CABGA256", "Z9"},
		{"CSFBGA285", "A2"},
	}
	for _, tt := range tests {
		if _, err := a.FindPackagePin(tt.pkg, tt.pin); !IsNotFound(err) {
			t.Errorf("FindPackagePin(%q, %q) error = %v, want not found", tt.pkg, tt.pin, err)
		}
	}
}

func TestDecalStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{BelDecal(loc(3, 4), 2).String(), "bel X3Y4/2"},
		{WireDecal(loc(0, 1), 7).String(), "wire X0Y1/7"},
		{PipDecal(loc(5, 5), 0).String(), "pip X5Y5/0"},
		{GroupDecal(loc(1, 2)).String(), "group X1Y2"},
		{DecalKind(7).String(), "DecalKind(7)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
