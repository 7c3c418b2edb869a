package chipdb

import (
	"errors"
	"strings"
	"testing"
)

func TestMissingTemplateError(t *testing.T) {
	err := &MissingTemplateError{Tile: 41, Reason: "beyond num_tiles"}

	msg := err.Error()
	if !strings.Contains(msg, "tile 41") {
		t.Errorf("error message should contain tile index, got: %s", msg)
	}
	if !strings.Contains(msg, "beyond num_tiles") {
		t.Errorf("error message should contain reason, got: %s", msg)
	}
	if !errors.Is(err, ErrMissingTemplate) {
		t.Error("MissingTemplateError should match ErrMissingTemplate")
	}
}

func TestIndexError(t *testing.T) {
	err := &IndexError{Table: "pip_data", Index: 12, Len: 3}

	msg := err.Error()
	for _, want := range []string{"pip_data", "12", "3 entries"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message should contain %q, got: %s", want, msg)
		}
	}
}

func TestErrorTypes(t *testing.T) {
	var _ error = &MissingTemplateError{}
	var _ error = &IndexError{}
}
