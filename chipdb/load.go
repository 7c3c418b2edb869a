package chipdb

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Load reads a chip database file whole and opens it.
//
// Example:
//
//	chip, err := chipdb.Load("chipdb-25k.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%dx%d tiles\n", chip.Width(), chip.Height())
func Load(path string) (ChipInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ChipInfo{}, errors.Wrap(err, "failed to open file")
	}
	defer func() { _ = f.Close() }()

	return LoadReader(f)
}

// LoadReader reads a chip database from any io.Reader and opens it.
// The returned views borrow the bytes read; they are never modified.
func LoadReader(r io.Reader) (ChipInfo, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return ChipInfo{}, errors.Wrap(err, "failed to read chip database")
	}
	if len(buf) == 0 {
		return ChipInfo{}, errors.New("empty chip database")
	}
	return Open(buf)
}
