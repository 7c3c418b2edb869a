package chipdb

import (
	"github.com/EDAcation/nextpnr-viewer-sub000/relptr"
)

// record is a borrowed window into the database buffer. The record's fixed
// size is known from its view type.
type record struct {
	buf []byte
	off int
}

// Offset returns the absolute offset of the record in the buffer.
func (r record) Offset() int {
	return r.off
}

func (r record) i32(at int) int32 {
	return relptr.Int32(r.buf, r.off+at)
}

func (r record) i16(at int) int16 {
	return relptr.Int16(r.buf, r.off+at)
}

func (r record) i8(at int) int8 {
	return relptr.Int8(r.buf, r.off+at)
}

func (r record) loc(at int) Location {
	return locationAt(r.buf, r.off+at)
}

func (r record) str(at int) (string, error) {
	return relptr.StringAt(r.buf, r.off+at)
}

// sliceOf decodes the slice header at field offset at.
func sliceOf[T any](r record, at, size int, elem relptr.Factory[T]) (relptr.Slice[T], error) {
	return relptr.SliceAt(r.buf, r.off+at, size, elem)
}
