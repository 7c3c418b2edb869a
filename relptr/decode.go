package relptr

import (
	"encoding/binary"
	"iter"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Factory builds one element view from the window starting at off.
// The caller guarantees the element's fixed size fits inside buf.
type Factory[T any] func(buf []byte, off int) T

// Target resolves the self-relative pointer stored at field and returns the
// absolute offset it points to. The result is not checked against the
// buffer; callers check the range they are about to read.
func Target(buf []byte, field int) (int64, error) {
	if err := checkRange(buf, "pointer", field, int64(field), OffsetSize); err != nil {
		return 0, err
	}
	rel := int32(binary.LittleEndian.Uint32(buf[field:]))
	return int64(field) + int64(rel), nil
}

// StringAt decodes the NUL-terminated string referenced by the pointer at
// field. Each stored byte is one character (ISO-8859-1); bytes are never
// combined into multi-byte sequences.
//
// Returns a *BoundsError if the pointer or the string leaves the buffer,
// including when no terminator is found before the end of the buffer.
func StringAt(buf []byte, field int) (string, error) {
	start, err := Target(buf, field)
	if err != nil {
		return "", err
	}
	if err := checkRange(buf, "string", field, start, 1); err != nil {
		return "", err
	}

	end := int(start)
	for end < len(buf) && buf[end] != StringTerminator {
		end++
	}
	if end == len(buf) {
		return "", &BoundsError{
			Kind:   "string",
			Field:  field,
			Start:  start,
			Length: int64(end) - start,
			Size:   len(buf),
			Reason: "missing terminator",
		}
	}

	return decodeLatin1(buf[start:end])
}

// decodeLatin1 maps every byte to the character with the same code point.
func decodeLatin1(raw []byte) (string, error) {
	ascii := true
	for _, b := range raw {
		if b >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return string(raw), nil
	}

	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// PtrAt decodes the single record of elemSize bytes referenced by the
// pointer at field.
func PtrAt[T any](buf []byte, field, elemSize int, elem Factory[T]) (T, error) {
	var zero T

	start, err := Target(buf, field)
	if err != nil {
		return zero, err
	}
	if err := checkRange(buf, "record", field, start, int64(elemSize)); err != nil {
		return zero, err
	}

	return elem(buf, int(start)), nil
}

// SliceAt decodes the slice header at field: a self-relative offset followed
// by an element count. The returned Slice covers count elements of elemSize
// bytes each.
//
// A zero count yields an empty Slice without looking past the 8-byte header.
// Returns a *BoundsError if the header or any element would leave the buffer.
func SliceAt[T any](buf []byte, field, elemSize int, elem Factory[T]) (Slice[T], error) {
	if err := checkRange(buf, "slice", field, int64(field), SliceHeaderSize); err != nil {
		return Slice[T]{}, err
	}

	count := int32(binary.LittleEndian.Uint32(buf[field+OffsetSize:]))
	if count == 0 {
		return Slice[T]{buf: buf, size: elemSize, elem: elem}, nil
	}
	if count < 0 {
		return Slice[T]{}, &BoundsError{
			Kind:   "slice",
			Field:  field,
			Start:  int64(field),
			Length: int64(count) * int64(elemSize),
			Size:   len(buf),
			Reason: "negative element count",
		}
	}

	start, err := Target(buf, field)
	if err != nil {
		return Slice[T]{}, err
	}
	if err := checkRange(buf, "slice", field, start, int64(count)*int64(elemSize)); err != nil {
		return Slice[T]{}, err
	}

	return Slice[T]{
		buf:   buf,
		base:  int(start),
		count: int(count),
		size:  elemSize,
		elem:  elem,
	}, nil
}

// Int32SliceAt decodes a slice of int32 values.
func Int32SliceAt(buf []byte, field int) (Slice[int32], error) {
	return SliceAt(buf, field, 4, Int32)
}

// StringRef is one element of a slice of string pointers.
type StringRef struct {
	buf   []byte
	field int
}

// Decode decodes the referenced string. See StringAt.
func (r StringRef) Decode() (string, error) {
	return StringAt(r.buf, r.field)
}

// StringSliceAt decodes a slice whose elements are themselves string pointers.
func StringSliceAt(buf []byte, field int) (Slice[StringRef], error) {
	return SliceAt(buf, field, OffsetSize, func(buf []byte, off int) StringRef {
		return StringRef{buf: buf, field: off}
	})
}

// Slice is a lazy, restartable view of count fixed-size elements.
// Elements are rebuilt from the buffer on every access.
type Slice[T any] struct {
	buf   []byte
	base  int
	count int
	size  int
	elem  Factory[T]
}

// Len returns the number of elements.
func (s Slice[T]) Len() int {
	return s.count
}

// Offset returns the absolute buffer offset of element i.
func (s Slice[T]) Offset(i int) int {
	return s.base + i*s.size
}

// At returns element i. It panics if i is out of range, like indexing a
// Go slice.
func (s Slice[T]) At(i int) T {
	if i < 0 || i >= s.count {
		panic("relptr: index out of range")
	}
	return s.elem(s.buf, s.Offset(i))
}

// Get returns element i and whether i is in range.
func (s Slice[T]) Get(i int) (T, bool) {
	if i < 0 || i >= s.count {
		var zero T
		return zero, false
	}
	return s.elem(s.buf, s.Offset(i)), true
}

// All returns an iterator over index/element pairs.
func (s Slice[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(i, s.elem(s.buf, s.Offset(i))) {
				return
			}
		}
	}
}

// Collect builds every element into a new Go slice.
func (s Slice[T]) Collect() []T {
	out := make([]T, 0, s.count)
	for _, v := range s.All() {
		out = append(out, v)
	}
	return out
}

// Scalar readers for windows already known to be in bounds.

// Int32 reads a little-endian int32 at off.
func Int32(buf []byte, off int) int32 {
	return int32(binary.LittleEndian.Uint32(buf[off:]))
}

// Int16 reads a little-endian int16 at off.
func Int16(buf []byte, off int) int16 {
	return int16(binary.LittleEndian.Uint16(buf[off:]))
}

// Int8 reads an int8 at off.
func Int8(buf []byte, off int) int8 {
	return int8(buf[off])
}
