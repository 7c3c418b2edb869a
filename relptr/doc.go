// Package relptr decodes self-relative pointers stored in a flat, immutable
// byte buffer.
//
// A self-relative pointer is a signed 32-bit little-endian integer whose
// value is a byte displacement measured from the address of the field that
// stores it, not from the start of the buffer. This lets a serialized
// database be mapped anywhere in memory and read in place without fixups.
//
// # Layouts
//
// Three shapes are understood:
//
//	pointer: [OFFSET(4)]                 -> one record at field+OFFSET
//	string:  [OFFSET(4)]                 -> NUL-terminated bytes at field+OFFSET
//	slice:   [OFFSET(4)][COUNT(4)]       -> COUNT fixed-size records at field+OFFSET
//
// # Usage
//
// Every decoder takes the buffer and the absolute offset of the field:
//
//	name, err := relptr.StringAt(buf, belOff)
//	bels, err := relptr.SliceAt(buf, locOff, 20, newBel)
//	for i, bel := range bels.All() {
//	    // ...
//	}
//
// Decoders never copy or mutate the buffer. A decoded Slice is a lazy,
// restartable view: each element is built on demand by its factory.
//
// # Error Handling
//
// Reads that would fall outside the buffer return a *BoundsError, which
// matches ErrBounds under errors.Is:
//
//	if relptr.IsBoundsError(err) {
//	    // truncated or corrupt input
//	}
package relptr
