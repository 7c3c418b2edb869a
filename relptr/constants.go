package relptr

// Field sizes of the self-relative encodings.
const (
	// OffsetSize is the size of a self-relative pointer (int32, little-endian)
	OffsetSize = 4

	// CountSize is the size of the element count that follows a slice offset
	CountSize = 4

	// SliceHeaderSize is the size of a slice header: OFFSET(4) + COUNT(4)
	SliceHeaderSize = OffsetSize + CountSize

	// StringTerminator ends every stored string
	StringTerminator = 0x00
)
