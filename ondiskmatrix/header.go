package ondiskmatrix

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/vlarion/disklp/typeinfo"
)

// headerSize is the fixed on-disk header width in bytes: rows(4) +
// cols(4) + element_size(4) + tag(3) = 15, no padding.
const headerSize = 15

// byteOrder is the canonical on-disk byte order for every field this
// package writes or reads; see the package doc comment for why this
// deviates from the host-native reference layout.
var byteOrder = binary.LittleEndian

// header is the decoded form of the 15-byte on-disk header.
type header struct {
	rows, cols, elementSize int32
	tag                     [3]byte
}

// descriptor returns the typeinfo.Descriptor implied by this header,
// independent of what element type the caller requested.
func (h header) descriptor() typeinfo.Descriptor {
	return typeinfo.Descriptor{Size: h.elementSize, Tag: h.tag}
}

// encode writes the header in its canonical 15-byte wire form.
func (h header) encode() []byte {
	buf := make([]byte, headerSize)
	byteOrder.PutUint32(buf[0:4], uint32(h.rows))
	byteOrder.PutUint32(buf[4:8], uint32(h.cols))
	byteOrder.PutUint32(buf[8:12], uint32(h.elementSize))
	copy(buf[12:15], h.tag[:])
	return buf
}

// decodeHeader parses a 15-byte buffer into a header.
func decodeHeader(buf []byte) (header, error) {
	if len(buf) != headerSize {
		return header{}, fmt.Errorf("decodeHeader: got %d bytes, want %d: %w", len(buf), headerSize, io.ErrUnexpectedEOF)
	}
	var h header
	h.rows = int32(byteOrder.Uint32(buf[0:4]))
	h.cols = int32(byteOrder.Uint32(buf[4:8]))
	h.elementSize = int32(byteOrder.Uint32(buf[8:12]))
	copy(h.tag[:], buf[12:15])
	return h, nil
}

// elementOffset returns the byte offset of element (row, col) in the payload,
// given a header whose dimensions and element size have already been
// validated by the caller.
func (h header) elementOffset(row, col int) int64 {
	return int64(headerSize) + (int64(row)*int64(h.cols)+int64(col))*int64(h.elementSize)
}
