package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encode packs a float32 vector into a compact BLOB: a little-endian
// sequence of IEEE 754 words with no length prefix, the dimension being
// recovered from the blob size on decode. Hosts persisting vectors in SQLite
// or similar stores can round-trip through Encode/Decode without loss.
func Encode(v []float32) []byte {
	if len(v) == 0 {
		return nil
	}
	b := make([]byte, len(v)*4)
	for i, x := range v {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(x))
	}
	return b
}

// Decode unpacks a BLOB produced by Encode. Blob lengths that are not a
// multiple of 4 are rejected.
func Decode(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("vector: invalid blob length %d (not multiple of 4)", len(b))
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v, nil
}
