// SPDX-License-Identifier: MIT

package tableio

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/powerpca/matrix"
)

// Fingerprint hashes the shape and the exact float64 bits of m with xxhash.
// Equal matrices (bit-for-bit) give equal fingerprints, so a basis can be
// checked after a save/load round-trip. A nil matrix hashes to 0.
func Fingerprint(m matrix.Matrix) uint64 {
	if m == nil {
		return 0
	}
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(m.Rows()))
	_, _ = d.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(m.Cols()))
	_, _ = d.Write(buf[:])
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}
