package atoms

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/bioinf-mcb/deepfri-cmap/cmap"
)

// Bit-packed contact files trade the raw-atoms format's arbitrary-threshold
// flexibility for storage size at one fixed threshold: the strict upper
// triangle of a precomputed contact map is packed into a bit array, bits in
// row-major triangle order. The layout, little-endian like the atoms format:
//
//	uint32                       residue count n
//	ceil(n(n-1)/2 / 8) bytes     triangle bits, LSB first within a byte
//
// The diagonal is not stored; it is always set on load.

// SaveBitpacked writes the contact map's upper triangle as a bit array.
// Like Save, the write is atomic and deterministic.
func SaveBitpacked(m *cmap.ContactMap, path string) error {
	n := m.Len()
	bits := n * (n - 1) / 2
	data := make([]byte, headerSize+bitpackBytes(bits))
	binary.LittleEndian.PutUint32(data, uint32(n))

	payload := data[headerSize:]
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.At(i, j) {
				k := triangleRank(n, i, j)
				payload[k/8] |= 1 << (k % 8)
			}
		}
	}
	return writeAtomic(path, data)
}

// LoadBitpacked reads a bit-packed contact file back into a dense contact
// map. A missing file surfaces as the wrapped os error; a payload whose size
// disagrees with the residue count is ErrCorruptFile.
func LoadBitpacked(path string) (*cmap.ContactMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("atoms: reading '%s': %w", path, err)
	}
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: '%s' has %d bytes, need at least %d "+
			"for the residue count", ErrCorruptFile, path, len(data), headerSize)
	}
	n := int(binary.LittleEndian.Uint32(data))
	bits := n * (n - 1) / 2
	payload := data[headerSize:]
	if n < 0 || len(payload) != bitpackBytes(bits) {
		return nil, fmt.Errorf("%w: '%s' declares %d residues (%d payload "+
			"bytes) but has %d", ErrCorruptFile, path, n,
			bitpackBytes(bits), len(payload))
	}

	m := cmap.NewContactMap(n)
	for byteIdx, b := range payload {
		if b == 0 {
			continue
		}
		for bit := 0; bit < 8; bit++ {
			k := byteIdx*8 + bit
			if k >= bits {
				break
			}
			if b&(1<<bit) != 0 {
				i, j := triangleUnrank(n, k)
				m.Set(i, j)
			}
		}
	}
	return m, nil
}

func bitpackBytes(bits int) int {
	return (bits + 7) / 8
}

// triangleRank maps a strict upper-triangle cell (i < j) of an n×n matrix to
// its bit position, counting cells row by row.
func triangleRank(n, i, j int) int {
	bits := n * (n - 1) / 2
	return bits - (n-i)*(n-i-1)/2 + j - i - 1
}

// triangleUnrank is the closed-form inverse of triangleRank. With
// m = bits - k, the row is determined by the unique r with
// (r-1)(r-2)/2 < m ≤ r(r-1)/2, giving i = n - r and the column from the
// remainder.
func triangleUnrank(n, k int) (i, j int) {
	bits := n * (n - 1) / 2
	m := bits - k
	r := int(math.Ceil((1 + math.Sqrt(1+8*float64(m))) / 2))
	// Guard against floating point drift for very wide triangles.
	for r*(r-1)/2 < m {
		r++
	}
	for (r-1)*(r-2)/2 >= m {
		r--
	}
	i = n - r
	j = i + 1 + r*(r-1)/2 - m
	return i, j
}
