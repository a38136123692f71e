// Package atoms persists a structure's raw atom coordinates and residue
// grouping in a compact binary file, and rematerializes residue-level contact
// maps from it at arbitrary distance thresholds. Storing raw atoms once
// avoids keeping O(residues²) contact data per threshold on disk.
//
// The file layout is fixed and little-endian, independent of the host:
//
//	uint32                      atom count
//	atom count × 3 × float32    x, y, z interleaved per atom
//	(residue count + 1) × uint32  group boundary offsets
//
// There is no compression and no checksum; corruption is detected only by
// size and monotonicity checks on load.
package atoms

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/bioinf-mcb/deepfri-cmap/cmap"
	"github.com/bioinf-mcb/deepfri-cmap/structure"
)

// ErrCorruptFile indicates a payload inconsistent with its own header: a
// truncated coordinate array, trailing bytes, or bad group boundaries. It is
// distinct from a missing file, which surfaces as fs.ErrNotExist, so callers
// can decide whether to re-extract from the original structure file.
var ErrCorruptFile = errors.New("atoms: corrupt file")

const (
	headerSize = 4
	atomSize   = 3 * 4
)

// Save writes the coordinate set to path. The write is atomic from the
// caller's perspective: the payload goes to a temporary file in the
// destination directory which is then renamed over path, so a crash never
// leaves a partially written file visible. Output is deterministic: the same
// coordinate set always produces byte-identical files.
func Save(cs structure.CoordinateSet, path string) error {
	if err := cs.Validate(); err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	buf.Grow(headerSize + len(cs.Coords)*atomSize + len(cs.Groups)*4)
	write := func(v uint32) {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		buf.Write(b[:])
	}

	write(uint32(len(cs.Coords)))
	for _, c := range cs.Coords {
		write(math.Float32bits(c.X))
		write(math.Float32bits(c.Y))
		write(math.Float32bits(c.Z))
	}
	for _, g := range cs.Groups {
		write(g)
	}

	return writeAtomic(path, buf.Bytes())
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return fmt.Errorf("atoms: creating temp file in '%s': %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("atoms: writing '%s': %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("atoms: closing '%s': %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("atoms: renaming into '%s': %w", path, err)
	}
	return nil
}

// LoadAtoms is the exact inverse of Save. A missing file is returned as the
// wrapped os error (errors.Is(err, fs.ErrNotExist)); any size or boundary
// inconsistency is returned as ErrCorruptFile.
func LoadAtoms(path string) (structure.CoordinateSet, error) {
	var cs structure.CoordinateSet

	data, err := os.ReadFile(path)
	if err != nil {
		return cs, fmt.Errorf("atoms: reading '%s': %w", path, err)
	}

	if len(data) < headerSize {
		return cs, fmt.Errorf("%w: '%s' has %d bytes, need at least %d "+
			"for the atom count", ErrCorruptFile, path, len(data), headerSize)
	}
	atomCount := int(binary.LittleEndian.Uint32(data[:headerSize]))
	rest := data[headerSize:]

	coordBytes := atomCount * atomSize
	if atomCount < 0 || len(rest) < coordBytes {
		return cs, fmt.Errorf("%w: '%s' declares %d atoms (%d bytes) but "+
			"only %d payload bytes remain",
			ErrCorruptFile, path, atomCount, coordBytes, len(rest))
	}
	groupBytes := rest[coordBytes:]
	if len(groupBytes) == 0 || len(groupBytes)%4 != 0 {
		return cs, fmt.Errorf("%w: '%s' has %d trailing bytes after the "+
			"coordinates; expected a non-empty multiple of 4",
			ErrCorruptFile, path, len(groupBytes))
	}

	cs.Coords = make([]structure.Coords, atomCount)
	for i := range cs.Coords {
		off := i * atomSize
		cs.Coords[i] = structure.Coords{
			X: math.Float32frombits(binary.LittleEndian.Uint32(rest[off:])),
			Y: math.Float32frombits(binary.LittleEndian.Uint32(rest[off+4:])),
			Z: math.Float32frombits(binary.LittleEndian.Uint32(rest[off+8:])),
		}
	}
	cs.Groups = make([]uint32, len(groupBytes)/4)
	for i := range cs.Groups {
		cs.Groups[i] = binary.LittleEndian.Uint32(groupBytes[i*4:])
	}

	if err := cs.Validate(); err != nil {
		return structure.CoordinateSet{},
			fmt.Errorf("%w: '%s': %s", ErrCorruptFile, path, err)
	}
	return cs, nil
}

// LoadContactMap reads the atoms file, reduces it to one representative point
// per residue under the given policy, and thresholds the resulting distance
// map. This is the hot path of a template search: it is called once per hit
// and always recomputes from raw atoms, so no state proportional to the
// number of distinct thresholds ever accumulates.
func LoadContactMap(
	path string,
	thresholdAngstrom float64,
	policy structure.RepresentativePolicy,
) (*cmap.ContactMap, error) {
	cs, err := LoadAtoms(path)
	if err != nil {
		return nil, err
	}
	reps, err := cs.Representatives(policy)
	if err != nil {
		return nil, err
	}
	dm, err := cmap.BuildDistanceMap(reps)
	if err != nil {
		return nil, err
	}
	return dm.ContactMap(thresholdAngstrom), nil
}
