package cmap

import (
	"fmt"

	matrix "github.com/skelterjohn/go.matrix"

	"github.com/bioinf-mcb/deepfri-cmap/structure"
)

// A DistanceMap is a dense, symmetric matrix of squared Euclidean distances
// between residue representative points, with a zero diagonal.
type DistanceMap struct {
	n int
	d *matrix.DenseMatrix
}

// BuildDistanceMap computes the squared distance between every unordered pair
// of points. An empty coordinate list yields an empty (0×0) map. Non-finite
// coordinates are rejected before any distance is computed.
func BuildDistanceMap(coords []structure.Coords) (*DistanceMap, error) {
	for i, c := range coords {
		if !c.IsFinite() {
			return nil, fmt.Errorf("%w: non-finite coordinate at %d: %s",
				ErrMalformedInput, i, c)
		}
	}

	n := len(coords)
	dm := &DistanceMap{n: n, d: matrix.Zeros(n, n)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := float64(coords[i].X) - float64(coords[j].X)
			dy := float64(coords[i].Y) - float64(coords[j].Y)
			dz := float64(coords[i].Z) - float64(coords[j].Z)
			sq := dx*dx + dy*dy + dz*dz
			dm.d.Set(i, j, sq)
			dm.d.Set(j, i, sq)
		}
	}
	return dm, nil
}

// Len returns the number of residues covered by the map.
func (dm *DistanceMap) Len() int {
	return dm.n
}

// At returns the squared distance between residues i and j.
func (dm *DistanceMap) At(i, j int) float64 {
	return dm.d.Get(i, j)
}

// ContactMap thresholds the distance map into a boolean adjacency matrix:
// entry (i, j), i ≠ j, is set iff the squared distance is strictly below
// thresholdAngstrom². The diagonal is always set (a residue is trivially in
// contact with itself).
func (dm *DistanceMap) ContactMap(thresholdAngstrom float64) *ContactMap {
	sqThreshold := thresholdAngstrom * thresholdAngstrom
	m := NewContactMap(dm.n)
	for i := 0; i < dm.n; i++ {
		for j := i + 1; j < dm.n; j++ {
			if dm.d.Get(i, j) < sqThreshold {
				m.Set(i, j)
			}
		}
	}
	return m
}
