// Package structure holds raw atom coordinates extracted from a structure
// file, along with the residue grouping needed to reduce them to one
// representative point per residue.
package structure

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for coordinate validation.
var (
	// ErrMalformedInput indicates inconsistent coordinates or group
	// boundaries supplied by the structure parser.
	ErrMalformedInput = errors.New("structure: malformed input")
	// ErrUnknownPolicy indicates an unrecognized representative policy name.
	ErrUnknownPolicy = errors.New("structure: unknown representative policy")
)

// Coords is a single atom position. Fields are float32 because the on-disk
// atoms format stores IEEE-754 single precision and save/load round trips
// must be bit-identical.
type Coords struct {
	X, Y, Z float32
}

func (c Coords) String() string {
	return fmt.Sprintf("(%0.3f, %0.3f, %0.3f)", c.X, c.Y, c.Z)
}

// IsFinite returns false if any component is NaN or infinite.
func (c Coords) IsFinite() bool {
	for _, v := range [3]float32{c.X, c.Y, c.Z} {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// A CoordinateSet is an ordered list of atom positions together with the
// residue grouping of the chain they came from. Groups has one entry per
// residue plus one: Groups[r] is the index of the first atom of residue r,
// and Groups[len(Groups)-1] is the total atom count, so residue r owns the
// half-open atom range [Groups[r], Groups[r+1]).
type CoordinateSet struct {
	Coords []Coords
	Groups []uint32
}

// NumResidues returns the number of residue groups.
func (cs CoordinateSet) NumResidues() int {
	if len(cs.Groups) == 0 {
		return 0
	}
	return len(cs.Groups) - 1
}

// NumAtoms returns the number of atoms.
func (cs CoordinateSet) NumAtoms() int {
	return len(cs.Coords)
}

// Validate checks the group boundary invariants: at least one entry, first
// entry zero, strictly increasing, last entry equal to the atom count.
func (cs CoordinateSet) Validate() error {
	if len(cs.Groups) == 0 {
		return fmt.Errorf("%w: no group boundaries", ErrMalformedInput)
	}
	if cs.Groups[0] != 0 {
		return fmt.Errorf("%w: first group boundary is %d, not 0",
			ErrMalformedInput, cs.Groups[0])
	}
	for i := 1; i < len(cs.Groups); i++ {
		if cs.Groups[i] <= cs.Groups[i-1] {
			return fmt.Errorf("%w: group boundaries not strictly "+
				"increasing at %d (%d then %d)",
				ErrMalformedInput, i, cs.Groups[i-1], cs.Groups[i])
		}
	}
	if last := cs.Groups[len(cs.Groups)-1]; int(last) != len(cs.Coords) {
		return fmt.Errorf("%w: last group boundary is %d but there are "+
			"%d atoms", ErrMalformedInput, last, len(cs.Coords))
	}
	return nil
}
