package structure

import (
	"fmt"
)

// A RepresentativePolicy picks the single point that stands in for a whole
// residue when reducing grouped atoms to a residue-level coordinate list.
type RepresentativePolicy int

const (
	// RepFirstAtom takes the first atom of each residue's range.
	RepFirstAtom RepresentativePolicy = iota
	// RepCentroid takes the mean of each residue's atoms.
	RepCentroid
	// RepAlphaCarbon expects pre-extracted alpha-carbon coordinates: every
	// residue group must contain exactly one atom. The atoms file does not
	// record atom names, so a multi-atom group cannot identify its CA.
	RepAlphaCarbon
)

var policyNames = map[RepresentativePolicy]string{
	RepFirstAtom:   "first-atom",
	RepCentroid:    "centroid",
	RepAlphaCarbon: "alpha-carbon",
}

func (p RepresentativePolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy resolves a policy name as stored in a database config.
func ParsePolicy(name string) (RepresentativePolicy, error) {
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Representatives reduces the coordinate set to one point per residue under
// the given policy. The coordinate set must validate first.
func (cs CoordinateSet) Representatives(
	policy RepresentativePolicy,
) ([]Coords, error) {
	if err := cs.Validate(); err != nil {
		return nil, err
	}

	n := cs.NumResidues()
	reps := make([]Coords, n)
	for r := 0; r < n; r++ {
		start, end := cs.Groups[r], cs.Groups[r+1]
		switch policy {
		case RepFirstAtom:
			reps[r] = cs.Coords[start]
		case RepCentroid:
			var sx, sy, sz float64
			for a := start; a < end; a++ {
				sx += float64(cs.Coords[a].X)
				sy += float64(cs.Coords[a].Y)
				sz += float64(cs.Coords[a].Z)
			}
			size := float64(end - start)
			reps[r] = Coords{
				X: float32(sx / size),
				Y: float32(sy / size),
				Z: float32(sz / size),
			}
		case RepAlphaCarbon:
			if end-start != 1 {
				return nil, fmt.Errorf("%w: residue %d has %d atoms; the "+
					"alpha-carbon policy requires pre-extracted CA "+
					"coordinates with one atom per residue",
					ErrMalformedInput, r, end-start)
			}
			reps[r] = cs.Coords[start]
		default:
			return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, policy)
		}
	}
	return reps, nil
}
