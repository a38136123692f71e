package seq

import (
	"fmt"
)

// A Sequence corresponds to any kind of biological sequence: DNA, RNA, amino
// acid, etc. In this package it is usually an amino acid sequence, either
// ungapped or as one side of a pairwise alignment.
type Sequence struct {
	Name     string
	Residues []Residue
}

// A Residue corresponds to a single entry in a sequence.
type Residue byte

// GapResidue is the gap marker produced by pairwise aligners.
const GapResidue Residue = '-'

// IsGap returns true if the residue is a gap marker.
func (r Residue) IsGap() bool {
	return r == GapResidue
}

// NewSequence creates a sequence from a raw string of residue letters.
func NewSequence(name, residues string) Sequence {
	return Sequence{
		Name:     name,
		Residues: []Residue(residues),
	}
}

// Copy returns a deep copy of the sequence.
func (s Sequence) Copy() Sequence {
	residues := make([]Residue, len(s.Residues))
	copy(residues, s.Residues)
	return Sequence{
		Name:     s.Name,
		Residues: residues,
	}
}

// Slice returns a slice of the sequence. The name stays the same, and the
// sequence of residues corresponds to a Go slice of the original.
// (This does not copy data, so that if the original or sliced sequence is
// changed, the other one will too. Use Sequence.Copy first if you need copy
// semantics.)
func (s Sequence) Slice(start, end int) Sequence {
	return Sequence{
		Name:     s.Name,
		Residues: s.Residues[start:end],
	}
}

// Len returns the number of residues in the sequence, gaps included.
func (s Sequence) Len() int {
	return len(s.Residues)
}

// UngappedLen returns the number of non-gap residues in the sequence.
func (s Sequence) UngappedLen() int {
	n := 0
	for _, r := range s.Residues {
		if !r.IsGap() {
			n++
		}
	}
	return n
}

// Ungapped returns a copy of the sequence with all gap markers removed.
func (s Sequence) Ungapped() Sequence {
	residues := make([]Residue, 0, len(s.Residues))
	for _, r := range s.Residues {
		if !r.IsGap() {
			residues = append(residues, r)
		}
	}
	return Sequence{
		Name:     s.Name,
		Residues: residues,
	}
}

// IsNull returns true if the name has zero length and the residues are nil.
func (s Sequence) IsNull() bool {
	return len(s.Name) == 0 && s.Residues == nil
}

func (s Sequence) String() string {
	return fmt.Sprintf(">%s\n%s", s.Name, string(s.Residues))
}
