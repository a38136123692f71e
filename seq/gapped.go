package seq

import (
	"errors"
	"fmt"
)

// ErrRaggedPair indicates the two sides of a gapped pair differ in length.
var ErrRaggedPair = errors.New("seq: gapped pair sides have unequal lengths")

// A GappedPair is the output of a pairwise aligner: two sequences of equal
// length over the residue alphabet plus the gap marker. Removing the gaps
// from the query side recovers the ungapped query sequence, and likewise for
// the template side.
type GappedPair struct {
	Query    Sequence
	Template Sequence
}

// NewGappedPair creates a gapped pair from two aligned strings.
func NewGappedPair(query, template string) GappedPair {
	return GappedPair{
		Query:    NewSequence("query", query),
		Template: NewSequence("template", template),
	}
}

// Validate checks that both sides of the pair have the same aligned length.
func (p GappedPair) Validate() error {
	if p.Query.Len() != p.Template.Len() {
		return fmt.Errorf("%w: query %d, template %d",
			ErrRaggedPair, p.Query.Len(), p.Template.Len())
	}
	return nil
}

// Len returns the aligned length of the pair.
func (p GappedPair) Len() int {
	return p.Query.Len()
}
