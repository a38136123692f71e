package cmap

import (
	"fmt"
)

// A Contact is an unordered pair of residue indices that are in contact.
type Contact struct {
	I, J int
}

// A SparseContactList is the set of contacts of one chain, immutable once
// produced. Indices live in the ungapped index space of the chain that
// computed them.
type SparseContactList []Contact

// Validate checks every contact against a chain of n residues: indices must
// lie in [0, n) and the two endpoints must differ.
func (contacts SparseContactList) Validate(n int) error {
	for k, c := range contacts {
		if c.I < 0 || c.I >= n || c.J < 0 || c.J >= n {
			return fmt.Errorf("%w: contact %d is (%d, %d); valid range "+
				"is [0, %d)", ErrInvalidContactIndex, k, c.I, c.J, n)
		}
		if c.I == c.J {
			return fmt.Errorf("%w: contact %d is a self-pair (%d, %d)",
				ErrInvalidContactIndex, k, c.I, c.J)
		}
	}
	return nil
}
