// Package cmap computes residue-level distance and contact maps from
// representative 3D coordinates. Distances are kept squared throughout, so
// contact thresholds are compared against threshold².
package cmap

import (
	"errors"
)

// Sentinel errors for map construction.
var (
	// ErrMalformedInput indicates non-finite input coordinates.
	ErrMalformedInput = errors.New("cmap: malformed input")
	// ErrInvalidContactIndex indicates a sparse contact referencing a
	// residue outside the chain.
	ErrInvalidContactIndex = errors.New("cmap: contact index out of range")
)
