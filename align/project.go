// Package align re-projects a template chain's contacts onto a query
// sequence through a pairwise alignment. The query has no structure of its
// own; every contact it gets is either transferred from the template through
// aligned columns or synthesized for inserted residues from sequence
// adjacency.
package align

import (
	"errors"
	"fmt"

	"github.com/bioinf-mcb/deepfri-cmap/cmap"
	"github.com/bioinf-mcb/deepfri-cmap/seq"
)

// ErrInvalidParameter indicates a negative generated-contacts window.
var ErrInvalidParameter = errors.New("align: invalid parameter")

// A Projector transfers a template's sparse contacts into the query's
// ungapped index space.
//
// GeneratedContacts controls the synthetic window around inserted query
// residues (residues with no structural counterpart in the template): each
// such residue is marked in contact with its GeneratedContacts nearest
// sequence neighbors on both sides. An inserted residue's true spatial
// position is unknown, but it is assumed to stay near its immediate chain
// neighbors; zero leaves inserted residues with only their diagonal entry.
type Projector struct {
	GeneratedContacts int
}

// Project builds the query-space contact map from the template's contacts
// and the gapped alignment pair. The result is Lq×Lq where Lq is the number
// of non-gap characters on the query side; an empty alignment yields an
// empty (0×0) map.
//
// Columns are scanned once. An aligned column (both sides non-gap) maps the
// current template index to the current query index. A template gap under a
// query residue is an insertion: the query residue is recorded for synthetic
// contacts. A query gap under a template residue is a deletion: that
// template index becomes unreachable, and every template contact touching it
// is silently dropped.
//
// The output depends only on the inputs. Symmetric writes commute, so no
// ordering of the contact list changes the result.
func (p Projector) Project(
	contacts cmap.SparseContactList,
	pair seq.GappedPair,
) (*cmap.ContactMap, error) {
	if p.GeneratedContacts < 0 {
		return nil, fmt.Errorf("%w: generated contacts is %d; must be "+
			"non-negative", ErrInvalidParameter, p.GeneratedContacts)
	}
	if err := pair.Validate(); err != nil {
		return nil, err
	}

	lq := pair.Query.UngappedLen()
	lt := pair.Template.UngappedLen()
	if err := contacts.Validate(lt); err != nil {
		return nil, err
	}

	// Walk the alignment columns, mapping each template index to a query
	// index or -1 for deletions, and collecting inserted query positions.
	templateToQuery := make([]int, lt)
	inserted := make([]int, 0, 8)
	qi, ti := 0, 0
	for col := 0; col < pair.Len(); col++ {
		qGap := pair.Query.Residues[col].IsGap()
		tGap := pair.Template.Residues[col].IsGap()
		switch {
		case qGap && tGap:
			// An all-gap column carries no residue on either side.
		case tGap:
			inserted = append(inserted, qi)
			qi++
		case qGap:
			templateToQuery[ti] = -1
			ti++
		default:
			templateToQuery[ti] = qi
			ti++
			qi++
		}
	}

	m := cmap.NewContactMap(lq)
	for _, c := range contacts {
		cqi, cqj := templateToQuery[c.I], templateToQuery[c.J]
		if cqi < 0 || cqj < 0 {
			continue
		}
		m.Set(cqi, cqj)
	}
	for _, q := range inserted {
		for d := 1; d <= p.GeneratedContacts; d++ {
			if q-d >= 0 {
				m.Set(q, q-d)
			}
			if q+d < lq {
				m.Set(q, q+d)
			}
		}
	}
	return m, nil
}
