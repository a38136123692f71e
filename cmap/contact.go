package cmap

// A ContactMap is a dense, symmetric, row-major boolean adjacency matrix over
// residues. The diagonal is always set. Downstream graph predictors consume
// it as a square adjacency matrix sized to the chain length.
type ContactMap struct {
	n     int
	cells []bool
}

// NewContactMap creates an n×n contact map with the diagonal set and all
// off-diagonal entries clear.
func NewContactMap(n int) *ContactMap {
	m := &ContactMap{n: n, cells: make([]bool, n*n)}
	for i := 0; i < n; i++ {
		m.cells[i*n+i] = true
	}
	return m
}

// Len returns the number of residues covered by the map.
func (m *ContactMap) Len() int {
	return m.n
}

// At reports whether residues i and j are in contact.
func (m *ContactMap) At(i, j int) bool {
	return m.cells[i*m.n+j]
}

// Set marks residues i and j as in contact. Both symmetric entries are
// written, so the matrix stays symmetric by construction.
func (m *ContactMap) Set(i, j int) {
	m.cells[i*m.n+j] = true
	m.cells[j*m.n+i] = true
}

// Dense returns the row-major backing array. The caller must treat it as
// read-only; it is shared with the map.
func (m *ContactMap) Dense() []bool {
	return m.cells
}

// Sparse extracts the unordered contact pairs (i < j, diagonal excluded).
func (m *ContactMap) Sparse() SparseContactList {
	contacts := make(SparseContactList, 0, m.n*10)
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.cells[i*m.n+j] {
				contacts = append(contacts, Contact{I: i, J: j})
			}
		}
	}
	return contacts
}
