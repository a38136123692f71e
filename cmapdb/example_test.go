package cmapdb_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bioinf-mcb/deepfri-cmap/align"
	"github.com/bioinf-mcb/deepfri-cmap/cmapdb"
	"github.com/bioinf-mcb/deepfri-cmap/seq"
	"github.com/bioinf-mcb/deepfri-cmap/structure"
)

// Store a template structure once, then transfer its contacts onto a query
// sequence that was matched to it by sequence search. The query's third
// residue is an insertion with no structural counterpart, so it borrows
// contacts from its sequence neighbors.
func Example() {
	dir, err := os.MkdirTemp("", "cmapdb-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	db, err := cmapdb.Create(filepath.Join(dir, "templates"), cmapdb.Config{})
	if err != nil {
		fmt.Println(err)
		return
	}

	// Four pre-extracted alpha-carbon positions, 5 angstroms apart.
	template := structure.CoordinateSet{
		Coords: []structure.Coords{
			{X: 0}, {X: 5}, {X: 10}, {X: 15},
		},
		Groups: []uint32{0, 1, 2, 3, 4},
	}
	if err := db.Write("1abc_A", template); err != nil {
		fmt.Println(err)
		return
	}

	contacts, err := db.SparseContacts("1abc_A", 0)
	if err != nil {
		fmt.Println(err)
		return
	}

	projector := align.Projector{GeneratedContacts: 1}
	pair := seq.NewGappedPair("MKXVL", "MK-VL")
	m, err := projector.Project(contacts, pair)
	if err != nil {
		fmt.Println(err)
		return
	}

	for i := 0; i < m.Len(); i++ {
		for j := 0; j < m.Len(); j++ {
			if m.At(i, j) {
				fmt.Print("1")
			} else {
				fmt.Print("0")
			}
		}
		fmt.Println()
	}
	// Output:
	// 11000
	// 11110
	// 01110
	// 01111
	// 00011
}
