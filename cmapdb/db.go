// Package cmapdb manages a directory of per-structure atom files together
// with a JSON config sidecar naming the contact threshold and representative
// policy under which its contact maps are built. One database holds the
// template structures of a search target set; each entry round-trips through
// the atoms codec independently, so a corrupt or missing entry fails only
// its own call and never the caller's loop over other entries.
package cmapdb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bioinf-mcb/deepfri-cmap/atoms"
	"github.com/bioinf-mcb/deepfri-cmap/cmap"
	"github.com/bioinf-mcb/deepfri-cmap/structure"
)

const (
	fileConfig = "config.json"
	extAtoms   = ".atoms"
)

// ErrBadIdent indicates a structure identifier that cannot name a database
// entry (empty, or containing path separators).
var ErrBadIdent = errors.New("cmapdb: bad structure identifier")

// A DB is an open contact-map database directory.
type DB struct {
	Config

	path   string
	policy structure.RepresentativePolicy
}

// Create makes a new database directory at path. The directory must not
// already exist. A zero conf is replaced with DefaultConfig.
func Create(path string, conf Config) (*DB, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("cmapdb: cannot create '%s': it already "+
			"exists", path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("cmapdb: checking '%s': %w", path, err)
	}

	if conf == (Config{}) {
		conf = DefaultConfig()
	}
	policy, err := conf.policy()
	if err != nil {
		return nil, err
	}
	if conf.FormatVersion != FormatVersion {
		return nil, fmt.Errorf("cmapdb: cannot create a database with "+
			"format version %d; this package writes version %d",
			conf.FormatVersion, FormatVersion)
	}

	if err := os.MkdirAll(path, 0777); err != nil {
		return nil, fmt.Errorf("cmapdb: creating '%s': %w", path, err)
	}
	db := &DB{Config: conf, path: path, policy: policy}
	if err := conf.write(db.filePath(fileConfig)); err != nil {
		return nil, err
	}
	return db, nil
}

// Open opens an existing database directory.
func Open(path string) (*DB, error) {
	conf, err := openConfig(filepath.Join(path, fileConfig))
	if err != nil {
		return nil, err
	}
	policy, err := conf.policy()
	if err != nil {
		return nil, err
	}
	return &DB{Config: conf, path: path, policy: policy}, nil
}

// Path returns the database directory.
func (db *DB) Path() string {
	return db.path
}

// Write stores a structure's atoms under the given identifier, atomically
// replacing any previous entry with the same identifier.
func (db *DB) Write(id string, cs structure.CoordinateSet) error {
	p, err := db.entryPath(id)
	if err != nil {
		return err
	}
	return atoms.Save(cs, p)
}

// LoadAtoms reads back the raw atoms of one entry.
func (db *DB) LoadAtoms(id string) (structure.CoordinateSet, error) {
	p, err := db.entryPath(id)
	if err != nil {
		return structure.CoordinateSet{}, err
	}
	return atoms.LoadAtoms(p)
}

// LoadContactMap materializes one entry's contact map. A threshold of 0 uses
// the database's configured default.
func (db *DB) LoadContactMap(
	id string,
	thresholdAngstrom float64,
) (*cmap.ContactMap, error) {
	p, err := db.entryPath(id)
	if err != nil {
		return nil, err
	}
	if thresholdAngstrom == 0 {
		thresholdAngstrom = db.Threshold
	}
	return atoms.LoadContactMap(p, thresholdAngstrom, db.policy)
}

// SparseContacts materializes one entry's contact map and extracts its
// sparse contact list, ready for alignment projection. A threshold of 0 uses
// the database's configured default.
func (db *DB) SparseContacts(
	id string,
	thresholdAngstrom float64,
) (cmap.SparseContactList, error) {
	m, err := db.LoadContactMap(id, thresholdAngstrom)
	if err != nil {
		return nil, err
	}
	return m.Sparse(), nil
}

// Ids lists the identifiers of all entries in the database, sorted.
func (db *DB) Ids() ([]string, error) {
	entries, err := os.ReadDir(db.path)
	if err != nil {
		return nil, fmt.Errorf("cmapdb: reading '%s': %w", db.path, err)
	}
	ids := make([]string, 0, len(entries))
	for _, ent := range entries {
		name := ent.Name()
		if ent.IsDir() || !strings.HasSuffix(name, extAtoms) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, extAtoms))
	}
	sort.Strings(ids)
	return ids, nil
}

func (db *DB) entryPath(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) ||
		id != filepath.Base(id) {
		return "", fmt.Errorf("%w: %q", ErrBadIdent, id)
	}
	return db.filePath(id + extAtoms), nil
}

func (db *DB) filePath(name string) string {
	return filepath.Join(db.path, name)
}
