package cmapdb

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bioinf-mcb/deepfri-cmap/atoms"
	"github.com/bioinf-mcb/deepfri-cmap/structure"
)

func lineChain(spacing float32, n int) structure.CoordinateSet {
	cs := structure.CoordinateSet{
		Coords: make([]structure.Coords, n),
		Groups: make([]uint32, n+1),
	}
	for i := 0; i < n; i++ {
		cs.Coords[i] = structure.Coords{X: spacing * float32(i)}
		cs.Groups[i+1] = uint32(i + 1)
	}
	return cs
}

func TestCreateOpenRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")

	db, err := Create(dir, Config{})
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), db.Config)

	cs := lineChain(5, 3)
	require.NoError(t, db.Write("1gfl_A", cs))

	reopened, err := Open(dir)
	require.NoError(t, err)
	require.Equal(t, db.Config, reopened.Config)

	got, err := reopened.LoadAtoms("1gfl_A")
	require.NoError(t, err)
	require.Equal(t, cs, got)
}

func TestCreateRefusesExisting(t *testing.T) {
	dir := t.TempDir()
	_, err := Create(dir, Config{})
	require.Error(t, err)
}

func TestCreateRejectsBadConfig(t *testing.T) {
	base := t.TempDir()

	_, err := Create(filepath.Join(base, "a"), Config{
		FormatVersion:  FormatVersion,
		Threshold:      6,
		Representative: "nope",
	})
	require.ErrorIs(t, err, structure.ErrUnknownPolicy)

	_, err = Create(filepath.Join(base, "b"), Config{
		FormatVersion:  99,
		Threshold:      6,
		Representative: structure.RepFirstAtom.String(),
	})
	require.Error(t, err)
}

func TestLoadContactMapDefaultThreshold(t *testing.T) {
	db, err := Create(filepath.Join(t.TempDir(), "db"), Config{})
	require.NoError(t, err)
	require.NoError(t, db.Write("chain", lineChain(5, 3)))

	// 0 means the configured 6.0 default: neighbors only.
	m, err := db.LoadContactMap("chain", 0)
	require.NoError(t, err)
	require.True(t, m.At(0, 1))
	require.False(t, m.At(0, 2))

	wide, err := db.LoadContactMap("chain", 11)
	require.NoError(t, err)
	require.True(t, wide.At(0, 2))
}

func TestSparseContacts(t *testing.T) {
	db, err := Create(filepath.Join(t.TempDir(), "db"), Config{})
	require.NoError(t, err)
	require.NoError(t, db.Write("chain", lineChain(5, 4)))

	contacts, err := db.SparseContacts("chain", 0)
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	for _, c := range contacts {
		require.Equal(t, c.I+1, c.J)
	}
}

func TestIds(t *testing.T) {
	db, err := Create(filepath.Join(t.TempDir(), "db"), Config{})
	require.NoError(t, err)

	require.NoError(t, db.Write("b", lineChain(5, 2)))
	require.NoError(t, db.Write("a", lineChain(5, 2)))
	require.NoError(t, db.Write("c", lineChain(5, 2)))

	ids, err := db.Ids()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestBadIdent(t *testing.T) {
	db, err := Create(filepath.Join(t.TempDir(), "db"), Config{})
	require.NoError(t, err)

	for _, id := range []string{"", "a/b", `a\b`, "../escape"} {
		require.ErrorIs(t, db.Write(id, lineChain(5, 2)), ErrBadIdent, id)
		_, err := db.LoadAtoms(id)
		require.ErrorIs(t, err, ErrBadIdent, id)
	}
}

func TestPartialFailure(t *testing.T) {
	// One corrupt and one missing entry fail their own calls with
	// distinguishable errors; the good entry still loads.
	db, err := Create(filepath.Join(t.TempDir(), "db"), Config{})
	require.NoError(t, err)
	require.NoError(t, db.Write("good", lineChain(5, 3)))
	require.NoError(t, os.WriteFile(
		filepath.Join(db.Path(), "bad.atoms"), []byte{1, 2}, 0666))

	_, err = db.LoadContactMap("bad", 0)
	require.ErrorIs(t, err, atoms.ErrCorruptFile)

	_, err = db.LoadContactMap("missing", 0)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.NotErrorIs(t, err, atoms.ErrCorruptFile)

	m, err := db.LoadContactMap("good", 0)
	require.NoError(t, err)
	require.Equal(t, 3, m.Len())
}
