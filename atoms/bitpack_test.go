package atoms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bioinf-mcb/deepfri-cmap/cmap"
)

func TestTriangleRankUnrank(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7, 50, 313} {
		bits := n * (n - 1) / 2
		seen := make([]bool, bits)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				k := triangleRank(n, i, j)
				require.GreaterOrEqual(t, k, 0)
				require.Less(t, k, bits)
				require.False(t, seen[k], "bit %d ranked twice (n=%d)", k, n)
				seen[k] = true

				gi, gj := triangleUnrank(n, k)
				require.Equal(t, i, gi, "row for bit %d (n=%d)", k, n)
				require.Equal(t, j, gj, "col for bit %d (n=%d)", k, n)
			}
		}
	}
}

func TestBitpackedRoundTrip(t *testing.T) {
	m := cmap.NewContactMap(9)
	m.Set(0, 1)
	m.Set(0, 8)
	m.Set(3, 7)
	m.Set(4, 5)
	m.Set(2, 6)

	path := filepath.Join(t.TempDir(), "chain.bitcmap")
	require.NoError(t, SaveBitpacked(m, path))

	got, err := LoadBitpacked(path)
	require.NoError(t, err)
	require.Equal(t, m.Dense(), got.Dense())
}

func TestBitpackedSmallChains(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		m := cmap.NewContactMap(n)
		if n == 2 {
			m.Set(0, 1)
		}
		path := filepath.Join(t.TempDir(), "tiny.bitcmap")
		require.NoError(t, SaveBitpacked(m, path))
		got, err := LoadBitpacked(path)
		require.NoError(t, err)
		require.Equal(t, m.Dense(), got.Dense())
	}
}

func TestBitpackedSmallerThanDense(t *testing.T) {
	// The point of the format: n²/16 bytes plus a header instead of n²
	// booleans, at the cost of a fixed threshold.
	n := 128
	m := cmap.NewContactMap(n)
	path := filepath.Join(t.TempDir(), "chain.bitcmap")
	require.NoError(t, SaveBitpacked(m, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(4+(n*(n-1)/2+7)/8), info.Size())
}

func TestBitpackedCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chain.bitcmap")
	m := cmap.NewContactMap(9)
	m.Set(1, 2)
	require.NoError(t, SaveBitpacked(m, path))
	good, err := os.ReadFile(path)
	require.NoError(t, err)

	bad := filepath.Join(dir, "bad.bitcmap")
	require.NoError(t, os.WriteFile(bad, good[:len(good)-1], 0666))
	_, err = LoadBitpacked(bad)
	require.ErrorIs(t, err, ErrCorruptFile)

	require.NoError(t, os.WriteFile(bad, good[:2], 0666))
	_, err = LoadBitpacked(bad)
	require.ErrorIs(t, err, ErrCorruptFile)

	_, err = LoadBitpacked(filepath.Join(dir, "missing.bitcmap"))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrCorruptFile)
}
