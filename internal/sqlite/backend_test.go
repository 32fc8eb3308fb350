package sqlite

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/repunit/pkg/types"
)

func attached(t *testing.T, dir string) *Backend {
	t.Helper()
	b := NewBackend()
	require.NoError(t, b.Attach(dir))
	t.Cleanup(func() { b.Detach() })
	return b
}

func sampleEntries() []string {
	entries := make([]string, types.MaxResult+1)
	entries[0] = "2-2"
	entries[1] = "2/2"
	entries[4] = "2+2"
	entries[types.MaxResult] = "2222/2-111"
	return entries
}

func TestBackend_Attach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	require.NoError(t, b.Attach(tmpDir))

	_, err := os.Stat(filepath.Join(tmpDir, DBFile))
	require.NoError(t, err, "database file should be created")
	assert.True(t, Exists(tmpDir))

	assert.ErrorIs(t, b.Attach(tmpDir), types.ErrStoreAttached)
	require.NoError(t, b.Detach())
}

func TestBackend_Detach(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Attach(t.TempDir()))

	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach(), "detach is idempotent")

	_, err := b.SaveRun(types.DefaultConfig(), nil)
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = b.LatestRun()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = b.Solutions("x")
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = b.Lookup(4)
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}

func TestBackend_LookupAfterDetachWithRuns(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Attach(t.TempDir()))
	_, err := b.SaveRun(types.DefaultConfig(), sampleEntries())
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	got, err := b.Lookup(4)
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	assert.Empty(t, got)
}

func TestBackend_LookupConcurrentWithDetach(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Attach(t.TempDir()))
	_, err := b.SaveRun(types.DefaultConfig(), sampleEntries())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got, err := b.Lookup(4)
				if err != nil {
					assert.ErrorIs(t, err, types.ErrStoreDetached)
					return
				}
				assert.Equal(t, "2+2", got)
			}
		}()
	}
	require.NoError(t, b.Detach())
	wg.Wait()
}

// TestRunStoreInterface drives the backend only through types.RunStore.
func TestRunStoreInterface(t *testing.T) {
	var store types.RunStore = NewBackend()
	dir := t.TempDir()

	require.NoError(t, store.Attach(dir))
	assert.ErrorIs(t, store.Attach(dir), types.ErrStoreAttached)

	_, err := store.Lookup(1)
	assert.ErrorIs(t, err, types.ErrNoRuns)

	run, err := store.SaveRun(types.DefaultConfig(), sampleEntries())
	require.NoError(t, err)

	latest, err := store.LatestRun()
	require.NoError(t, err)
	assert.Equal(t, run.RunID, latest.RunID)

	got, err := store.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, "2/2", got)

	entries, err := store.Solutions(run.RunID)
	require.NoError(t, err)
	assert.Equal(t, sampleEntries(), entries)

	require.NoError(t, store.Detach())
	_, err = store.LatestRun()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}

func TestBackend_LatestRunEmpty(t *testing.T) {
	b := attached(t, t.TempDir())

	_, err := b.LatestRun()
	assert.ErrorIs(t, err, types.ErrNoRuns)
	_, err = b.Lookup(4)
	assert.ErrorIs(t, err, types.ErrNoRuns)
}

func TestBackend_SaveRunAndLookup(t *testing.T) {
	b := attached(t, t.TempDir())
	cfg := types.DefaultConfig()
	cfg.Rounds = 2

	run, err := b.SaveRun(cfg, sampleEntries())
	require.NoError(t, err)
	assert.NotEmpty(t, run.RunID)
	assert.Equal(t, 4, run.Reached)

	latest, err := b.LatestRun()
	require.NoError(t, err)
	assert.Equal(t, run.RunID, latest.RunID)
	assert.Equal(t, 2, latest.Rounds)
	assert.Equal(t, cfg.Alphabet, latest.Alphabet)
	assert.Equal(t, 4, latest.Reached)
	assert.WithinDuration(t, run.CreatedAt, latest.CreatedAt, 0)

	got, err := b.Lookup(4)
	require.NoError(t, err)
	assert.Equal(t, "2+2", got)

	got, err = b.Lookup(types.MaxResult)
	require.NoError(t, err)
	assert.Equal(t, "2222/2-111", got)

	got, err = b.Lookup(3)
	require.NoError(t, err)
	assert.Empty(t, got, "unreached result")
}

func TestBackend_LatestRunWins(t *testing.T) {
	b := attached(t, t.TempDir())

	_, err := b.SaveRun(types.DefaultConfig(), []string{"2-2", "22/22"})
	require.NoError(t, err)
	second, err := b.SaveRun(types.DefaultConfig(), []string{"2-2", "2/2"})
	require.NoError(t, err)

	latest, err := b.LatestRun()
	require.NoError(t, err)
	assert.Equal(t, second.RunID, latest.RunID)

	got, err := b.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, "2/2", got)
}

func TestBackend_Solutions(t *testing.T) {
	b := attached(t, t.TempDir())

	run, err := b.SaveRun(types.DefaultConfig(), sampleEntries())
	require.NoError(t, err)

	entries, err := b.Solutions(run.RunID)
	require.NoError(t, err)
	assert.Equal(t, sampleEntries(), entries)
}

func TestBackend_PersistsAcrossAttach(t *testing.T) {
	dir := t.TempDir()

	b := NewBackend()
	require.NoError(t, b.Attach(dir))
	run, err := b.SaveRun(types.DefaultConfig(), sampleEntries())
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	reopened := attached(t, dir)
	latest, err := reopened.LatestRun()
	require.NoError(t, err)
	assert.Equal(t, run.RunID, latest.RunID)
}

func TestOperandCodec(t *testing.T) {
	ops, err := decodeOperands(encodeOperands([]int64{2, 22, 222}))
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 22, 222}, ops)

	_, err = decodeOperands("2,x")
	assert.Error(t, err)

	assert.Equal(t, "+-*/", encodeOperators(types.DefaultAlphabet().Operators))
	assert.Equal(t, types.DefaultAlphabet().Operators, decodeOperators("+-*/"))
}
