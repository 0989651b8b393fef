package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.db")
	store, err := OpenSnapshotStore(path)
	require.NoError(t, err)
	defer store.Close()

	records := []ConceptRecord{
		{Name: "bird", Priority: 0.8, Durability: 0.8, Quality: 0.8},
		{Name: "raven", Priority: 0.6, Durability: 0.5, Quality: 0.5},
	}
	require.NoError(t, store.SaveConcepts(records))

	got, err := store.LoadConcepts()
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NotEmpty(t, got[0].SnapshotID)
	assert.Equal(t, got[0].SnapshotID, got[1].SnapshotID)
}

func TestSnapshotStoreSaveReplacesPriorContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.db")
	store, err := OpenSnapshotStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SaveConcepts([]ConceptRecord{{Name: "bird", Priority: 0.5, Durability: 0.5, Quality: 0.5}}))
	require.NoError(t, store.SaveConcepts([]ConceptRecord{{Name: "raven", Priority: 0.5, Durability: 0.5, Quality: 0.5}}))

	got, err := store.LoadConcepts()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "raven", got[0].Name)
}
