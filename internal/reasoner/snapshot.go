package reasoner

import (
	"fmt"

	"github.com/narsgo/reasoner/internal/storage"
)

// SaveSnapshot persists every concept's name and budget to the sqlite
// store at path, replacing any previous contents. It does not persist
// beliefs, questions or links; a restored reasoner recreates those as new
// input arrives, starting from the recovered attention distribution.
func (r *Reasoner) SaveSnapshot(path string) error {
	store, err := storage.OpenSnapshotStore(path)
	if err != nil {
		return fmt.Errorf("reasoner: save snapshot: %w", err)
	}
	defer store.Close()

	var records []storage.ConceptRecord
	for _, c := range r.memory.Concepts() {
		records = append(records, storage.ConceptRecord{
			Name:       c.Name(),
			Priority:   c.Budget.Priority.Value(),
			Durability: c.Budget.Durability.Value(),
			Quality:    c.Budget.Quality.Value(),
		})
	}
	if err := store.SaveConcepts(records); err != nil {
		return fmt.Errorf("reasoner: save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshotSummary reads the persisted concept records at path without
// reconstructing full concepts (their term would need to be re-parsed and
// re-derived from the name, which this minimal snapshot does not attempt);
// it is meant for inspecting a snapshot file, not full restore.
func LoadSnapshotSummary(path string) ([]storage.ConceptRecord, error) {
	store, err := storage.OpenSnapshotStore(path)
	if err != nil {
		return nil, fmt.Errorf("reasoner: load snapshot: %w", err)
	}
	defer store.Close()
	records, err := store.LoadConcepts()
	if err != nil {
		return nil, fmt.Errorf("reasoner: load snapshot: %w", err)
	}
	return records, nil
}
