// Package config holds the compiled-in parameter tables that govern bag
// capacities, forgetting rates and acceptance thresholds, and the loader
// that lets a deployment override them from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Bags holds the capacity of each priority bag in the system. Defaults
// follow the widely used OpenNARS parameter table; the NARust-158 excerpt
// available in this module's reference material did not carry a concrete
// default table of its own.
type Bags struct {
	ConceptCapacity   int
	TaskLinkCapacity  int
	TermLinkCapacity  int
	BeliefCapacity    int
	QuestionCapacity  int
	NewTaskCapacity   int
	NovelTaskCapacity int
}

// Forgetting holds the per-bag-kind forgetting rate, expressed as a cycle
// count: how many cycles an item at the bottom of its priority level
// survives before its priority decays a full level.
type Forgetting struct {
	ConceptCycles  int
	TaskLinkCycles int
	TermLinkCycles int
}

// Reasoner holds the scalar parameters that gate acceptance and bound
// evidential/derivation bookkeeping.
type Reasoner struct {
	BudgetThreshold    float64
	MaximumStampLength int
	MaxReasonedLinks   int
	DistributorRange   int
}

// Storage configures the on-disk snapshot backend.
type Storage struct {
	SnapshotPath string
}

// Logging holds logging settings. Load reads Verbose from the
// environment, but no package consults it; the only *log.Logger the
// core builds is storage.Memory's, with a fixed "[memory] " prefix.
type Logging struct {
	Verbose bool
}

// Config is the full parameter tree threaded through memory, bag and
// reasoner construction.
type Config struct {
	Bags       Bags
	Forgetting Forgetting
	Reasoner   Reasoner
	Storage    Storage
	Logging    Logging
}

// Default returns the compiled-in parameter table.
func Default() Config {
	return Config{
		Bags: Bags{
			ConceptCapacity:   1000,
			TaskLinkCapacity:  20,
			TermLinkCapacity:  100,
			BeliefCapacity:    7,
			QuestionCapacity:  5,
			NewTaskCapacity:   100,
			NovelTaskCapacity: 100,
		},
		Forgetting: Forgetting{
			ConceptCycles:  10,
			TaskLinkCycles: 20,
			TermLinkCycles: 50,
		},
		Reasoner: Reasoner{
			BudgetThreshold:    0.01,
			MaximumStampLength: 20,
			MaxReasonedLinks:   3,
			DistributorRange:   100,
		},
		Storage: Storage{SnapshotPath: "reasoner.db"},
		Logging: Logging{Verbose: false},
	}
}

// Load returns Default() overridden by any recognized environment
// variables (REASONER_<FIELD_PATH>), failing fast on a malformed value so
// a bad deployment config is caught at startup rather than silently
// ignored.
func Load() (Config, error) {
	cfg := Default()
	if err := overrideInt(&cfg.Bags.ConceptCapacity, "REASONER_CONCEPT_BAG_CAPACITY"); err != nil {
		return Config{}, err
	}
	if err := overrideInt(&cfg.Bags.TaskLinkCapacity, "REASONER_TASK_LINK_BAG_CAPACITY"); err != nil {
		return Config{}, err
	}
	if err := overrideInt(&cfg.Bags.TermLinkCapacity, "REASONER_TERM_LINK_BAG_CAPACITY"); err != nil {
		return Config{}, err
	}
	if err := overrideFloat(&cfg.Reasoner.BudgetThreshold, "REASONER_BUDGET_THRESHOLD"); err != nil {
		return Config{}, err
	}
	if err := overrideInt(&cfg.Reasoner.MaximumStampLength, "REASONER_MAX_STAMP_LENGTH"); err != nil {
		return Config{}, err
	}
	if path, ok := os.LookupEnv("REASONER_SNAPSHOT_PATH"); ok {
		cfg.Storage.SnapshotPath = path
	}
	if v, ok := os.LookupEnv("REASONER_VERBOSE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: REASONER_VERBOSE: %w", err)
		}
		cfg.Logging.Verbose = b
	}
	return cfg, nil
}

func overrideInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = n
	return nil
}

func overrideFloat(dst *float64, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = f
	return nil
}
