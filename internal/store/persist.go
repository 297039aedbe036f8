package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"resume-builder/internal/model"
)

// StateFileName is the namespaced record the whole store state lives
// under, after the builder's storage key "resume-store".
const StateFileName = "resume-store.json"

// FilePersister keeps the store state as one JSON document in the
// local data directory. Writes go through a temp file and rename so a
// crash mid-write never leaves a torn document behind.
type FilePersister struct {
	path       string
	schemaPath string
}

// NewFilePersister stores state under dataDir. schemaPath points at
// state.schema.json and may be empty to skip validation on load.
func NewFilePersister(dataDir, schemaPath string) (*FilePersister, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &FilePersister{
		path:       filepath.Join(dataDir, StateFileName),
		schemaPath: schemaPath,
	}, nil
}

// Save on a nil receiver is a no-op, so a failed construction wired
// through the Persister interface still leaves the store in-memory
// only instead of crashing it.
func (f *FilePersister) Save(snap Snapshot) error {
	if f == nil {
		return nil
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Load rehydrates the last saved snapshot. The second return is false
// when no document exists yet. A document that fails to parse or fails
// schema validation is reported as an error; the caller decides how
// tolerant to be (the store starts fresh).
func (f *FilePersister) Load() (Snapshot, bool, error) {
	if f == nil {
		return Snapshot{}, false, nil
	}
	b, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, err
	}

	if f.schemaPath != "" {
		var doc map[string]interface{}
		if err := json.Unmarshal(b, &doc); err != nil {
			return Snapshot{}, false, err
		}
		if err := model.ValidateStateDocument(f.schemaPath, doc); err != nil {
			return Snapshot{}, false, err
		}
	}

	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}
