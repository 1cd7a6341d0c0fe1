package persistence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ttykit/ttykit-go/pkg/stty"
)

// SnapshotVersion is the current version of the snapshot file format.
const SnapshotVersion = 1

// SnapshotFile is the on-disk envelope around one attribute snapshot.
type SnapshotFile struct {
	// Version is the snapshot file format version.
	Version int `json:"version"`

	// SavedAt is when the snapshot was saved.
	SavedAt time.Time `json:"saved_at"`

	// Snapshot is the flat attribute mapping, including the reserved raw
	// block keys.
	Snapshot map[string]any `json:"snapshot"`
}

// SnapshotStore manages persistence of attribute snapshots to a JSON file.
type SnapshotStore struct {
	mu   sync.Mutex
	path string
}

// NewSnapshotStore creates a new snapshot store.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Save persists the Stty's snapshot to disk.
func (s *SnapshotStore) Save(st *stty.Stty) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure parent directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file := SnapshotFile{
		Version:  SnapshotVersion,
		SavedAt:  time.Now(),
		Snapshot: st.Snapshot(),
	}

	data, err := json.MarshalIndent(&file, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Load reads the snapshot mapping from disk.
// Returns nil, nil if the file doesn't exist (no saved snapshot).
func (s *SnapshotStore) Load() (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	file := &SnapshotFile{}
	if err := json.Unmarshal(data, file); err != nil {
		return nil, err
	}

	return file.Snapshot, nil
}

// Restore loads the snapshot from disk and installs it into st. It fails if
// no snapshot file exists.
func (s *SnapshotStore) Restore(st *stty.Stty) error {
	snap, err := s.Load()
	if err != nil {
		return err
	}
	if snap == nil {
		return os.ErrNotExist
	}
	return st.Restore(snap)
}

// Clear removes the snapshot file.
func (s *SnapshotStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
