package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// StorageKey is the fixed namespaced key the cart persists under.
const StorageKey = "herbal_garden_cart"

// Store is the durable storage behind Persist/Restore. Load returns
// (nil, nil) when nothing has been stored yet.
type Store interface {
	Save(items []LineItem) error
	Load() ([]LineItem, error)
}

// FileStore keeps the serialized cart in a single JSON file under a
// directory, mirroring a browser's per-key local storage.
type FileStore struct {
	path string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, StorageKey+".json")}
}

func (s *FileStore) Save(items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	// Write-then-rename so a crash mid-write cannot corrupt the stored cart.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace cart file: %w", err)
	}
	return nil
}

func (s *FileStore) Load() ([]LineItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode stored cart: %w", err)
	}
	return items, nil
}

// MemoryStore is an in-process Store, used by tests and as a default when no
// durable location is configured.
type MemoryStore struct {
	items []LineItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(items []LineItem) error {
	s.items = append([]LineItem(nil), items...)
	return nil
}

func (s *MemoryStore) Load() ([]LineItem, error) {
	return append([]LineItem(nil), s.items...), nil
}
