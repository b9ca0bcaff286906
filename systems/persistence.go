package systems

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata"
)

// Preference keys.
const (
	KeyTutorialSeen = "tutorial_seen"
	KeyMusicEnabled = "music_enabled"
)

// Store is the key-value store behind the two persisted preferences.
type Store interface {
	LoadBool(key string) (value, ok bool, err error)
	SaveBool(key string, value bool) error
}

// GDataStore keeps preferences in the platform's app data location.
type GDataStore struct {
	m *gdata.Manager
}

func NewGDataStore(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences store: %w", err)
	}
	return &GDataStore{m: m}, nil
}

func (s *GDataStore) LoadBool(key string) (bool, bool, error) {
	data, err := s.m.LoadItem(key)
	if err != nil {
		return false, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if data == nil {
		return false, false, nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return false, false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, true, nil
}

func (s *GDataStore) SaveBool(key string, value bool) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := s.m.SaveItem(key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// MemoryStore keeps preferences for the life of the process.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]bool
	Saves  int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]bool)}
}

func (s *MemoryStore) LoadBool(key string) (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) SaveBool(key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.Saves++
	return nil
}

// Preferences are the persisted booleans read at session start.
type Preferences struct {
	TutorialSeen bool
	MusicEnabled bool
}

// LoadPreferences reads both preferences. Missing or unreadable values
// fall back to false.
func LoadPreferences(store Store) Preferences {
	var p Preferences
	if store == nil {
		return p
	}
	if v, ok, err := store.LoadBool(KeyTutorialSeen); err != nil {
		log.Printf("Warning: Could not load %s: %v", KeyTutorialSeen, err)
	} else if ok {
		p.TutorialSeen = v
	}
	if v, ok, err := store.LoadBool(KeyMusicEnabled); err != nil {
		log.Printf("Warning: Could not load %s: %v", KeyMusicEnabled, err)
	} else if ok {
		p.MusicEnabled = v
	}
	return p
}

// SavePreference writes one preference, logging a failure.
func SavePreference(store Store, key string, value bool) {
	if store == nil {
		return
	}
	if err := store.SaveBool(key, value); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
	}
}
