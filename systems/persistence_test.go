package systems

import (
	"errors"
	"testing"
)

type failingStore struct{}

func (failingStore) LoadBool(string) (bool, bool, error) {
	return false, false, errors.New("disk on fire")
}

func (failingStore) SaveBool(string, bool) error {
	return errors.New("disk on fire")
}

func TestLoadPreferences(t *testing.T) {
	saved := NewMemoryStore()
	saved.SaveBool(KeyTutorialSeen, true)
	saved.SaveBool(KeyMusicEnabled, true)

	musicOnly := NewMemoryStore()
	musicOnly.SaveBool(KeyMusicEnabled, true)

	tests := []struct {
		name  string
		store Store
		want  Preferences
	}{
		{"nil store", nil, Preferences{}},
		{"empty store", NewMemoryStore(), Preferences{}},
		{"both saved", saved, Preferences{TutorialSeen: true, MusicEnabled: true}},
		{"music only", musicOnly, Preferences{MusicEnabled: true}},
		{"unreadable", failingStore{}, Preferences{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LoadPreferences(tt.store); got != tt.want {
				t.Errorf("LoadPreferences() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSavePreference(t *testing.T) {
	store := NewMemoryStore()
	SavePreference(store, KeyMusicEnabled, true)
	SavePreference(store, KeyMusicEnabled, false)

	v, ok, err := store.LoadBool(KeyMusicEnabled)
	if err != nil || !ok || v {
		t.Errorf("LoadBool() = %v, %v, %v; want false, true, nil", v, ok, err)
	}
	if store.Saves != 2 {
		t.Errorf("saves = %d, want 2", store.Saves)
	}

	// Failures are logged, not raised.
	SavePreference(failingStore{}, KeyMusicEnabled, true)
	SavePreference(nil, KeyMusicEnabled, true)
}
