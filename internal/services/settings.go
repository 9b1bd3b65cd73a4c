package services

import "github.com/mdjobayerdream-BD/JioFFtopup/internal/models"

// Settings owns the site configuration singleton.
type Settings struct {
	store *Store
}

func NewSettings(store *Store) *Settings {
	return &Settings{store: store}
}

// Get returns the persisted settings, or the seeded defaults when nothing
// has been saved yet.
func (s *Settings) Get() models.AppSettings {
	return s.store.Settings()
}

// Set replaces the whole singleton; there is no partial merge.
func (s *Settings) Set(settings models.AppSettings) {
	s.store.Lock()
	defer s.store.Unlock()
	s.store.SaveSettings(settings)
}
