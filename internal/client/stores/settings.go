package stores

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/justdoit/internal/client/models"
	"github.com/dmitrijs2005/justdoit/internal/client/remote"
	"github.com/dmitrijs2005/justdoit/internal/common"
)

// SettingsStore caches the account's single settings record. The record is
// created lazily on first fetch, so the UI always has something to edit.
// Mutations here are non-optimistic: the record is tiny and the save dialog
// waits for confirmation anyway.
type SettingsStore struct {
	base
	client   remote.Client
	settings *models.Settings
}

func NewSettingsStore(client remote.Client, sessions SessionSource, notifier Notifier) *SettingsStore {
	return &SettingsStore{base: newBase(sessions, notifier), client: client}
}

// Settings returns a copy of the cached record, or nil before the first
// fetch.
func (s *SettingsStore) Settings() *models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		return nil
	}
	cp := *s.settings
	return &cp
}

// Fetch loads the account's settings record, creating an empty one when none
// exists yet.
func (s *SettingsStore) Fetch(ctx context.Context) (err error) {
	s.begin()
	defer func() { s.finish(err, "", "could not load settings") }()

	acc, err := s.requireAccount()
	if err != nil {
		return err
	}

	settings, err := s.client.GetSettings(ctx, acc.ID)
	if errors.Is(err, common.ErrNotFound) {
		settings, err = s.client.InsertSettings(ctx, acc.ID, models.SettingsPatch{})
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	return nil
}

// Save updates the record when one exists, and inserts it otherwise.
func (s *SettingsStore) Save(ctx context.Context, patch models.SettingsPatch) (err error) {
	s.begin()
	defer func() { s.finish(err, "settings saved", "could not save settings") }()

	acc, err := s.requireAccount()
	if err != nil {
		return err
	}

	existing, err := s.client.GetSettings(ctx, acc.ID)

	var saved *models.Settings
	switch {
	case err == nil && existing != nil:
		saved, err = s.client.UpdateSettings(ctx, acc.ID, patch)
	case errors.Is(err, common.ErrNotFound):
		saved, err = s.client.InsertSettings(ctx, acc.ID, patch)
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.settings = saved
	s.mu.Unlock()
	return nil
}
