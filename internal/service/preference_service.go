package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/repository"
)

// PreferenceService handles per-client display preferences.
type PreferenceService struct {
	prefRepo *repository.PreferenceRepository
	now      func() time.Time
}

// NewPreferenceService creates a new PreferenceService with the provided repository dependencies.
func NewPreferenceService(prefRepo *repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{
		prefRepo: prefRepo,
		now:      time.Now,
	}
}

// LoadTheme returns the raw stored theme value of a client and marks it as
// used, so a returning client keeps the theme however long ago it was set.
// Returns apperrors.ErrPreferenceNotFound when nothing is stored.
func (s *PreferenceService) LoadTheme(ctx context.Context, clientID string) (string, error) {
	pref, err := s.prefRepo.GetPreference(ctx, clientID, model.PreferenceKeyTheme)
	if err != nil {
		return "", err
	}
	if err := s.prefRepo.TouchPreference(ctx, clientID, model.PreferenceKeyTheme, s.now()); err != nil {
		log.Printf("failed to touch theme of %s: %v", clientID, err)
	}
	return pref.Value, nil
}

// SaveTheme persists the theme of a client.
func (s *PreferenceService) SaveTheme(ctx context.Context, clientID string, theme model.Theme) error {
	return s.prefRepo.SetPreference(ctx, model.Preference{
		ClientID:  clientID,
		Key:       model.PreferenceKeyTheme,
		Value:     string(theme),
		UpdatedAt: s.now(),
	})
}

// ThemeStore returns the theme store of one client for use by its dashboard controller.
func (s *PreferenceService) ThemeStore(clientID string) *ClientThemeStore {
	return &ClientThemeStore{service: s, clientID: clientID}
}

// PruneStale removes preferences neither read nor written within retention.
func (s *PreferenceService) PruneStale(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, fmt.Errorf("retention must be positive, got %s", retention)
	}
	return s.prefRepo.DeleteOlderThan(ctx, s.now().Add(-retention))
}

// ClientThemeStore binds a PreferenceService to one client.
type ClientThemeStore struct {
	service  *PreferenceService
	clientID string
}

// LoadTheme returns the client's stored theme value.
func (c *ClientThemeStore) LoadTheme(ctx context.Context) (string, error) {
	return c.service.LoadTheme(ctx, c.clientID)
}

// SaveTheme persists the client's theme.
func (c *ClientThemeStore) SaveTheme(ctx context.Context, theme model.Theme) error {
	return c.service.SaveTheme(ctx, c.clientID, theme)
}
