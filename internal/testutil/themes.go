package testutil

import (
	"context"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/apperrors"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
)

// MemoryThemeStore is an in-memory theme store for controller tests.
//
// Example usage:
//
//	store := testutil.NewMemoryThemeStore().WithValue("dark")
//	controller := dashboard.NewController(funds, store, doc, opts)
type MemoryThemeStore struct {
	// Value is the persisted theme; empty means nothing stored.
	Value string
	// LoadErr is returned from LoadTheme when set.
	LoadErr error
	// SaveErr is returned from SaveTheme when set.
	SaveErr error
	// Saves counts successful SaveTheme calls.
	Saves int
}

// NewMemoryThemeStore creates an empty store.
func NewMemoryThemeStore() *MemoryThemeStore {
	return &MemoryThemeStore{}
}

// WithValue sets the stored theme value.
func (s *MemoryThemeStore) WithValue(value string) *MemoryThemeStore {
	s.Value = value
	return s
}

// WithLoadError makes LoadTheme fail.
func (s *MemoryThemeStore) WithLoadError(err error) *MemoryThemeStore {
	s.LoadErr = err
	return s
}

// WithSaveError makes SaveTheme fail.
func (s *MemoryThemeStore) WithSaveError(err error) *MemoryThemeStore {
	s.SaveErr = err
	return s
}

// LoadTheme returns the stored value or apperrors.ErrPreferenceNotFound.
func (s *MemoryThemeStore) LoadTheme(_ context.Context) (string, error) {
	if s.LoadErr != nil {
		return "", s.LoadErr
	}
	if s.Value == "" {
		return "", apperrors.ErrPreferenceNotFound
	}
	return s.Value, nil
}

// SaveTheme stores the theme.
func (s *MemoryThemeStore) SaveTheme(_ context.Context, theme model.Theme) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Value = string(theme)
	s.Saves++
	return nil
}
