package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrFundNotFound indicates that a fund with the given ID is not in the catalog.
	ErrFundNotFound = errors.New("fund not found")

	// ErrPreferenceNotFound indicates that a client has no stored value for a preference key.
	ErrPreferenceNotFound = errors.New("preference not found")
)

// Validation errors represent malformed input.
var (
	// ErrInvalidFundID indicates that a fund ID is not a positive integer.
	ErrInvalidFundID = errors.New("fund ID must be a positive integer")

	// ErrInvalidTheme indicates that a theme value is neither light nor dark.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrInvalidChartWidth indicates that a requested chart container width is out of range.
	ErrInvalidChartWidth = errors.New("invalid chart width")

	// ErrInvalidClientID indicates that a session client ID is not a valid UUID.
	ErrInvalidClientID = errors.New("invalid client ID")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
var (
	ErrFailedToRetrieveFunds  = errors.New("failed to retrieve funds")
	ErrFailedToRetrieveFund   = errors.New("failed to retrieve fund")
	ErrFailedToRenderChart    = errors.New("failed to render chart")
	ErrFailedToLoadPreference = errors.New("failed to load preference")
	ErrFailedToSavePreference = errors.New("failed to save preference")
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
	ErrFailedToToggleTheme    = errors.New("failed to toggle theme")
	ErrSessionUnavailable     = errors.New("session unavailable")
)
