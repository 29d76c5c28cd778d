package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/apperrors"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
)

// Chart container limits accepted from clients.
const (
	MinChartWidth = 1
	MaxChartWidth = 4096
)

// ValidateFundID parses a fund id from a URL parameter.
// Fund ids are positive integers.
func ValidateFundID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidFundID, raw)
	}
	return id, nil
}

// ValidateTheme parses a theme name.
func ValidateTheme(raw string) (model.Theme, error) {
	theme, ok := model.ParseTheme(strings.ToLower(strings.TrimSpace(raw)))
	if !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidTheme, raw)
	}
	return theme, nil
}

// ValidateChartWidth parses a chart container width in pixels.
func ValidateChartWidth(raw string) (int, error) {
	width, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || width < MinChartWidth || width > MaxChartWidth {
		return 0, fmt.Errorf("%w: %q (must be %d-%d)", apperrors.ErrInvalidChartWidth, raw, MinChartWidth, MaxChartWidth)
	}
	return width, nil
}

// ValidateClientID checks that a session client id is a UUID.
func ValidateClientID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidClientID, id)
	}
	return nil
}
