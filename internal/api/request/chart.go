package request

import (
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/validation"
)

// ChartOptions are the rendering options of a chart request.
type ChartOptions struct {
	Width int
	Theme model.Theme
}

// ParseChartOptions extracts chart options from query parameters.
// Both parameters are optional and fall back to the given defaults.
//
// Validation rules:
//   - width: container width in pixels, 1 to 4096
//   - theme: "light" or "dark" (case-insensitive)
//
// Every invalid parameter is reported in the returned *validation.Error.
func ParseChartOptions(widthParam, themeParam string, defaults ChartOptions) (ChartOptions, error) {
	opts := defaults
	var verr validation.Error

	if widthParam != "" {
		width, err := validation.ValidateChartWidth(widthParam)
		if err != nil {
			verr.Add("width", err.Error())
		}
		opts.Width = width
	}

	if themeParam != "" {
		theme, err := validation.ValidateTheme(themeParam)
		if err != nil {
			verr.Add("theme", err.Error())
		}
		opts.Theme = theme
	}

	if err := verr.Err(); err != nil {
		return ChartOptions{}, err
	}
	return opts, nil
}

