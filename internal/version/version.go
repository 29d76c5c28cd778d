// Package version holds the application version reported by the API.
package version

// Version is overridden at build time with
// -ldflags "-X github.com/ndewijer/Investment-Fund-Dashboard/internal/version.Version=..."
var Version = "1.0.0"
