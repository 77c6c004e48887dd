// Package version provides information about the build version of the service.
package version

// Service is the name reported by meta endpoints and the CLI
const Service = "namejar-api"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'namejar/internal/core/version.version=v0.0.1'
	// -X 'namejar/internal/core/version.commit=abcd' -X 'namejar/internal/core/version.date=2025-09-02'"
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// String renders a one-line version banner
func String() string {
	i := Info()
	return i.Service + " " + i.Version + " (" + i.Commit + ", " + i.Date + ")"
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
