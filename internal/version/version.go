// Package version records the application version stamped into builds.
package version

// Version is the semantic version of restcli. Overridable at build time via
// -ldflags "-X github.com/mkhalikov/restcli/internal/version.Version=...".
var Version = "0.1.0"
