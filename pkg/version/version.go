// Package version exposes the build version of the carbontrack binary.
package version

// Version is the semantic version of this build. It is overridden at
// release time via -ldflags "-X github.com/tiro27cbs/carbontrack/pkg/version.Version=v1.2.3".
var Version = "dev" //nolint:gochecknoglobals // Set by the linker at build time

// GetVersion returns the version string for this build.
func GetVersion() string {
	return Version
}
