package versioning

// Embedded by --ldflags on build time.
// Versioning should follow the SemVer guidelines
// https://semver.org/
var (
	// Version is the main version at the moment
	Version string

	// Branch is the git branch the binary was built from
	Branch string

	// Commit is the git commit the binary was built on
	Commit string

	// BuildTime is the timestamp of the build
	BuildTime string
)
