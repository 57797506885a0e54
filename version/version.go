package version

import (
	"fmt"
	"strings"
)

var (
	// GitCommit is the git commit that was compiled, filled by the
	// compiler.
	GitCommit   string
	GitDescribe string

	// Version is the main version number that is being run at the moment.
	//
	// Version must conform to the format expected by
	// github.com/hashicorp/go-version for tests to work.
	Version = "0.1.0"

	// VersionPrerelease is a pre-release marker for the version. If this is
	// "" (empty string) then it means that it is a final release. Otherwise,
	// this is a pre-release such as "dev" (in development), "beta", "rc1",
	// etc.
	VersionPrerelease = "dev"

	// VersionMetadata is metadata further describing the build type.
	VersionMetadata = ""
)

// GetHumanVersion composes the parts of the version in a way that's suitable
// for displaying to humans.
func GetHumanVersion() string {
	version := Version
	if GitDescribe != "" {
		version = GitDescribe
	}

	release := VersionPrerelease
	if GitDescribe == "" && release == "" {
		release = "dev"
	}

	if release != "" {
		if !strings.HasSuffix(version, "-"+release) {
			// if we tagged a prerelease version then the release is in the
			// version already.
			version += fmt.Sprintf("-%s", release)
		}
		if GitCommit != "" {
			version += fmt.Sprintf(" (%s)", GitCommit)
		}
	} else if VersionMetadata != "" {
		version += fmt.Sprintf("+%s", VersionMetadata)
	}

	// Strip off any single quotes added by the git information.
	version = strings.ReplaceAll(version, "'", "")

	// Add the "v" prefix if missing.
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}

	return version
}
