// Package version derives the build identity reported by the health endpoint
// and startup logs.
package version

import "runtime/debug"

const app = "relayforge"

// commitOverride is injected via
// -ldflags "-X .../pkg/version.commitOverride=<sha>" for container builds
// where .git is stripped.
var commitOverride string

var commit = resolveCommit()

// resolveCommit prefers the ldflags override, then the module's embedded VCS
// info, and falls back to "dev" (`go test`, non-git builds).
func resolveCommit() string {
	if commitOverride != "" {
		return short(commitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "dev"
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "relayforge/<commit>", e.g. "relayforge/a3f8c2d1" or
// "relayforge/dev".
func Full() string {
	return app + "/" + commit
}
