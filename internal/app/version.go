package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime can be set with -ldflags "-X ...". Commit and
// BuildTime fall back to the VCS stamp Go embeds in module builds.
var (
	Version   = "1.0.0"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion returns "<version> (commit: <rev>, built: <time>)" for startup logs.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		rev, at := vcsStamp()
		if commit == "" {
			commit = rev
		}
		if built == "" {
			built = at
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, orUnknown(commit), orUnknown(built))
}

func vcsStamp() (revision, at string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			at = s.Value
		}
	}
	return revision, at
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
