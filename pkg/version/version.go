package version

import "runtime/debug"

var (
	// Version is the module version of the running binary. It may be set at
	// build time with -ldflags "-X".
	Version = "0.0.0"

	// Revision is the VCS revision of the running binary, or "unknown".
	Revision = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if v := info.Main.Version; v != "" && v != "(devel)" && Version == "0.0.0" {
		Version = v
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && Revision == "unknown" {
			Revision = s.Value
		}
	}
}
