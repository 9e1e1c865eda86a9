package commands

import (
	"runtime"
	"runtime/debug"

	"github.com/leapstack-labs/roman/internal/cli/output"
	"github.com/spf13/cobra"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// resolve fills fields left unset at link time from the embedded build info.
func (b BuildInfo) resolve() BuildInfo {
	b.GoVersion = runtime.Version()
	if b.Commit != "" && b.Commit != "unknown" {
		return b
	}
	b.Commit = "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				b.Commit = s.Value
			}
		}
	}
	return b
}

// NewVersionCommand creates the version command.
func NewVersionCommand(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display roman version and build information.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewCommandContextWithoutStore(cmd).Renderer
			info := build.resolve()

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(info)
			}
			r.Printf("roman v%s\n", info.Version)
			r.Println("Roman numeral converter and names service")
			r.Printf("commit %s, built %s, %s\n", info.Commit, info.BuildDate, info.GoVersion)
			return nil
		},
	}
}
