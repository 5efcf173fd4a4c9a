package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const shortRevisionLen = 12

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Displays the inctrim module version, the Go version it was built with and,
when the binary was built from a checkout, the VCS revision it came from.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				cmd.Println("version: unknown")
				return
			}

			for _, line := range versionLines(info) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines renders build info. `go run` and test binaries report no
// module version, which is shown as (devel).
func versionLines(info *debug.BuildInfo) []string {
	version := info.Main.Version
	if version == "" {
		version = "(devel)"
	}

	lines := []string{fmt.Sprintf("inctrim version\t%s", version)}
	if info.Main.Path != "" {
		lines = append(lines, fmt.Sprintf("module\t\t%s", info.Main.Path))
	}

	lines = append(lines, fmt.Sprintf("go version\t%s", info.GoVersion))

	settings := make(map[string]string, len(info.Settings))
	for _, setting := range info.Settings {
		settings[setting.Key] = setting.Value
	}

	if revision := settings["vcs.revision"]; revision != "" {
		if len(revision) > shortRevisionLen {
			revision = revision[:shortRevisionLen]
		}

		if settings["vcs.modified"] == "true" {
			revision += "-dirty"
		}

		lines = append(lines, fmt.Sprintf("revision\t%s", revision))
	}

	if built := settings["vcs.time"]; built != "" {
		lines = append(lines, fmt.Sprintf("commit time\t%s", built))
	}

	return lines
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
