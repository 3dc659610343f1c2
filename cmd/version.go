package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const develVersion = "(devel)"

// buildVersion reports the module version and the Go toolchain that built it.
func buildVersion() (version, goVersion string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return develVersion, "unknown"
	}

	version = info.Main.Version
	if version == "" {
		version = develVersion
	}

	return version, info.GoVersion
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the meshtrace build version, the Go version used to build it and the config schema version it reads.",
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := buildVersion()

			cmd.Println("meshtrace\t", version)
			cmd.Println("go\t\t", goVersion)
			cmd.Println("config schema\t", currentConfigVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
