package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build version and time stamped into main
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

// currentVersion parses the build version. Development builds do not parse.
func currentVersion() (semver.Version, error) {
	return semver.ParseTolerant(version)
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the version",
	Args:        cobra.NoArgs,
	Annotations: skipConfigAnnotations,
	Run:         runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	if v, err := currentVersion(); err == nil {
		fmt.Fprintf(out, "eventorkit v%s (built %s)\n", v, buildTime)
		return
	}
	fmt.Fprintf(out, "eventorkit %s (development build, built %s)\n", version, buildTime)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
