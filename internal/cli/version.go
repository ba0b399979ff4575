package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	appver "gconsole/internal/version"
)

var versionShort bool

func init() {
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print only the version")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gconsole version",
	Long: "Prints the version stamped at build time with\n" +
		"  -ldflags \"-X gconsole/internal/version.AppVersion=<version>\"\n" +
		"(\"dev\" for unstamped builds) and the Go toolchain and platform.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), appver.AppVersion)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "gconsole %s (%s %s/%s)\n", appver.AppVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}
