package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run -- <command> [args...]",
	Short: "Run a program inside the console window",
	Long: "Starts the command with its stdout and stderr shown in the console and\n" +
		"every line typed (or read from --script) written to its stdin.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return startConsole(cmd.Context(), args)
	},
}
