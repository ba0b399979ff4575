package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gconsole/internal/config"
	"gconsole/internal/settings"
)

func init() {
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit font and colors in an interactive form",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.SettingsPath()
		s, err := settings.Run(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ saved %s\n", path)
		fmt.Fprint(cmd.OutOrStdout(), config.Format(s))
		return nil
	},
}
