package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Kopaki user settings",
	Long: `Manages the user settings file (kopaki/settings.toml under the platform
config directory). Settings affect only how new documents are written;
reading always honors the parameters recorded in the file.`,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetProfileCmd)
}
