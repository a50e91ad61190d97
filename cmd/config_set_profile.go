package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kopaki-io/kopaki/internal/configs"
)

var configSetProfileCmd = &cobra.Command{
	Use:   "set-profile [desktop|light]",
	Short: "Sets the argon2id cost profile for new saves",
	Long: `Sets the KDF cost profile applied when documents are written. The light
profile bounds worst-case derivation time on constrained machines; existing
documents keep their recorded parameters until the next save.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := args[0]
		if profile != configs.ProfileDesktop && profile != configs.ProfileLight {
			return fmt.Errorf("unknown profile %q: expected %q or %q", profile, configs.ProfileDesktop, configs.ProfileLight)
		}

		settings, err := configs.LoadSettings()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load settings: %v", err)
		}
		settings.KDFProfile = profile
		if err := configs.SaveSettings(settings); err != nil {
			return Logger.ErrorfAndReturn("failed to save settings: %v", err)
		}

		cmd.Println(color.GreenString("✓") + " KDF profile set to " + color.CyanString(profile))
		return nil
	},
}
