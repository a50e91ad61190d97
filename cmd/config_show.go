package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kopaki-io/kopaki/internal/configs"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the current user settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := configs.LoadSettings()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load settings: %v", err)
		}
		path, err := configs.SettingsPath()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to locate settings: %v", err)
		}

		profile := settings.Profile()
		cmd.Println("Settings file: " + color.YellowString(path))
		cmd.Println("KDF profile:   " + color.CyanString(settings.KDFProfile))
		cmd.Printf("  argon2id time=%d memory=%dKiB threads=%d\n", profile.Time, profile.Memory, profile.Threads)
		return nil
	},
}
