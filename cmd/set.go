package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kopaki-io/kopaki/internal/crypto"
)

var setCmd = &cobra.Command{
	Use:   "set [file] [key.path] [value]",
	Short: "Sets the value at a key path",
	Long: `Sets the value at a dotted key path, creating intermediate tables for any
missing segment. The value is interpreted as a TOML scalar: true/false,
integer, float, or string.

A path that descends through an existing non-table value is rejected; a
scalar is never implicitly turned into a table.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, keyPath, value := args[0], splitKeyPath(args[1]), parseScalar(args[2])
		Logger.Infof("Starting set command for %s", path)

		passphrase, err := resolvePassphrase("Enter passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}
		defer crypto.Zero(passphrase)

		spinner, cleanup := startSpinner("Updating encrypted document...", verbose)
		defer cleanup()

		st := documentStore()
		if err := st.UpdateKey(path, passphrase, keyPath, value); err != nil {
			Logger.Errorf("Failed to update key: %v", err)
			spinner.FinalMSG = failureMessage(err)
			return nil
		}

		spinner.FinalMSG = color.GreenString("✓") + " Set " + color.CyanString(args[1]) + " in " + color.YellowString(path)
		return nil
	},
}
