package cmd

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kopaki-io/kopaki/internal/crypto"
)

var importCmd = &cobra.Command{
	Use:   "import [file] [input.json]",
	Short: "Creates an encrypted document from JSON",
	Long: `Parses a JSON object and saves it as an encrypted TOML document. Pass "-"
as the input to read JSON from stdin.

JSON null has no TOML representation and is rejected.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, input := args[0], args[1]
		Logger.Infof("Starting import command for %s", path)

		var jsonBytes []byte
		var err error
		if input == "-" {
			jsonBytes, err = io.ReadAll(cmd.InOrStdin())
		} else {
			jsonBytes, err = os.ReadFile(input)
		}
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read JSON input: %v", err)
		}

		passphrase, err := resolveNewPassphrase("Enter passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}
		defer crypto.Zero(passphrase)

		spinner, cleanup := startSpinner("Importing JSON into encrypted document...", verbose)
		defer cleanup()

		st := documentStore()
		if err := st.FromJSON(string(jsonBytes), passphrase, path); err != nil {
			Logger.Errorf("Failed to import: %v", err)
			spinner.FinalMSG = failureMessage(err)
			return nil
		}

		spinner.FinalMSG = color.GreenString("✓") + " Imported JSON into " + color.YellowString(path)
		return nil
	},
}
