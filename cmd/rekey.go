package cmd

import (
	"bytes"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kopaki-io/kopaki/internal/crypto"
	"github.com/kopaki-io/kopaki/internal/utils"
)

var rekeyCmd = &cobra.Command{
	Use:   "rekey [file]",
	Short: "Re-encrypts a document under a new passphrase",
	Long: `Re-encrypts a document under a new passphrase. The envelope is rebuilt
with a fresh salt and nonce and atomically replaces the old file; a failure
at any point leaves the original document readable with the old passphrase.

The old passphrase is resolved as usual (--passphrase-file, the
KOPAKI_PASSPHRASE environment variable, or a prompt); the new passphrase is
always prompted for interactively.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		Logger.Infof("Starting rekey command for %s", path)

		oldPassphrase, err := resolvePassphrase("Enter current passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}
		defer crypto.Zero(oldPassphrase)

		newPassphrase, err := utils.ReadPassphrase("Enter new passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read new passphrase: %v", err)
		}
		defer crypto.Zero(newPassphrase)

		confirm, err := utils.ReadPassphrase("Confirm new passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read confirmation: %v", err)
		}
		defer crypto.Zero(confirm)

		if !bytes.Equal(newPassphrase, confirm) {
			return Logger.ErrorfAndReturn("passphrases do not match")
		}

		spinner, cleanup := startSpinner("Re-encrypting document...", verbose)
		defer cleanup()

		st := documentStore()
		if err := st.Rekey(path, oldPassphrase, newPassphrase); err != nil {
			Logger.Errorf("Failed to rekey: %v", err)
			spinner.FinalMSG = failureMessage(err)
			return nil
		}

		spinner.FinalMSG = color.GreenString("✓") + " Document re-encrypted with fresh salt and nonce"
		return nil
	},
}
