package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kopaki-io/kopaki/internal/codec"
	"github.com/kopaki-io/kopaki/internal/crypto"
	"github.com/kopaki-io/kopaki/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Decrypts a document and prints it as TOML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		Logger.Infof("Starting show command for %s", path)

		passphrase, err := resolvePassphrase("Enter passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}
		defer crypto.Zero(passphrase)

		st := documentStore()
		tree, err := st.Load(passphrase, path)
		if err != nil {
			Logger.Errorf("Failed to load document: %v", err)
			cmd.Print(ui.EnsureNewline(failureMessage(err)))
			return nil
		}

		text, err := codec.Serialize(tree)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to render document: %v", err)
		}
		cmd.Print(text)
		return nil
	},
}
