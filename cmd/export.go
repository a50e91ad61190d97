package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kopaki-io/kopaki/internal/crypto"
	"github.com/kopaki-io/kopaki/internal/ui"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Decrypts a document and renders it as JSON",
	Long: `Decrypts a document and renders it as JSON: tables become objects, arrays
become arrays, scalars map directly. Prints to stdout unless --output is
given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		Logger.Infof("Starting export command for %s", path)

		passphrase, err := resolvePassphrase("Enter passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}
		defer crypto.Zero(passphrase)

		st := documentStore()
		jsonStr, err := st.ToJSON(path, passphrase)
		if err != nil {
			Logger.Errorf("Failed to export document: %v", err)
			cmd.Print(ui.EnsureNewline(failureMessage(err)))
			return nil
		}

		if exportOutput == "" {
			cmd.Println(jsonStr)
			return nil
		}
		// The exported JSON is plaintext; keep it owner-readable only.
		if err := os.WriteFile(exportOutput, []byte(jsonStr+"\n"), 0600); err != nil {
			return Logger.ErrorfAndReturn("failed to write %s: %v", exportOutput, err)
		}
		cmd.Print(ui.EnsureNewline(color.GreenString("✓") + " Exported " + color.YellowString(path) + " to " + color.YellowString(exportOutput)))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write JSON to a file instead of stdout")
}
