package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kopaki-io/kopaki/internal/codec"
	"github.com/kopaki-io/kopaki/internal/crypto"
	"github.com/kopaki-io/kopaki/internal/ui"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [file] [patch.toml]",
	Short: "Merges a plaintext TOML patch into a document",
	Long: `Merges the keys of a plaintext TOML patch file into an encrypted document.

Where both sides hold tables at a key the merge recurses; otherwise the
patch value wins. Keys absent from the patch are preserved, and arrays
replace wholesale. A failed merge leaves the document untouched.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, patchPath := args[0], args[1]
		Logger.Infof("Starting merge command for %s", path)

		text, err := os.ReadFile(patchPath)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read patch file: %v", err)
		}
		patch, err := codec.Parse(string(text))
		if err != nil {
			Logger.Errorf("Patch file is not valid TOML: %v", err)
			cmd.Print(ui.EnsureNewline(failureMessage(err)))
			return nil
		}
		Logger.Debugf("Patch contains %d top-level keys", len(patch))

		passphrase, err := resolvePassphrase("Enter passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}
		defer crypto.Zero(passphrase)

		spinner, cleanup := startSpinner("Merging into encrypted document...", verbose)
		defer cleanup()

		st := documentStore()
		if err := st.Update(path, passphrase, patch); err != nil {
			Logger.Errorf("Failed to merge: %v", err)
			spinner.FinalMSG = failureMessage(err)
			return nil
		}

		spinner.FinalMSG = color.GreenString("✓") + " Merged " + color.YellowString(patchPath) + " into " + color.YellowString(path)
		return nil
	},
}
