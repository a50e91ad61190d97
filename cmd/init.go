package cmd

import (
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kopaki-io/kopaki/internal/codec"
	"github.com/kopaki-io/kopaki/internal/crypto"
	"github.com/kopaki-io/kopaki/internal/ui"
)

var initFromFile string

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Creates a new encrypted document",
	Long: `Creates a new encrypted TOML document at the given path, empty by default
or seeded from a plaintext TOML file with --from.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		Logger.Infof("Starting init command for %s", path)

		banner := figure.NewFigure("Kopaki", "", true)
		banner.Print()

		st := documentStore()
		if st.Exists(path) {
			finalMessage := color.RedString("✗") + " A file already exists at " + color.YellowString(path) + "\n" +
				color.CyanString("→") + " Use " + color.YellowString("kopaki set") + " or " + color.YellowString("kopaki merge") + " to change it"
			cmd.Print(ui.EnsureNewline(finalMessage))
			return nil
		}

		tree := codec.Tree{}
		if initFromFile != "" {
			Logger.Debugf("Seeding document from %s", initFromFile)
			text, err := os.ReadFile(initFromFile)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read seed file: %v", err)
			}
			tree, err = codec.Parse(string(text))
			if err != nil {
				cmd.Print(ui.EnsureNewline(failureMessage(err)))
				return nil
			}
		}

		passphrase, err := resolveNewPassphrase("Enter passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}
		defer crypto.Zero(passphrase)

		spinner, cleanup := startSpinner("Creating encrypted document...", verbose)
		defer cleanup()

		if err := st.Save(tree, passphrase, path); err != nil {
			Logger.Errorf("Failed to create document: %v", err)
			spinner.FinalMSG = failureMessage(err)
			return nil
		}

		Logger.Infof("Document created at %s", path)
		spinner.FinalMSG = color.GreenString("✓") + " Encrypted document created at " + color.YellowString(path)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initFromFile, "from", "", "seed the document from a plaintext TOML file")
}
