package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kopaki-io/kopaki/internal/codec"
	"github.com/kopaki-io/kopaki/internal/crypto"
	"github.com/kopaki-io/kopaki/internal/ui"
)

var getCmd = &cobra.Command{
	Use:   "get [file] [key.path]",
	Short: "Prints the value at a key path",
	Long: `Prints the value stored at a dotted key path, e.g.

  kopaki get app.toml database.host

Tables are printed as TOML; scalars and arrays print their value directly.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, keyPath := args[0], splitKeyPath(args[1])
		Logger.Infof("Starting get command for %s", path)

		passphrase, err := resolvePassphrase("Enter passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}
		defer crypto.Zero(passphrase)

		st := documentStore()
		value, err := st.Get(passphrase, path, keyPath)
		if err != nil {
			Logger.Errorf("Failed to read key: %v", err)
			cmd.Print(ui.EnsureNewline(failureMessage(err)))
			return nil
		}

		if table, ok := value.(map[string]any); ok {
			text, err := codec.Serialize(table)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to render value: %v", err)
			}
			cmd.Print(text)
			return nil
		}
		cmd.Printf("%v\n", value)
		return nil
	},
}
