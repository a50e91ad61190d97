package cmd

import (
	"fmt"
	"os"

	logger "github.com/kopaki-io/kopaki/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	rootCmd = &cobra.Command{
		Use:   "kopaki",
		Short: "Kopaki - An encrypted TOML configuration store.",
		Long: `Kopaki keeps TOML configuration documents encrypted at rest.

Documents are sealed with XChaCha20-Poly1305 under a key derived from your
passphrase with argon2id. Every write goes to a temporary file and renames
over the target, so a document on disk is always either its old or its new
complete content.

Usage:
  kopaki <command> [flags]

Run 'kopaki help <command>' for more details on a specific command.
`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing kopaki with verbose=%t, debug=%t", verbose, debug)
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				if f.Changed {
					Logger.Debugf("Flag --%s=%s", f.Name, f.Value.String())
				}
			})
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&passphraseFile, "passphrase-file", "", "read the passphrase from the first line of a file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(rekeyCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
