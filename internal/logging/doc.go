// Package logger provides leveled logging for Kopaki CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags:
//
//   - --verbose: shows info messages
//   - --debug: shows all messages including debug details
//
// Warnings and errors are always shown.
//
// # Usage
//
// Commands create a logger in their PersistentPreRun:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Merging %d keys", count)
//
// The logger never receives passphrases or decrypted document content;
// call sites log paths, sizes, and error kinds only.
package logger
