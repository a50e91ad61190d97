package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"github.com/kopaki-io/kopaki/internal/configs"
	"github.com/kopaki-io/kopaki/internal/store"
	"github.com/kopaki-io/kopaki/internal/ui"
	"github.com/kopaki-io/kopaki/internal/utils"
)

var passphraseFile string

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines; the cleanup
// function calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// documentStore returns a Store configured from the user settings file.
func documentStore() store.Store {
	settings, err := configs.LoadSettings()
	if err != nil {
		Logger.Warnf("Falling back to default settings: %v", err)
	}
	return store.Store{KDF: settings.Profile()}
}

// resolvePassphrase obtains the passphrase without ever echoing it:
// --passphrase-file first, then the KOPAKI_PASSPHRASE environment variable,
// then an interactive no-echo prompt.
func resolvePassphrase(prompt string) ([]byte, error) {
	if passphraseFile != "" {
		b, err := os.ReadFile(passphraseFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read passphrase file: %w", err)
		}
		if i := bytes.IndexAny(b, "\r\n"); i >= 0 {
			b = b[:i]
		}
		return b, nil
	}
	if env := os.Getenv("KOPAKI_PASSPHRASE"); env != "" {
		return []byte(env), nil
	}
	if utils.IsTerminal() {
		return utils.ReadPassphrase(prompt)
	}
	// stdin is carrying data (e.g. piped JSON); prompt on the terminal.
	return utils.ReadPassphraseFromTTY(prompt)
}

// resolveNewPassphrase obtains a passphrase for init and rekey, asking for
// confirmation when the passphrase comes from an interactive prompt.
func resolveNewPassphrase(prompt string) ([]byte, error) {
	passphrase, err := resolvePassphrase(prompt)
	if err != nil {
		return nil, err
	}
	if passphraseFile != "" || os.Getenv("KOPAKI_PASSPHRASE") != "" {
		return passphrase, nil
	}

	confirm, err := resolvePassphrase("Confirm passphrase: ")
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(passphrase, confirm) {
		return nil, errors.New("passphrases do not match")
	}
	return passphrase, nil
}

// parseScalar interprets a CLI value argument the way TOML would: bool,
// then integer, then float, falling back to string.
func parseScalar(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// splitKeyPath splits a dotted key path like "server.tls.port" into segments.
func splitKeyPath(raw string) []string {
	return strings.Split(raw, ".")
}
