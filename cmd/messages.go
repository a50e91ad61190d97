package cmd

import (
	"errors"

	"github.com/fatih/color"

	kerrors "github.com/kopaki-io/kopaki/internal/errors"
)

// failureMessage renders a document operation error for the terminal. Only
// the error kind and remediation hints are shown; messages never carry
// plaintext or passphrase material.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrNotFound):
		return color.RedString("✗") + " No encrypted document found\n" +
			color.CyanString("→") + " Run " + color.YellowString("kopaki init") + " to create one"
	case errors.Is(err, kerrors.ErrAuthenticationFailed):
		return color.RedString("✗") + " Authentication failed: wrong passphrase or the file was modified"
	case errors.Is(err, kerrors.ErrUnsupportedVersion):
		return color.RedString("✗") + " This document was written by a newer version of Kopaki\n" +
			color.CyanString("→") + " Upgrade " + color.YellowString("kopaki") + " to read it"
	case errors.Is(err, kerrors.ErrEnvelopeCorrupt):
		return color.RedString("✗") + " The file is not a Kopaki document or is corrupted"
	case errors.Is(err, kerrors.ErrInvalidKeyPath), errors.Is(err, kerrors.ErrEmptyKeyPath):
		return color.RedString("✗") + " Invalid key path\n" +
			color.RedString("Error: ") + err.Error()
	case errors.Is(err, kerrors.ErrKeyNotFound):
		return color.RedString("✗") + " Key not found in the document"
	case errors.Is(err, kerrors.ErrDocumentInvalid):
		return color.RedString("✗") + " Content is not valid TOML\n" +
			color.RedString("Error: ") + err.Error()
	default:
		return color.RedString("✗") + " Operation failed\n" +
			color.RedString("Error: ") + err.Error()
	}
}
