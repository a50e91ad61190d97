// Package errors provides typed error values for the Kopaki application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Document errors: locating or decoding a stored document
//     (ErrNotFound, ErrDocumentInvalid, ErrKeyNotFound)
//   - Envelope errors: on-disk container format issues
//     (ErrUnsupportedVersion, ErrEnvelopeCorrupt)
//   - Crypto errors: tag verification failures (ErrAuthenticationFailed)
//   - Key path errors: tree navigation issues (ErrInvalidKeyPath)
//
// # Usage
//
// Return errors from internal packages, wrapping with context where useful:
//
//	return fmt.Errorf("%w: %s", errors.ErrNotFound, path)
//
// Handle errors in the CLI layer:
//
//	tree, err := st.Load(passphrase, path)
//	if errors.Is(err, kerrors.ErrAuthenticationFailed) {
//	    // Show user-friendly message
//	}
//
// Error messages never contain plaintext or passphrase material; they carry
// the error kind and, where relevant, the file path.
package errors
