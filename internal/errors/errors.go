package errors

import "errors"

// Document errors indicate issues locating or decoding a stored document.
var (
	// ErrNotFound indicates no encrypted document exists at the given path.
	ErrNotFound = errors.New("encrypted document not found")

	// ErrDocumentInvalid indicates the document text is not valid TOML, or a
	// value has no TOML representation.
	ErrDocumentInvalid = errors.New("document is not valid TOML")

	// ErrKeyNotFound indicates the requested key path does not exist in the
	// document.
	ErrKeyNotFound = errors.New("key not found in document")
)

// Envelope errors indicate issues with the on-disk container format.
var (
	// ErrUnsupportedVersion indicates the envelope was written by a newer or
	// unknown format version. Decryption is never attempted in this case.
	ErrUnsupportedVersion = errors.New("unsupported envelope format version")

	// ErrEnvelopeCorrupt indicates the envelope structure is truncated or
	// malformed and cannot be parsed.
	ErrEnvelopeCorrupt = errors.New("envelope structure is corrupt")
)

// Cryptographic errors indicate failures during encryption or decryption.
var (
	// ErrAuthenticationFailed indicates the authentication tag did not
	// verify. A wrong passphrase and a tampered file are deliberately
	// indistinguishable.
	ErrAuthenticationFailed = errors.New("authentication failed: wrong passphrase or corrupted document")
)

// Key path errors indicate issues navigating a document tree.
var (
	// ErrInvalidKeyPath indicates a key path descends through a value that
	// is not a table.
	ErrInvalidKeyPath = errors.New("key path traverses a non-table value")

	// ErrEmptyKeyPath indicates a key path with no segments was given.
	ErrEmptyKeyPath = errors.New("key path must contain at least one segment")
)
