// Package crypto implements the AEAD engine for encrypted documents.
//
// Keys are derived from a passphrase with argon2id using a per-document
// random salt and a tunable cost profile. Content is encrypted with
// XChaCha20-Poly1305; the envelope header is bound in as associated data,
// so tampering with stored KDF parameters or the format version fails
// authentication.
//
// Passphrases and derived keys are held only for the duration of a single
// call. Callers Zero derived keys as soon as the seal or open completes.
package crypto
