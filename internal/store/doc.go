// Package store orchestrates encrypted document operations: it composes the
// codec adapter, the AEAD engine, and the envelope format into load, save,
// merge, and key-path update operations over a single file.
//
// # Durability
//
// Every mutation is copy-then-atomic-replace: the new envelope is written to
// a temporary file in the same directory and renamed over the target. A
// crash or error at any point before the rename leaves the previous file
// byte-for-byte intact; after the rename the new content is fully present.
//
// # Concurrency
//
// The store provides atomicity of a single write, not mutual exclusion
// between writers. Concurrent updates to the same path from independent
// processes race: the last atomic rename wins and no cross-process merge is
// attempted. Callers needing serialized updates must hold an external lock.
//
// # Secrets
//
// Passphrases are accepted per call and never retained. Derived keys are
// zeroed as soon as the enclosing operation completes. Error messages carry
// the error kind and path, never plaintext or passphrase material.
package store
