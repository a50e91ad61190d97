// Package envelope defines the binary on-disk container for encrypted
// documents.
//
// # Layout (version 1)
//
//	magic       4 bytes  "KPKE"
//	version     1 byte
//	algorithm   1 byte   (1 = argon2id)
//	kdf time    4 bytes  big endian
//	kdf memory  4 bytes  big endian (KiB)
//	kdf threads 1 byte
//	salt        2-byte length prefix + bytes
//	nonce       2-byte length prefix + bytes
//	ciphertext  4-byte length prefix + bytes
//	tag         2-byte length prefix + bytes
//
// Everything up to and including the salt doubles as the AEAD associated
// data, so the authentication tag covers the format version and KDF
// parameters as well as the ciphertext.
//
// The version byte is the first thing checked when reading a file back;
// envelopes written by an unknown version are rejected without attempting
// decryption.
package envelope
