// Package codec converts between TOML text and the in-memory document tree.
//
// The adapter is pure: no I/O, no state. Parse and Serialize delegate to
// BurntSushi/toml; the encoder writes keys in canonical sorted order, so
// serialization is deterministic for a given tree.
//
// The package also provides the lossless structural conversion to and from
// JSON used by export and import.
package codec
