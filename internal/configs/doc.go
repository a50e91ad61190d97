// Package configs manages user configuration for Kopaki.
//
// Settings are stored in TOML format at the platform config directory
// (~/.config/kopaki/settings.toml on Linux). The only setting today is the
// argon2id cost profile applied when writing documents; reading a document
// always uses the parameters recorded in its envelope, so machines with
// different profiles interoperate freely.
package configs
