package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the derived key length in bytes.
	KeySize = 32

	// SaltSize is the per-document KDF salt length in bytes.
	SaltSize = 32
)

// Profile is an argon2id cost configuration.
type Profile struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// Desktop is the default cost profile.
var Desktop = Profile{Time: 3, Memory: 256 * 1024, Threads: 4}

// Light bounds worst-case derivation cost for constrained environments.
var Light = Profile{Time: 2, Memory: 64 * 1024, Threads: 2}

// Params binds a cost profile to a per-document salt. A fresh salt is
// generated for every save; salts are never reused across documents or
// across saves of the same document.
type Params struct {
	Profile
	Salt []byte
}

// NewParams returns Params for the given profile with a fresh random salt.
func NewParams(p Profile) Params {
	salt := make([]byte, SaltSize)
	_, _ = rand.Read(salt)
	return Params{Profile: p, Salt: salt}
}

// DeriveKey derives a KeySize-byte key from the passphrase using argon2id.
// The caller owns the returned slice and should Zero it after use.
func DeriveKey(passphrase []byte, p Params) []byte {
	return argon2.IDKey(passphrase, p.Salt, p.Time, p.Memory, p.Threads, KeySize)
}
