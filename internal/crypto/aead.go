package crypto

import (
	"crypto/rand"

	kerrors "github.com/kopaki-io/kopaki/internal/errors"
	xchacha "golang.org/x/crypto/chacha20poly1305"
)

const (
	// NonceSize is the XChaCha20-Poly1305 nonce length in bytes.
	NonceSize = xchacha.NonceSizeX

	// TagSize is the Poly1305 authentication tag length in bytes.
	TagSize = xchacha.Overhead
)

// Seal encrypts plaintext under key with XChaCha20-Poly1305, binding aad
// into the authentication tag. A fresh random nonce is generated on every
// call; nonce reuse under one key breaks the cipher, so callers cannot
// supply their own.
func Seal(key, plaintext, aad []byte) (nonce, ciphertext, tag []byte, err error) {
	aead, err := xchacha.NewX(key)
	if err != nil {
		return nil, nil, nil, err
	}
	nonce = make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, nil, err
	}
	sealed := aead.Seal(nil, nonce, plaintext, aad)
	split := len(sealed) - TagSize
	return nonce, sealed[:split], sealed[split:], nil
}

// Open verifies the tag over ciphertext and aad, then decrypts. The tag is
// checked before any plaintext is produced; on failure no partial data is
// returned, only ErrAuthenticationFailed.
func Open(key, nonce, ciphertext, tag, aad []byte) ([]byte, error) {
	aead, err := xchacha.NewX(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != NonceSize || len(tag) != TagSize {
		return nil, kerrors.ErrAuthenticationFailed
	}
	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)
	plaintext, err := aead.Open(nil, nonce, sealed, aad)
	if err != nil {
		return nil, kerrors.ErrAuthenticationFailed
	}
	return plaintext, nil
}
