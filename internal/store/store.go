package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"

	"github.com/kopaki-io/kopaki/internal/codec"
	"github.com/kopaki-io/kopaki/internal/crypto"
	"github.com/kopaki-io/kopaki/internal/envelope"
	kerrors "github.com/kopaki-io/kopaki/internal/errors"
)

// Store performs operations on encrypted documents. It holds no secrets and
// no open file handles: every method takes the path and passphrase it needs,
// and the passphrase is used only for the duration of that call.
type Store struct {
	// KDF is the argon2id cost profile used for new saves. The zero value
	// selects crypto.Desktop. Loads always honor the parameters stored in
	// the file being read.
	KDF crypto.Profile
}

func (s Store) profile() crypto.Profile {
	if s.KDF == (crypto.Profile{}) {
		return crypto.Desktop
	}
	return s.KDF
}

// Save serializes the tree, encrypts it under a key derived from the
// passphrase with a fresh salt and nonce, and atomically replaces the file
// at path. The file is always either the old complete envelope or the new
// one, never a partial write.
func (s Store) Save(tree codec.Tree, passphrase []byte, path string) error {
	text, err := codec.Serialize(tree)
	if err != nil {
		return err
	}

	params := crypto.NewParams(s.profile())
	key := crypto.DeriveKey(passphrase, params)
	defer crypto.Zero(key)

	env := envelope.New(params)
	nonce, ciphertext, tag, err := crypto.Seal(key, []byte(text), env.AssociatedData())
	if err != nil {
		return err
	}
	env.Nonce, env.Ciphertext, env.Tag = nonce, ciphertext, tag

	blob, err := env.Marshal()
	if err != nil {
		return err
	}

	if err := atomic.WriteFile(path, bytes.NewReader(blob)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Load reads the envelope at path, authenticates and decrypts it, and
// parses the plaintext into a tree. It fails with ErrNotFound when the path
// does not exist, ErrUnsupportedVersion for unknown envelope versions,
// ErrAuthenticationFailed on a wrong passphrase or a tampered file, and
// ErrDocumentInvalid when the decrypted text is not valid TOML.
func (s Store) Load(passphrase []byte, path string) (codec.Tree, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrNotFound, path)
		}
		return nil, err
	}

	env, err := envelope.Unmarshal(blob)
	if err != nil {
		return nil, err
	}

	key := crypto.DeriveKey(passphrase, env.KDF)
	defer crypto.Zero(key)

	plaintext, err := crypto.Open(key, env.Nonce, env.Ciphertext, env.Tag, env.AssociatedData())
	if err != nil {
		return nil, err
	}

	return codec.Parse(string(plaintext))
}

// Update loads the existing document, recursively merges patch into it, and
// saves the result with a fresh salt and nonce. Where both sides hold tables
// at a key the merge recurses; otherwise the patch value wins. An empty
// patch table over an existing table is a no-op, not a deletion. Arrays
// replace wholesale. A failed update leaves the file untouched.
func (s Store) Update(path string, passphrase []byte, patch codec.Tree) error {
	tree, err := s.Load(passphrase, path)
	if err != nil {
		return err
	}
	merge(tree, patch)
	return s.Save(tree, passphrase, path)
}

// UpdateKey sets the value at keyPath, creating intermediate tables for any
// missing segment. It fails with ErrInvalidKeyPath when an intermediate
// segment already holds a non-table value: a scalar is never implicitly
// turned into a table.
func (s Store) UpdateKey(path string, passphrase []byte, keyPath []string, value any) error {
	tree, err := s.Load(passphrase, path)
	if err != nil {
		return err
	}
	if err := setPath(tree, keyPath, value); err != nil {
		return err
	}
	return s.Save(tree, passphrase, path)
}

// Get returns the value at keyPath in the document, or ErrKeyNotFound.
func (s Store) Get(passphrase []byte, path string, keyPath []string) (any, error) {
	tree, err := s.Load(passphrase, path)
	if err != nil {
		return nil, err
	}
	return getPath(tree, keyPath)
}

// ToJSON loads the document and renders it as indented JSON.
func (s Store) ToJSON(path string, passphrase []byte) (string, error) {
	tree, err := s.Load(passphrase, path)
	if err != nil {
		return "", err
	}
	return codec.ToJSON(tree)
}

// FromJSON parses a JSON object and saves it as an encrypted document at
// path, through the same atomic write as Save.
func (s Store) FromJSON(jsonStr string, passphrase []byte, path string) error {
	tree, err := codec.FromJSON(jsonStr)
	if err != nil {
		return err
	}
	return s.Save(tree, passphrase, path)
}

// Rekey re-encrypts the document under a new passphrase. The envelope is
// rebuilt from scratch with a fresh salt and nonce and atomically replaces
// the old file.
func (s Store) Rekey(path string, oldPassphrase, newPassphrase []byte) error {
	tree, err := s.Load(oldPassphrase, path)
	if err != nil {
		return err
	}
	return s.Save(tree, newPassphrase, path)
}

// Exists reports whether a file is present at path. It does not validate
// the envelope.
func (s Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
