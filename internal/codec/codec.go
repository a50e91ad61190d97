package codec

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	kerrors "github.com/kopaki-io/kopaki/internal/errors"
)

// Tree is the in-memory form of a document: tables are map[string]any,
// arrays are []any, leaves are TOML scalar types. Trees are built by
// construction only, so they are always acyclic.
type Tree = map[string]any

// Parse converts TOML text into a tree. Syntax errors are reported as
// ErrDocumentInvalid.
func Parse(text string) (Tree, error) {
	tree := Tree{}
	if _, err := toml.Decode(text, &tree); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrDocumentInvalid, err)
	}
	return tree, nil
}

// Serialize converts a tree back into TOML text. Output is deterministic
// (canonical key order, stable scalar formatting), so repeated
// Serialize(Parse(x)) converges. Values with no TOML representation are
// reported as ErrDocumentInvalid.
func Serialize(tree Tree) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tree); err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrDocumentInvalid, err)
	}
	return buf.String(), nil
}
