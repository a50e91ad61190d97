package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	kerrors "github.com/kopaki-io/kopaki/internal/errors"
)

// ToJSON renders a tree as indented JSON: tables become objects, arrays
// become arrays, scalars map directly.
func ToJSON(tree Tree) (string, error) {
	b, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrDocumentInvalid, err)
	}
	return string(b), nil
}

// FromJSON parses a JSON object into a tree. Numbers are decoded through
// json.Number and turned back into int64 where they are integral, so TOML
// integers survive an export/import round trip. JSON null has no TOML
// representation and is rejected.
func FromJSON(s string) (Tree, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrDocumentInvalid, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON document", kerrors.ErrDocumentInvalid)
	}

	tree, err := fromJSONValue(raw)
	if err != nil {
		return nil, err
	}
	return tree.(map[string]any), nil
}

func fromJSONValue(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			converted, err := fromJSONValue(vv)
			if err != nil {
				return nil, err
			}
			out[k] = converted
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			converted, err := fromJSONValue(vv)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", kerrors.ErrDocumentInvalid, t.String())
		}
		return f, nil
	case nil:
		return nil, fmt.Errorf("%w: null has no TOML representation", kerrors.ErrDocumentInvalid)
	default:
		return v, nil
	}
}
