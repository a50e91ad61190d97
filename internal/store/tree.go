package store

import (
	"fmt"
	"strings"

	"github.com/kopaki-io/kopaki/internal/codec"
	kerrors "github.com/kopaki-io/kopaki/internal/errors"
)

// merge applies patch onto dst in place. For each key in patch: if both
// sides hold tables, recurse; otherwise the patch value overwrites
// (last-write-wins at the leaf). Arrays are treated as scalars and replace
// wholesale. Keys absent from patch are left alone, so an empty patch table
// never deletes anything.
func merge(dst, patch codec.Tree) {
	for k, v := range patch {
		if pv, ok := v.(map[string]any); ok {
			if dv, ok := dst[k].(map[string]any); ok {
				merge(dv, pv)
				continue
			}
		}
		dst[k] = v
	}
}

// setPath sets the value at keyPath, creating empty intermediate tables for
// missing segments. Descending through an existing non-table value fails
// with ErrInvalidKeyPath.
func setPath(tree codec.Tree, keyPath []string, value any) error {
	if len(keyPath) == 0 {
		return kerrors.ErrEmptyKeyPath
	}

	current := tree
	for i, segment := range keyPath[:len(keyPath)-1] {
		next, ok := current[segment]
		if !ok {
			child := codec.Tree{}
			current[segment] = child
			current = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q in path %s holds a non-table value",
				kerrors.ErrInvalidKeyPath, segment, strings.Join(keyPath[:i+1], "."))
		}
		current = child
	}

	current[keyPath[len(keyPath)-1]] = value
	return nil
}

// getPath returns the value at keyPath. Missing keys fail with
// ErrKeyNotFound; descending through a non-table fails with
// ErrInvalidKeyPath.
func getPath(tree codec.Tree, keyPath []string) (any, error) {
	if len(keyPath) == 0 {
		return nil, kerrors.ErrEmptyKeyPath
	}

	current := tree
	for i, segment := range keyPath[:len(keyPath)-1] {
		next, ok := current[segment]
		if !ok {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrKeyNotFound, strings.Join(keyPath[:i+1], "."))
		}
		child, ok := next.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q in path %s holds a non-table value",
				kerrors.ErrInvalidKeyPath, segment, strings.Join(keyPath[:i+1], "."))
		}
		current = child
	}

	value, ok := current[keyPath[len(keyPath)-1]]
	if !ok {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrKeyNotFound, strings.Join(keyPath, "."))
	}
	return value, nil
}
