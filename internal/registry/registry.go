// Package registry holds the ordered, read-only list of installable packages.
//
// The registry is data: the built-in list lives in packages.toml and is
// embedded into the binary. Users may append their own entries from a file
// with the same layout.
package registry

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"envinstall/internal/domain"
)

//go:embed packages.toml
var builtin []byte

// file is the on-disk layout of a registry document
type file struct {
	Packages []domain.Descriptor `toml:"packages"`
}

// Registry is an ordered list of descriptors. It is never mutated after
// construction; Extend returns a new value.
type Registry struct {
	items []domain.Descriptor
}

// Default returns the built-in registry
func Default() (*Registry, error) {
	r, err := Load(builtin)
	if err != nil {
		return nil, fmt.Errorf("built-in registry: %w", err)
	}
	return r, nil
}

// Load parses and validates a registry document
func Load(data []byte) (*Registry, error) {
	items, err := parse(data)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("registry has no packages")
	}
	return &Registry{items: items}, nil
}

// Extend returns a registry with the packages from data appended after the
// existing ones
func (r *Registry) Extend(data []byte) (*Registry, error) {
	extra, err := parse(data)
	if err != nil {
		return nil, err
	}
	items := make([]domain.Descriptor, 0, len(r.items)+len(extra))
	items = append(items, r.items...)
	items = append(items, extra...)
	return &Registry{items: items}, nil
}

// ExtendFromFile reads extra packages from path and appends them
func (r *Registry) ExtendFromFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}
	extended, err := r.Extend(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return extended, nil
}

func parse(data []byte) ([]domain.Descriptor, error) {
	var f file
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse registry at %d:%d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}
	for i, d := range f.Packages {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("registry entry %d: %w", i+1, err)
		}
	}
	return f.Packages, nil
}

// Len returns the number of descriptors
func (r *Registry) Len() int {
	return len(r.items)
}

// At returns the descriptor at index i (0-based)
func (r *Registry) At(i int) domain.Descriptor {
	return r.items[i]
}

// All returns a copy of the descriptors in registry order
func (r *Registry) All() []domain.Descriptor {
	out := make([]domain.Descriptor, len(r.items))
	copy(out, r.items)
	return out
}

// IndicesByCategory returns the indices of descriptors in category, ascending
func (r *Registry) IndicesByCategory(category domain.Category) []int {
	var indices []int
	for i, d := range r.items {
		if d.Category == category {
			indices = append(indices, i)
		}
	}
	return indices
}
