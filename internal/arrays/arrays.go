// Package arrays implements fixed-size, one-dimensional BASIC arrays
// (§3 Array, §9 design note restricting the core to a single dimension).
package arrays

import (
	"fmt"

	"github.com/rgwbasic/gwbasic/internal/ident"
	"github.com/rgwbasic/gwbasic/internal/values"
)

// Array is a 1-based, fixed-size vector of values of one element kind.
// The backing slice has size n+1 so index n is valid and index 0 is
// simply unused, matching the spec's "value vector of size n+1 (BASIC
// indices 1…n)".
type Array struct {
	Name    string
	Kind    values.Kind
	Entries []values.Value
}

// New creates an array with n elements (indices 1..n), each initialised
// to the zero value for kind.
func New(name string, kind values.Kind, n int) *Array {
	entries := make([]values.Value, n+1)
	for i := range entries {
		entries[i] = values.DefaultForKind(kind)
	}
	return &Array{Name: name, Kind: kind, Entries: entries}
}

// Get returns the value at a 1-based index, or a "Subscript out of
// range" error if idx is outside 1..n (§3 invariant 5).
func (a *Array) Get(idx int) (values.Value, error) {
	if idx < 1 || idx >= len(a.Entries) {
		return nil, fmt.Errorf("Subscript out of range")
	}
	return a.Entries[idx], nil
}

// Set writes a value at a 1-based index, coercing it to the array's
// element kind, or returns a "Subscript out of range" error.
func (a *Array) Set(idx int, v values.Value) error {
	if idx < 1 || idx >= len(a.Entries) {
		return fmt.Errorf("Subscript out of range")
	}
	coerced, err := values.CoerceAssign(a.Entries[idx], v)
	if err != nil {
		return err
	}
	a.Entries[idx] = coerced
	return nil
}

// Len returns n, the highest valid index.
func (a *Array) Len() int {
	return len(a.Entries) - 1
}

// Store is the owning namespace of arrays in an evaluation context,
// keyed separately from scalar variables (§3 Variable/Array ownership).
type Store struct {
	byName map[string]*Array
}

// NewStore creates an empty array store.
func NewStore() *Store {
	return &Store{byName: make(map[string]*Array)}
}

// Declare creates (or replaces) an array under name with n elements of
// the given kind. Re-declaration is unspecified by the source (§9) — we
// replace the array outright, discarding any prior contents.
func (s *Store) Declare(name string, kind values.Kind, n int) *Array {
	normalized := ident.Normalize(name)
	arr := New(normalized, kind, n)
	s.byName[normalized] = arr
	return arr
}

// Lookup returns the array stored under name, if any.
func (s *Store) Lookup(name string) (*Array, bool) {
	arr, ok := s.byName[ident.Normalize(name)]
	return arr, ok
}
