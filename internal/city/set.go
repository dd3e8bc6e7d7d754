// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package city resolves the city of a placement from the free text of a
// record line. Known cities live in an ordered set that callers can extend at
// runtime; the first city contained in the text wins.
package city

// Set is an insertion-ordered set of city names. The zero value is empty and
// ready to use.
type Set struct {
	names []string
	index map[string]struct{}
}

// NewSet returns a set holding names in order, skipping duplicates.
func NewSet(names ...string) *Set {
	s := &Set{}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add appends name to the set. It reports whether the name was new; adding a
// known name or an empty string is a no-op.
func (s *Set) Add(name string) bool {
	if name == "" {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[name]; ok {
		return false
	}
	s.index[name] = struct{}{}
	s.names = append(s.names, name)
	return true
}

// Contains reports whether name is in the set.
func (s *Set) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Names returns a copy of the names in insertion order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of names.
func (s *Set) Len() int {
	return len(s.names)
}
