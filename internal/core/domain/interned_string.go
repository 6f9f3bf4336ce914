package domain

import "unique"

// InternedString wraps a unique.Handle[string]. Task names appear once in
// the graph and again in every prerequisite list that references them, so
// interning keeps those references cheap to store and compare.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s.
func NewInternedString(s string) InternedString {
	return InternedString{h: unique.Make(s)}
}

// NewInternedStrings interns every element of names, preserving order.
func NewInternedStrings(names []string) []InternedString {
	if len(names) == 0 {
		return nil
	}
	res := make([]InternedString, len(names))
	for i, n := range names {
		res[i] = NewInternedString(n)
	}
	return res
}

// String returns the underlying string. The zero value renders as "".
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}
