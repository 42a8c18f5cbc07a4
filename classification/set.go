package classification

import "sort"

// Set is an immutable set of license ids.
type Set map[string]struct{}

// NewSet creates a set from ids
func NewSet(ids ...string) Set {
	ret := make(Set, len(ids))
	for _, id := range ids {
		ret[id] = struct{}{}
	}
	return ret
}

// Has returns true if id belongs to the set.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns set size
func (s Set) Len() int {
	return len(s)
}

// Sorted returns set members in lexical order.
func (s Set) Sorted() []string {
	ret := make([]string, 0, len(s))
	for id := range s {
		ret = append(ret, id)
	}
	sort.Strings(ret)
	return ret
}
