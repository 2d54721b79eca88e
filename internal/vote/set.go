package vote

import (
	"sort"
	"strconv"
	"strings"
)

// Set is a set of voter node IDs.
type Set map[int]struct{}

// NewSet returns a set containing the given IDs.
func NewSet(ids ...int) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id into the set.
func (s Set) Add(id int) {
	s[id] = struct{}{}
}

// Has reports whether id is a member of the set.
func (s Set) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Union inserts every member of other into s.
func (s Set) Union(other Set) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// Minus returns the members of s that are not in other.
func (s Set) Minus(other Set) Set {
	out := make(Set)
	for id := range s {
		if !other.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// Copy creates an independent copy of the set.
func (s Set) Copy() Set {
	out := make(Set, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// String returns a deterministic representation of the set.
func (s Set) String() string {
	if len(s) == 0 {
		return "{}"
	}

	parts := make([]string, 0, len(s))
	for _, id := range s.Sorted() {
		parts = append(parts, strconv.Itoa(id))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
