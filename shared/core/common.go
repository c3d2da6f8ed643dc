package core

import (
	"slices"
)

// Instead of implementing full value objects, I'm using some alias types here ...

// FullNameString represents a first and last name joined by one space
type FullNameString = string

// HouseString represents the verbatim house field
type HouseString = string

// CohortString represents the verbatim cohort-or-role field
type CohortString = string

// AllCohortsLabel is the label callers pass to mean "every record with a non-empty cohort field".
const AllCohortsLabel = "All"

// SortedNames returns the names sorted by code point. Duplicates are kept.
// The input is not modified and the result is never nil.
func SortedNames(names []string) []string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	slices.Sort(sorted)

	return sorted
}

// NameSet collects distinct strings.
type NameSet map[string]struct{}

// Add puts name into the set.
func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the members sorted by code point. The result is never nil.
func (s NameSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
