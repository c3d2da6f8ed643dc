package housemates

import (
	"github.com/rosterkit/cohortdata/shared/core"
)

const (
	queryType = "Housemates"
)

// NameResolution selects the record that determines house and cohort when a name occurs more than once.
type NameResolution int

const (
	// ResolveLastMatch uses the last record carrying the name.
	ResolveLastMatch NameResolution = iota

	// ResolveFirstMatch uses the first record carrying the name.
	ResolveFirstMatch

	// ResolveStrict refuses names carried by more than one record.
	ResolveStrict
)

func (r NameResolution) String() string {
	switch r {
	case ResolveLastMatch:
		return "last_match"
	case ResolveFirstMatch:
		return "first_match"
	case ResolveStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// IsValid reports whether r is one of the declared resolutions.
func (r NameResolution) IsValid() bool {
	return r >= ResolveLastMatch && r <= ResolveStrict
}

// Query represents the input for finding housemates.
type Query struct {
	Name       core.FullNameString
	Resolution NameResolution
}

// QueryOption adjusts a Query built by BuildQuery.
type QueryOption func(*Query)

// WithNameResolution sets how a name carried by several records is resolved.
func WithNameResolution(resolution NameResolution) QueryOption {
	return func(q *Query) {
		q.Resolution = resolution
	}
}

// BuildQuery creates a new Query for the given full name. The name is compared verbatim.
func BuildQuery(name core.FullNameString, opts ...QueryOption) Query {
	query := Query{Name: name, Resolution: ResolveLastMatch}
	for _, opt := range opts {
		opt(&query)
	}

	return query
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
