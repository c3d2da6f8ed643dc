package cohortfor

import (
	"github.com/rosterkit/cohortdata/shared/core"
)

const (
	queryType = "CohortFor"
)

// Query represents the input for resolving a cohort by full name.
type Query struct {
	Name core.FullNameString
}

// BuildQuery creates a new Query for the given full name. The name is compared verbatim.
func BuildQuery(name core.FullNameString) Query {
	return Query{Name: name}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
