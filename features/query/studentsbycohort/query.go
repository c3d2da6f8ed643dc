package studentsbycohort

import (
	"github.com/rosterkit/cohortdata/shared/core"
)

const (
	queryType = "StudentsByCohort"
)

// Query represents the input for listing students by cohort.
// With AllCohorts set, Cohort is ignored and every record with a non-empty cohort-or-role field matches.
type Query struct {
	Cohort     core.CohortString
	AllCohorts bool
}

// BuildQuery creates a new Query matching every record with a non-empty cohort-or-role field.
func BuildQuery() Query {
	return Query{AllCohorts: true}
}

// BuildQueryForCohort creates a new Query matching exactly one cohort label.
func BuildQueryForCohort(cohort core.CohortString) Query {
	return Query{Cohort: cohort}
}

// BuildQueryFromLabel maps the core.AllCohortsLabel sentinel to BuildQuery and any other label to
// BuildQueryForCohort.
func BuildQueryFromLabel(label string) Query {
	if label == core.AllCohortsLabel {
		return BuildQuery()
	}

	return BuildQueryForCohort(label)
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// Matches reports whether a cohort-or-role field satisfies the query.
func (q Query) Matches(cohortOrRole core.CohortString) bool {
	if q.AllCohorts {
		return len(cohortOrRole) > 0
	}

	return cohortOrRole == q.Cohort
}
