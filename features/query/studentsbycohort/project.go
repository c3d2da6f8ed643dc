package studentsbycohort

import (
	"slices"

	"github.com/rosterkit/cohortdata/roster"
)

// Project implements the query logic to determine the students of a cohort.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All records of the roster
//	WHEN: StudentsByCohort query is executed
//	THEN: StudentsByCohort struct is returned, names sorted by code point
//	INCLUDES: Records whose cohort-or-role field matches the query
//	EXCLUDES: Everything else
func Project(records roster.Records, query Query) StudentsByCohort {
	names := make([]string, 0)

	for _, record := range records {
		if query.Matches(record.CohortOrRole) {
			names = append(names, record.FullName())
		}
	}

	slices.Sort(names)

	return StudentsByCohort{
		Names:          names,
		ScannedRecords: len(records),
	}
}
