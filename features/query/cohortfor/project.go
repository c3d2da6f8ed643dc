package cohortfor

import (
	"github.com/rosterkit/cohortdata/roster"
)

// Project implements the query logic to resolve the cohort of a person.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All records of the roster
//	WHEN: CohortFor query is executed
//	THEN: CohortFor struct is returned
//	INCLUDES: The first record whose full name equals the queried name
//	EXCLUDES: Later records with the same name
func Project(records roster.Records, query Query) CohortFor {
	result := CohortFor{
		Name:           query.Name,
		ScannedRecords: len(records),
	}

	for _, record := range records {
		if record.FullName() == query.Name {
			result.Cohort = record.CohortOrRole
			result.Found = true
			result.Line = record.Line

			break
		}
	}

	return result
}
