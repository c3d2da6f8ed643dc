package duplicatelastnames

import (
	"github.com/rosterkit/cohortdata/roster"
	"github.com/rosterkit/cohortdata/shared/core"
)

// Project implements the query logic to find repeated surnames.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All records of the roster
//	WHEN: DuplicateLastNames query is executed
//	THEN: DuplicateLastNames struct is returned
//	INCLUDES: Surnames appearing on two or more lines, once each
//	EXCLUDES: Surnames appearing exactly once
func Project(records roster.Records, _ Query) DuplicateLastNames {
	counts := make(map[string]int)
	for _, record := range records {
		counts[record.LastName]++
	}

	duplicates := make(core.NameSet)
	occurrences := make(map[string]int)
	for lastName, count := range counts {
		if count > 1 {
			duplicates.Add(lastName)
			occurrences[lastName] = count
		}
	}

	return DuplicateLastNames{
		LastNames:      duplicates.Sorted(),
		Occurrences:    occurrences,
		ScannedRecords: len(records),
	}
}
