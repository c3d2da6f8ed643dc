package houses

import (
	"github.com/rosterkit/cohortdata/roster"
	"github.com/rosterkit/cohortdata/shared/core"
)

// Project implements the query logic to determine all houses named in the roster.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All records of the roster
//	WHEN: Houses query is executed
//	THEN: Houses struct is returned
//	INCLUDES: Every distinct house field, verbatim
//	EXCLUDES: Empty house fields
func Project(records roster.Records, _ Query) Houses {
	houses := make(core.NameSet)

	for _, record := range records {
		if record.HasHouse() {
			houses.Add(record.House)
		}
	}

	return Houses{
		Names:          houses.Sorted(),
		ScannedRecords: len(records),
	}
}
