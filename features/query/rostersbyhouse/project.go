package rostersbyhouse

import (
	"slices"

	"github.com/rosterkit/cohortdata/roster"
	"github.com/rosterkit/cohortdata/shared/core"
)

// Project implements the query logic of the house overview.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All records of the roster
//	WHEN: RostersByHouse query is executed
//	THEN: RostersByHouse struct is returned with seven rosters in core.Buckets order
//	INCLUDES: Records of a known house, then ghosts, then instructors (first match wins)
//	EXCLUDES: Records that match none of them
func Project(records roster.Records, _ Query) RostersByHouse {
	result := RostersByHouse{ScannedRecords: len(records)}
	for _, bucket := range core.Buckets() {
		result.Rosters[bucket] = make([]string, 0)
	}

	for _, record := range records {
		bucket, ok := core.Classify(record)
		if !ok {
			result.Dropped++
			continue
		}

		result.Rosters[bucket] = append(result.Rosters[bucket], record.FullName())
	}

	for _, bucket := range core.Buckets() {
		slices.Sort(result.Rosters[bucket])
	}

	return result
}
