package housemates

import (
	"fmt"

	"github.com/rosterkit/cohortdata/roster"
	"github.com/rosterkit/cohortdata/shared/core"
)

// Project implements the query logic to find housemates.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All records of the roster
//	WHEN: Housemates query is executed
//	THEN: Housemates struct is returned, names as a sorted set
//	INCLUDES: Records whose house and cohort-or-role fields both equal those of the resolved record
//	EXCLUDES: Records carrying the queried name
//
// Returns roster.ErrUnknownNameResolution for an undeclared resolution and roster.ErrAmbiguousName
// when ResolveStrict meets a name carried by more than one record.
func Project(records roster.Records, query Query) (Housemates, error) {
	if !query.Resolution.IsValid() {
		return Housemates{}, fmt.Errorf("%w: %d", roster.ErrUnknownNameResolution, int(query.Resolution))
	}

	result := Housemates{
		Name:           query.Name,
		ScannedRecords: len(records),
	}

	// first pass: resolve house and cohort
	for _, record := range records {
		if record.FullName() != query.Name {
			continue
		}

		result.MatchCount++
		if query.Resolution == ResolveFirstMatch && result.Matched {
			continue
		}

		result.House = record.House
		result.Cohort = record.CohortOrRole
		result.Matched = true
	}

	if query.Resolution == ResolveStrict && result.MatchCount > 1 {
		return Housemates{}, fmt.Errorf("%w: %q is carried by %d records", roster.ErrAmbiguousName, query.Name, result.MatchCount)
	}

	// second pass: collect everyone else with the same house and cohort
	names := make(core.NameSet)
	for _, record := range records {
		fullName := record.FullName()
		if fullName == query.Name {
			continue
		}

		if record.House == result.House && record.CohortOrRole == result.Cohort {
			names.Add(fullName)
		}
	}

	result.Names = names.Sorted()

	return result, nil
}
