package allrecords

import (
	"github.com/rosterkit/cohortdata/roster"
)

// Project implements the query logic to list every record.
// This is a pure function with no side effects. Order follows the input, nothing is sorted.
func Project(records roster.Records, _ Query) AllRecords {
	entries := make([]Entry, 0, len(records))

	for _, record := range records {
		entries = append(entries, Entry{
			FullName: record.FullName(),
			House:    record.House,
			Advisor:  record.Advisor,
			Cohort:   record.CohortOrRole,
		})
	}

	return AllRecords{
		Entries:        entries,
		ScannedRecords: len(records),
	}
}
