package allrecords

import (
	"github.com/rosterkit/cohortdata/shared/core"
)

// Entry is one record as reported to callers. Fields are verbatim, empty strings included.
type Entry struct {
	FullName core.FullNameString `json:"full_name"`
	House    core.HouseString    `json:"house"`
	Advisor  string              `json:"advisor"`
	Cohort   core.CohortString   `json:"cohort"`
}

// AllRecords represents the query result containing one entry per line, in file order.
type AllRecords struct {
	Entries        []Entry `json:"entries"`
	ScannedRecords int     `json:"scanned_records"`
}

// GetScannedRecords returns the number of records the projection was built from.
func (r AllRecords) GetScannedRecords() int {
	return r.ScannedRecords
}
