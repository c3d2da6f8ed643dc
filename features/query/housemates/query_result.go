package housemates

import (
	"github.com/rosterkit/cohortdata/shared/core"
)

// Housemates represents the query result.
//
// House and Cohort are the values used for matching. Matched is false when no record carries the
// queried name, in which case both are empty. MatchCount is the number of records carrying the name.
type Housemates struct {
	Name           core.FullNameString
	House          core.HouseString
	Cohort         core.CohortString
	Matched        bool
	MatchCount     int
	Names          []core.FullNameString
	ScannedRecords int
}

// GetScannedRecords returns the number of records the projection was built from.
func (r Housemates) GetScannedRecords() int {
	return r.ScannedRecords
}
