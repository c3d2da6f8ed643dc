package studentsbycohort

import (
	"github.com/rosterkit/cohortdata/shared/core"
)

// StudentsByCohort represents the query result containing the sorted full names of the matching records.
// Names that occur on several lines appear several times.
type StudentsByCohort struct {
	Names          []core.FullNameString
	ScannedRecords int
}

// GetScannedRecords returns the number of records the projection was built from.
func (r StudentsByCohort) GetScannedRecords() int {
	return r.ScannedRecords
}
