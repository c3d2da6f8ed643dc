package cohortfor

import (
	"github.com/rosterkit/cohortdata/shared/core"
)

// CohortFor represents the query result. Cohort holds the verbatim cohort-or-role field when Found is true.
type CohortFor struct {
	Name           core.FullNameString
	Cohort         core.CohortString
	Found          bool
	Line           int
	ScannedRecords int
}

// GetScannedRecords returns the number of records the projection was built from.
func (r CohortFor) GetScannedRecords() int {
	return r.ScannedRecords
}
