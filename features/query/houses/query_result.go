package houses

import (
	"github.com/rosterkit/cohortdata/shared/core"
)

// Houses represents the query result containing every distinct non-empty house field.
type Houses struct {
	Names          []core.HouseString
	ScannedRecords int
}

// GetScannedRecords returns the number of records the projection was built from.
func (r Houses) GetScannedRecords() int {
	return r.ScannedRecords
}
