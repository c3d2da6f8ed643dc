package rostersbyhouse

import (
	"github.com/rosterkit/cohortdata/shared/core"
)

// RostersByHouse represents the query result: one sorted roster per bucket, indexed by core.Bucket.
type RostersByHouse struct {
	Rosters        [core.BucketCount][]core.FullNameString
	Dropped        int
	ScannedRecords int
}

// Roster returns the names of one bucket. An out-of-range bucket yields nil.
func (r RostersByHouse) Roster(bucket core.Bucket) []core.FullNameString {
	if bucket < 0 || int(bucket) >= core.BucketCount {
		return nil
	}

	return r.Rosters[bucket]
}

// GetScannedRecords returns the number of records the projection was built from.
func (r RostersByHouse) GetScannedRecords() int {
	return r.ScannedRecords
}
