package core

import (
	"github.com/rosterkit/cohortdata/roster"
)

const (
	HouseDumbledoresArmy = "Dumbledore's Army"
	HouseGryffindor      = "Gryffindor"
	HouseHufflepuff      = "Hufflepuff"
	HouseRavenclaw       = "Ravenclaw"
	HouseSlytherin       = "Slytherin"
)

// Bucket identifies one of the seven rosters of the house overview.
// The numeric values fix the presentation order.
type Bucket int

const (
	BucketDumbledoresArmy Bucket = iota
	BucketGryffindor
	BucketHufflepuff
	BucketRavenclaw
	BucketSlytherin
	BucketGhosts
	BucketInstructors

	// BucketCount is the number of rosters in the house overview.
	BucketCount = 7
)

var bucketNames = [BucketCount]string{
	HouseDumbledoresArmy,
	HouseGryffindor,
	HouseHufflepuff,
	HouseRavenclaw,
	HouseSlytherin,
	"Ghosts",
	"Instructors",
}

var houseBuckets = map[HouseString]Bucket{
	HouseDumbledoresArmy: BucketDumbledoresArmy,
	HouseGryffindor:      BucketGryffindor,
	HouseHufflepuff:      BucketHufflepuff,
	HouseRavenclaw:       BucketRavenclaw,
	HouseSlytherin:       BucketSlytherin,
}

// String returns the display name of the bucket.
func (b Bucket) String() string {
	if b < 0 || int(b) >= BucketCount {
		return "Unknown"
	}

	return bucketNames[b]
}

// Buckets returns all buckets in presentation order.
func Buckets() [BucketCount]Bucket {
	return [BucketCount]Bucket{
		BucketDumbledoresArmy,
		BucketGryffindor,
		BucketHufflepuff,
		BucketRavenclaw,
		BucketSlytherin,
		BucketGhosts,
		BucketInstructors,
	}
}

// Houses returns the five known house names in presentation order.
func Houses() []HouseString {
	return []HouseString{
		HouseDumbledoresArmy,
		HouseGryffindor,
		HouseHufflepuff,
		HouseRavenclaw,
		HouseSlytherin,
	}
}

// IsKnownHouse reports whether house is exactly one of the five house names.
func IsKnownHouse(house HouseString) bool {
	_, ok := houseBuckets[house]
	return ok
}

// Classify puts a record into at most one bucket.
//
// The checks run in order and the first match wins:
//
//	house field is one of the five houses -> that house
//	cohort-or-role field is "G"           -> Ghosts
//	cohort-or-role field is "I"           -> Instructors
//	otherwise                             -> no bucket, ok is false
//
// A house field that is non-empty but unknown does not stop the role checks.
func Classify(record roster.Record) (bucket Bucket, ok bool) {
	if houseBucket, isHouse := houseBuckets[record.House]; isHouse {
		return houseBucket, true
	}

	switch {
	case record.IsGhost():
		return BucketGhosts, true
	case record.IsInstructor():
		return BucketInstructors, true
	default:
		return 0, false
	}
}
