package rostersbyhouse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rosterkit/cohortdata/features/query/rostersbyhouse"
	"github.com/rosterkit/cohortdata/roster"
	"github.com/rosterkit/cohortdata/shared/core"
)

func Test_Project_ClassificationOrder(t *testing.T) {
	testCases := []struct {
		name     string
		record   roster.Record
		expected core.Bucket
		dropped  bool
	}{
		{
			name:     "house wins over role code",
			record:   roster.Record{FirstName: "Nearly Headless", LastName: "Nick", House: "Gryffindor", CohortOrRole: "G"},
			expected: core.BucketGryffindor,
		},
		{
			name:     "ghost without house",
			record:   roster.Record{FirstName: "Fat", LastName: "Friar", CohortOrRole: "G"},
			expected: core.BucketGhosts,
		},
		{
			name:     "unknown house falls through to role code",
			record:   roster.Record{FirstName: "Olympe", LastName: "Maxime", House: "Beauxbatons", CohortOrRole: "I"},
			expected: core.BucketInstructors,
		},
		{
			name:    "padded role code is dropped",
			record:  roster.Record{FirstName: "Filius", LastName: "Flitwick", CohortOrRole: " I"},
			dropped: true,
		},
		{
			name:    "no house and no role",
			record:  roster.Record{FirstName: "Argus", LastName: "Filch"},
			dropped: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := rostersbyhouse.Project(roster.Records{tc.record}, rostersbyhouse.BuildQuery())

			total := 0
			for _, bucket := range core.Buckets() {
				total += len(result.Roster(bucket))
			}

			if tc.dropped {
				assert.Equal(t, 0, total)
				assert.Equal(t, 1, result.Dropped)
				return
			}

			assert.Equal(t, 1, total)
			assert.Equal(t, []string{tc.record.FullName()}, result.Roster(tc.expected))
		})
	}
}

func Test_Project_EmptyInputYieldsSevenEmptyRosters(t *testing.T) {
	result := rostersbyhouse.Project(nil, rostersbyhouse.BuildQuery())

	for _, bucket := range core.Buckets() {
		assert.NotNil(t, result.Roster(bucket), bucket.String())
		assert.Empty(t, result.Roster(bucket), bucket.String())
	}
	assert.Nil(t, result.Roster(core.Bucket(core.BucketCount)))
}
