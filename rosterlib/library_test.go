package rosterlib_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterkit/cohortdata/features/query/allrecords"
	"github.com/rosterkit/cohortdata/features/query/housemates"
	"github.com/rosterkit/cohortdata/roster"
	"github.com/rosterkit/cohortdata/roster/fileengine"
	"github.com/rosterkit/cohortdata/rosterlib"
	"github.com/rosterkit/cohortdata/shared/shell"
	. "github.com/rosterkit/cohortdata/testutil/helper" //nolint:revive
)

func Test_New_RejectsNilSource(t *testing.T) {
	lib, err := rosterlib.New(nil)

	assert.ErrorIs(t, err, roster.ErrNilSource)
	assert.Nil(t, lib)
}

func Test_New_RejectsZeroFileSource(t *testing.T) {
	lib, err := rosterlib.New(fileengine.Source{})

	assert.ErrorIs(t, err, roster.ErrNilSource)
	assert.Nil(t, lib)
}

func Test_New_RejectsUnknownNameResolution(t *testing.T) {
	_, err := rosterlib.New(GivenFSSource(t, HogwartsRosterLines), rosterlib.WithNameResolution(housemates.NameResolution(9)))

	assert.ErrorIs(t, err, roster.ErrUnknownNameResolution)
}

func Test_Open_RejectsEmptyPath(t *testing.T) {
	_, err := rosterlib.Open("")

	assert.ErrorIs(t, err, roster.ErrEmptySourcePath)
}

func Test_BucketNames(t *testing.T) {
	assert.Equal(t, [7]string{
		"Dumbledore's Army", "Gryffindor", "Hufflepuff", "Ravenclaw", "Slytherin", "Ghosts", "Instructors",
	}, rosterlib.BucketNames())
	assert.Equal(t, "Ghosts", rosterlib.Buckets()[5].String())
}

func Test_Library_Operations(t *testing.T) {
	ctx := context.Background()
	lib, err := rosterlib.Open(GivenRosterFile(t, HogwartsRosterLines...))
	require.NoError(t, err)

	houseNames, err := lib.ListHouses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dumbledore's Army", "Gryffindor", "Hufflepuff", "Ravenclaw", "Slytherin"}, houseNames)

	spring := "Spring 2016"
	names, err := lib.StudentsByCohort(ctx, &spring)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ginny Weasley", "Luna Lovegood", "Zacharias Smith"}, names)

	all, err := lib.StudentsByCohort(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 24)

	allByLabel, err := lib.StudentsByCohortLabel(ctx, "All")
	require.NoError(t, err)
	assert.Equal(t, all, allByLabel)

	rosters, err := lib.RostersByHouse(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fat Friar", "Nearly Headless Nick"}, rosters[rosterlib.Buckets()[5]])

	entries, err := lib.AllRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, len(HogwartsRosterLines))
	assert.Equal(t, allrecords.Entry{FullName: "Argus Filch"}, entries[23])

	cohort, found, err := lib.CohortFor(ctx, "Harry Potter")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Fall 2015", cohort)

	_, found, err = lib.CohortFor(ctx, "Nobody Here")
	require.NoError(t, err)
	assert.False(t, found)

	duplicates, err := lib.DuplicateLastNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Creevey", "Patil", "Weasley"}, duplicates)

	mates, err := lib.HousematesFor(ctx, "Hermione Granger")
	require.NoError(t, err)
	assert.Equal(t, []string{"Harry Potter", "Parvati Patil", "Ron Weasley", "Seamus Finnigan"}, mates)
}

func Test_Library_HousematesFor_NameResolution(t *testing.T) {
	lines := []string{
		"Harry|Potter|Gryffindor|McGonagall|Fall 2015",
		"Ron|Weasley|Gryffindor|McGonagall|Fall 2015",
		"Cho|Chang|Ravenclaw|Flitwick|Fall 2015",
		"Harry|Potter|Ravenclaw|Flitwick|Fall 2015",
	}

	testCases := []struct {
		name     string
		options  []rosterlib.Option
		expected []string
		wantErr  error
	}{
		{name: "default last match", expected: []string{"Cho Chang"}},
		{
			name:     "first match",
			options:  []rosterlib.Option{rosterlib.WithNameResolution(housemates.ResolveFirstMatch)},
			expected: []string{"Ron Weasley"},
		},
		{
			name:    "strict",
			options: []rosterlib.Option{rosterlib.WithNameResolution(housemates.ResolveStrict)},
			wantErr: roster.ErrAmbiguousName,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lib, err := rosterlib.New(GivenFSSource(t, lines), tc.options...)
			require.NoError(t, err)

			mates, err := lib.HousematesFor(context.Background(), "Harry Potter")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, mates)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, mates)
		})
	}
}

func Test_Library_ErrorsAreSurfaced(t *testing.T) {
	ctx := context.Background()

	missing, err := rosterlib.Open(filepath.Join(t.TempDir(), "absent.txt"))
	require.NoError(t, err)

	_, err = missing.ListHouses(ctx)
	assert.ErrorIs(t, err, roster.ErrSourceUnavailable)

	_, _, err = missing.CohortFor(ctx, "Harry Potter")
	assert.ErrorIs(t, err, roster.ErrSourceUnavailable)

	malformed, err := rosterlib.New(GivenFSSource(t, []string{"Harry|Potter"}))
	require.NoError(t, err)

	rosters, err := malformed.RostersByHouse(ctx)
	assert.ErrorIs(t, err, roster.ErrMalformedRecord)
	assert.Equal(t, [7][]string{}, rosters)
}

func Test_Library_ReadsFreshOnEveryCall(t *testing.T) {
	ctx := context.Background()
	path := GivenRosterFile(t, "Harry|Potter|Gryffindor|McGonagall|Fall 2015")
	lib, err := rosterlib.Open(path)
	require.NoError(t, err)

	first, err := lib.ListHouses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gryffindor"}, first)

	OverwriteRosterFile(t, path, "Cho|Chang|Ravenclaw|Flitwick|Fall 2015")

	second, err := lib.ListHouses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ravenclaw"}, second)
}

func Test_Library_ConcurrentCalls(t *testing.T) {
	lib, err := rosterlib.Open(GivenRosterFile(t, HogwartsRosterLines...))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			duplicates, callErr := lib.DuplicateLastNames(context.Background())
			assert.NoError(t, callErr)
			assert.Equal(t, []string{"Creevey", "Patil", "Weasley"}, duplicates)
		}()
	}
	wg.Wait()
}

func Test_Library_Observability(t *testing.T) {
	// arrange
	logHandler := NewTestLogHandler(false)
	metricsSpy := NewMetricsCollectorSpy(true)
	tracingSpy := NewTracingCollectorSpy(true)

	lib, err := rosterlib.Open(
		GivenRosterFile(t, HogwartsRosterLines...),
		rosterlib.WithLogger(slog.New(logHandler)),
		rosterlib.WithMetrics(metricsSpy),
		rosterlib.WithTracing(tracingSpy),
	)
	require.NoError(t, err)

	// act
	_, err = lib.ListHouses(context.Background())

	// assert
	require.NoError(t, err)
	assert.True(t, metricsSpy.HasDurationRecordForMetric(shell.QueryHandlerDurationMetric).
		WithQueryType("Houses").WithStatus(shell.StatusSuccess).Assert())
	assert.True(t, metricsSpy.HasDurationRecordForMetric("rostersource_scan_duration_seconds").
		WithOperation("scan").WithStatus("success").Assert())
	assert.True(t, tracingSpy.HasSpanRecordForName(shell.SpanNameQueryHandle).Assert())
	assert.True(t, tracingSpy.HasSpanRecordForName("rostersource.scan").Assert())
	assert.True(t, logHandler.HasInfoLogWithMessage(shell.LogMsgQueryCompleted).
		WithString(shell.LogAttrQueryType, "Houses").Assert())
	assert.True(t, logHandler.HasInfoLogWithMessage("rostersource operation: scan completed").
		WithInt("record_count", int64(len(HogwartsRosterLines))).Assert())
}
