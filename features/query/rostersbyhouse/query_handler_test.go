package rostersbyhouse_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterkit/cohortdata/features/query/rostersbyhouse"
	"github.com/rosterkit/cohortdata/roster"
	"github.com/rosterkit/cohortdata/shared/core"
	"github.com/rosterkit/cohortdata/shared/shell"
	"github.com/rosterkit/cohortdata/shared/shell/observable"
	. "github.com/rosterkit/cohortdata/testutil/helper" //nolint:revive
)

func Test_QueryHandler_Handle_HouseOverview(t *testing.T) {
	// arrange
	handler := rostersbyhouse.NewQueryHandler(GivenFileSource(t, HogwartsRosterLines))

	// act
	result, err := handler.Handle(context.Background(), rostersbyhouse.BuildQuery())

	// assert
	require.NoError(t, err)
	assert.Equal(t, [core.BucketCount][]string{
		{"Alicia Spinnet", "Neville Longbottom"},
		{
			"Colin Creevey", "Dennis Creevey", "Ginny Weasley", "Harry Potter",
			"Hermione Granger", "Parvati Patil", "Ron Weasley", "Seamus Finnigan",
		},
		{"Cedric Diggory", "Hannah Abbott", "Zacharias Smith"},
		{"Cho Chang", "Luna Lovegood", "Padma Patil"},
		{"Adrian Pucey", "Draco Malfoy", "Vincent Crabbe"},
		{"Fat Friar", "Nearly Headless Nick"},
		{"Filius Flitwick", "Minerva McGonagall", "Severus Snape"},
	}, result.Rosters)
	assert.Equal(t, 1, result.Dropped)
	assert.Equal(t, len(HogwartsRosterLines), result.ScannedRecords)
}

func Test_QueryHandler_Handle_PartitionsRecords(t *testing.T) {
	handler := rostersbyhouse.NewQueryHandler(GivenFSSource(t, HogwartsRosterLines))

	result, err := handler.Handle(context.Background(), rostersbyhouse.BuildQuery())
	require.NoError(t, err)

	seen := make(map[string]int)
	total := 0
	for _, bucket := range core.Buckets() {
		assert.IsNonDecreasing(t, result.Roster(bucket), bucket.String())
		for _, name := range result.Roster(bucket) {
			seen[name]++
			total++
		}
	}

	assert.Equal(t, result.ScannedRecords, total+result.Dropped)
	for name, count := range seen {
		assert.Equal(t, 1, count, name)
	}
}

func Test_QueryHandler_Handle_InstructorOnlyInInstructorsRoster(t *testing.T) {
	handler := rostersbyhouse.NewQueryHandler(GivenFileSource(t, []string{
		"Harry|Potter|Gryffindor|McGonagall|Fall 2015",
		"Ron|Weasley|Gryffindor|McGonagall|Fall 2015",
		"Filius|Flitwick|||I",
	}))

	result, err := handler.Handle(context.Background(), rostersbyhouse.BuildQuery())

	require.NoError(t, err)
	assert.Equal(t, []string{"Filius Flitwick"}, result.Roster(core.BucketInstructors))
	assert.Equal(t, []string{"Harry Potter", "Ron Weasley"}, result.Roster(core.BucketGryffindor))
}

func Test_QueryHandler_Handle_WithObservableWrapper_Error(t *testing.T) {
	tracingSpy := NewTracingCollectorSpy(true)
	metricsSpy := NewMetricsCollectorSpy(true)

	wrapper, err := observable.NewQueryWrapper[rostersbyhouse.Query, rostersbyhouse.RostersByHouse](
		rostersbyhouse.NewQueryHandler(GivenFileSource(t, []string{"only|three|fields"})),
		observable.WithQueryTracing[rostersbyhouse.Query, rostersbyhouse.RostersByHouse](tracingSpy),
		observable.WithQueryMetrics[rostersbyhouse.Query, rostersbyhouse.RostersByHouse](metricsSpy),
	)
	require.NoError(t, err)

	_, err = wrapper.Handle(context.Background(), rostersbyhouse.BuildQuery())

	var malformed *roster.MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 1, malformed.Line)
	assert.True(t, tracingSpy.HasSpanRecordForName(shell.SpanNameQueryHandle).
		WithStatus(shell.StatusError).
		WithStartAttribute(shell.LogAttrQueryType, "RostersByHouse").Assert())
	assert.True(t, metricsSpy.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
		WithStatus(shell.StatusError).Assert())
}
