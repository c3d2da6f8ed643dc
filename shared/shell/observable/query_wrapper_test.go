package observable_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterkit/cohortdata/shared/shell"
	"github.com/rosterkit/cohortdata/shared/shell/observable"
	. "github.com/rosterkit/cohortdata/testutil/helper" //nolint:revive
)

func Test_QueryWrapper_Handle_Success(t *testing.T) {
	// arrange
	expectedResult := mockResult{Value: "Gryffindor", ScannedRecords: 25}
	handler := newMockQueryHandler(expectedResult, nil)
	metricsCollector := NewMetricsCollectorSpy(true)
	tracingCollector := NewTracingCollectorSpy(true)
	logHandler := NewTestLogHandler(false)

	wrapper, err := observable.NewQueryWrapper[mockQuery, mockResult](
		handler,
		observable.WithQueryMetrics[mockQuery, mockResult](metricsCollector),
		observable.WithQueryTracing[mockQuery, mockResult](tracingCollector),
		observable.WithQueryContextualLogging[mockQuery, mockResult](slog.New(logHandler)),
	)
	require.NoError(t, err, "Should create wrapper")

	query := mockQuery{Name: "Harry Potter"}

	// act
	result, err := wrapper.Handle(context.Background(), query)

	// assert
	assert.NoError(t, err, "Should handle query successfully")
	assert.Equal(t, expectedResult, result, "Should return handler result")
	assert.Equal(t, []mockQuery{query}, handler.calls, "Should pass query to handler once")

	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
		WithQueryType("TestQuery").
		WithStatus("success").
		Assert(), "Should record success metric")
	assert.True(t, metricsCollector.HasDurationRecordForMetric(shell.QueryHandlerDurationMetric).
		WithQueryType("TestQuery").
		WithStatus("success").
		Assert(), "Should record duration metric")

	assert.True(t, tracingCollector.HasSpanRecordForName(shell.SpanNameQueryHandle).
		WithStartAttribute("query_type", "TestQuery").
		WithStatus("success").
		Assert(), "Should trace the query")

	assert.True(t, logHandler.HasInfoLogWithMessage("query handler started").Assert(), "Should log query start")
	assert.True(t, logHandler.HasInfoLogWithMessage("query handler completed").
		WithInt("scanned_records", 25).
		WithDurationMS().
		Assert(), "Should log query completion")
}

func Test_QueryWrapper_Handle_Failures(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		status      string
		extraMetric string
	}{
		{name: "error", err: errors.New("source unavailable"), status: "error"},
		{name: "canceled", err: context.Canceled, status: "canceled", extraMetric: shell.QueryHandlerCanceledMetric},
		{name: "timeout", err: context.DeadlineExceeded, status: "timeout", extraMetric: shell.QueryHandlerTimeoutMetric},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			handler := newMockQueryHandler(mockResult{}, tc.err)
			metricsCollector := NewMetricsCollectorSpy(true)
			tracingCollector := NewTracingCollectorSpy(true)
			logHandler := NewTestLogHandler(false)

			wrapper, err := observable.NewQueryWrapper[mockQuery, mockResult](
				handler,
				observable.WithQueryMetrics[mockQuery, mockResult](metricsCollector),
				observable.WithQueryTracing[mockQuery, mockResult](tracingCollector),
				observable.WithQueryLogging[mockQuery, mockResult](slog.New(logHandler)),
			)
			require.NoError(t, err)

			// act
			result, err := wrapper.Handle(context.Background(), mockQuery{})

			// assert
			assert.Equal(t, tc.err, err, "Should return original error")
			assert.Equal(t, mockResult{}, result, "Should return zero result on error")

			assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
				WithQueryType("TestQuery").
				WithStatus(tc.status).
				Assert(), "Should record calls metric with status")

			if tc.extraMetric != "" {
				assert.True(t, metricsCollector.HasCounterRecordForMetric(tc.extraMetric).
					WithStatus(tc.status).
					Assert(), "Should record dedicated counter")
			}

			assert.True(t, tracingCollector.HasSpanRecordForName(shell.SpanNameQueryHandle).
				WithStatus(tc.status).
				WithEndAttribute("error", tc.err.Error()).
				Assert(), "Should finish span with error")

			assert.True(t, logHandler.HasErrorLogWithMessage("query handler failed").
				WithString("status", tc.status).
				Assert(), "Should log query error")
		})
	}
}

func Test_QueryWrapper_Handle_WithoutObservability(t *testing.T) {
	// arrange
	expectedResult := mockResult{Value: "Ravenclaw", ScannedRecords: 3}
	handler := newMockQueryHandler(expectedResult, nil)

	wrapper, err := observable.NewQueryWrapper[mockQuery, mockResult](handler)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), mockQuery{})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, expectedResult, result)
	assert.Len(t, handler.calls, 1)
}

func Test_QueryWrapper_OptionError(t *testing.T) {
	failing := func(*observable.QueryWrapper[mockQuery, mockResult]) error { return errors.New("option failed") }

	wrapper, err := observable.NewQueryWrapper[mockQuery, mockResult](newMockQueryHandler(mockResult{}, nil), failing)

	assert.EqualError(t, err, "option failed")
	assert.Nil(t, wrapper)
}

// mockQuery implements shell.Query for testing.
type mockQuery struct {
	Name string
}

func (q mockQuery) QueryType() string { return "TestQuery" }

// mockResult implements shell.QueryResult for testing.
type mockResult struct {
	Value          string
	ScannedRecords int
}

func (r mockResult) GetScannedRecords() int { return r.ScannedRecords }

type mockQueryHandler struct {
	result mockResult
	err    error
	calls  []mockQuery
}

func (h *mockQueryHandler) Handle(_ context.Context, query mockQuery) (mockResult, error) {
	h.calls = append(h.calls, query)
	return h.result, h.err
}

func newMockQueryHandler(result mockResult, err error) *mockQueryHandler {
	return &mockQueryHandler{
		result: result,
		err:    err,
		calls:  make([]mockQuery, 0),
	}
}
