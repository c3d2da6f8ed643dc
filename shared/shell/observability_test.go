package shell_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rosterkit/cohortdata/roster"
	"github.com/rosterkit/cohortdata/shared/shell"
	. "github.com/rosterkit/cohortdata/testutil/helper" //nolint:revive
)

func Test_StatusFor(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: shell.StatusSuccess},
		{name: "canceled", err: context.Canceled, want: shell.StatusCanceled},
		{name: "wrapped canceled", err: fmt.Errorf("scan: %w", context.Canceled), want: shell.StatusCanceled},
		{name: "deadline", err: context.DeadlineExceeded, want: shell.StatusTimeout},
		{name: "source unavailable", err: roster.ErrSourceUnavailable, want: shell.StatusError},
		{name: "other", err: errors.New("boom"), want: shell.StatusError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shell.StatusFor(tc.err))
		})
	}
}

func Test_RecordQueryMetrics(t *testing.T) {
	testCases := []struct {
		name          string
		status        string
		extraMetric   string
		wantExtraHits int
	}{
		{name: "success", status: shell.StatusSuccess},
		{name: "error", status: shell.StatusError},
		{name: "canceled", status: shell.StatusCanceled, extraMetric: shell.QueryHandlerCanceledMetric, wantExtraHits: 1},
		{name: "timeout", status: shell.StatusTimeout, extraMetric: shell.QueryHandlerTimeoutMetric, wantExtraHits: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			metricsSpy := NewMetricsCollectorSpy(true)

			shell.RecordQueryMetrics(context.Background(), metricsSpy, "ListHouses", tc.status, time.Millisecond)

			assert.True(t,
				metricsSpy.HasDurationRecordForMetric(shell.QueryHandlerDurationMetric).
					WithQueryType("ListHouses").
					WithStatus(tc.status).
					Assert(),
			)
			assert.Equal(t, 1, metricsSpy.CountCounterRecordsForMetric(shell.QueryHandlerCallsMetric))
			assert.Equal(t, tc.wantExtraHits, metricsSpy.CountCounterRecordsForMetric(shell.QueryHandlerCanceledMetric)+
				metricsSpy.CountCounterRecordsForMetric(shell.QueryHandlerTimeoutMetric))

			if tc.extraMetric != "" {
				assert.True(t, metricsSpy.HasCounterRecordForMetric(tc.extraMetric).WithStatus(tc.status).Assert())
			}
		})
	}
}

func Test_RecordQueryMetrics_NilCollector(t *testing.T) {
	assert.NotPanics(t, func() {
		shell.RecordQueryMetrics(context.Background(), nil, "ListHouses", shell.StatusSuccess, time.Millisecond)
	})
}

func Test_QuerySpan_StartAndFinish(t *testing.T) {
	tracingSpy := NewTracingCollectorSpy(true)

	_, span := shell.StartQuerySpan(context.Background(), tracingSpy, "CohortFor")
	shell.FinishQuerySpan(tracingSpy, span, shell.StatusError, 2*time.Millisecond, roster.ErrSourceUnavailable)

	assert.True(t,
		tracingSpy.HasSpanRecordForName(shell.SpanNameQueryHandle).
			WithStartAttribute(shell.LogAttrQueryType, "CohortFor").
			WithStatus(shell.StatusError).
			WithEndAttribute(shell.LogAttrError, roster.ErrSourceUnavailable.Error()).
			Assert(),
	)
}

func Test_QuerySpan_DisabledTracing(t *testing.T) {
	ctx := context.Background()

	spanCtx, span := shell.StartQuerySpan(ctx, nil, "CohortFor")

	assert.Equal(t, ctx, spanCtx)
	assert.Nil(t, span)
	assert.NotPanics(t, func() {
		shell.FinishQuerySpan(nil, span, shell.StatusSuccess, time.Millisecond, nil)
	})
}

func Test_LogQuery_PrefersContextualLogger(t *testing.T) {
	plainHandler := NewTestLogHandler(false)
	contextualHandler := NewTestLogHandler(false)
	plain := slog.New(plainHandler)
	contextual := slog.New(contextualHandler)
	ctx := context.Background()

	shell.LogQueryStart(ctx, plain, contextual, "DuplicateLastNames")
	shell.LogQuerySuccess(ctx, plain, contextual, "DuplicateLastNames", 25, time.Millisecond)
	shell.LogQueryError(ctx, plain, contextual, "DuplicateLastNames", shell.StatusError, errors.New("boom"))

	assert.Equal(t, 0, plainHandler.GetRecordCount())
	assert.Equal(t, 3, contextualHandler.GetRecordCount())
	assert.True(t,
		contextualHandler.HasInfoLogWithMessage(shell.LogMsgQueryCompleted).
			WithString(shell.LogAttrQueryType, "DuplicateLastNames").
			WithInt(shell.LogAttrScannedRecords, 25).
			WithDurationMS().
			Assert(),
	)
	assert.True(t,
		contextualHandler.HasErrorLogWithMessage(shell.LogMsgQueryFailed).
			WithString(shell.LogAttrError, "boom").
			Assert(),
	)
}

func Test_LogQuery_FallsBackToLogger(t *testing.T) {
	plainHandler := NewTestLogHandler(false)

	shell.LogQueryStart(context.Background(), slog.New(plainHandler), nil, "AllRecords")

	assert.True(t,
		plainHandler.HasInfoLogWithMessage(shell.LogMsgQueryStarted).
			WithString(shell.LogAttrQueryType, "AllRecords").
			Assert(),
	)
}
