package fileengine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rosterkit/cohortdata/roster"
)

const (
	metricScanDuration   = "rostersource_scan_duration_seconds"
	metricScanCalls      = "rostersource_scan_calls_total"
	metricRecordsScanned = "rostersource_records_scanned"
	metricErrors         = "rostersource_errors_total"
	spanNameScan         = "rostersource.scan"
	spanAttrOperation    = "operation"
	spanAttrLocation     = "location"
	spanAttrRecordCount  = "record_count"
	spanAttrDurationMS   = "duration_ms"
	spanAttrErrorType    = "error_type"
	labelStatus          = "status"
	operationScan        = "scan"
	statusSuccess        = "success"
	statusError          = "error"
	statusCanceled       = "canceled"
	statusTimeout        = "timeout"
	errorTypeUnavailable = "source_unavailable"
	errorTypeMalformed   = "malformed_record"
	errorTypeCanceled    = "canceled"
	errorTypeTimeout     = "timeout"
	errorTypeUnknown     = "unknown"
)

// classifyError maps a scan error to a low-cardinality error type label.
func classifyError(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return errorTypeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return errorTypeTimeout
	case errors.Is(err, roster.ErrMalformedRecord):
		return errorTypeMalformed
	case errors.Is(err, roster.ErrSourceUnavailable):
		return errorTypeUnavailable
	default:
		return errorTypeUnknown
	}
}

func statusFor(errorType string) string {
	switch errorType {
	case errorTypeCanceled:
		return statusCanceled
	case errorTypeTimeout:
		return statusTimeout
	default:
		return statusError
	}
}

// logDebug logs at debug level, preferring the contextual logger.
func (s Source) logDebug(ctx context.Context, msg string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.DebugContext(ctx, msg, args...)
	} else if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

// logOperation logs operational information at info level.
func (s Source) logOperation(ctx context.Context, action string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	} else if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}
}

// logWarn logs non-critical issues at warn level.
func (s Source) logWarn(ctx context.Context, msg string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.WarnContext(ctx, msg, args...)
	} else if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

// logError logs error information at the error level.
func (s Source) logError(ctx context.Context, msg string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if s.contextualLogger != nil {
		s.contextualLogger.ErrorContext(ctx, msg, allArgs...)
	} else if s.logger != nil {
		s.logger.Error(msg, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

// recordDurationMetrics records the scan duration and the call counter.
func (s Source) recordDurationMetrics(ctx context.Context, duration time.Duration, status string) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operationScan,
		labelStatus:       status,
	}

	if contextualCollector, ok := s.metricsCollector.(roster.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricScanDuration, duration, labels)
		contextualCollector.IncrementCounterContext(ctx, metricScanCalls, labels)
	} else {
		s.metricsCollector.RecordDuration(metricScanDuration, duration, labels)
		s.metricsCollector.IncrementCounter(metricScanCalls, labels)
	}
}

// recordValueMetrics records a value metric with context if the collector supports it.
func (s Source) recordValueMetrics(ctx context.Context, metricName string, value float64, status string) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operationScan,
		labelStatus:       status,
	}

	if contextualCollector, ok := s.metricsCollector.(roster.ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metricName, value, labels)
	} else {
		s.metricsCollector.RecordValue(metricName, value, labels)
	}
}

// recordErrorMetrics increments the error counter.
func (s Source) recordErrorMetrics(ctx context.Context, errorType string) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operationScan,
		labelStatus:       statusError,
		spanAttrErrorType: errorType,
	}

	if contextualCollector, ok := s.metricsCollector.(roster.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricErrors, labels)
	} else {
		s.metricsCollector.IncrementCounter(metricErrors, labels)
	}
}

// startScanSpan starts a tracing span for the scan if the tracing collector is configured.
func (s Source) startScanSpan(ctx context.Context) (context.Context, SpanContext) {
	if s.tracingCollector == nil {
		return ctx, nil
	}

	return s.tracingCollector.StartSpan(ctx, spanNameScan, map[string]string{
		spanAttrOperation: operationScan,
		spanAttrLocation:  s.opener.Location(),
	})
}

// finishScanSpanSuccess finishes a successful scan span with results.
func (s Source) finishScanSpanSuccess(span SpanContext, recordCount int, duration time.Duration) {
	if s.tracingCollector == nil || span == nil {
		return
	}

	s.tracingCollector.FinishSpan(span, statusSuccess, map[string]string{
		spanAttrRecordCount: fmt.Sprintf("%d", recordCount),
		spanAttrDurationMS:  fmt.Sprintf("%.2f", float64(duration.Nanoseconds())/1e6),
	})
}

// finishScanSpanError finishes a scan span with error details.
func (s Source) finishScanSpanError(span SpanContext, errorType string, duration time.Duration) {
	if s.tracingCollector == nil || span == nil {
		return
	}

	s.tracingCollector.FinishSpan(span, statusFor(errorType), map[string]string{
		spanAttrErrorType:  errorType,
		spanAttrDurationMS: fmt.Sprintf("%.2f", float64(duration.Nanoseconds())/1e6),
	})
}
