package fileengine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/rosterkit/cohortdata/roster"
	"github.com/rosterkit/cohortdata/roster/fileengine/internal/adapters"
)

const (
	logMsgScanStarted   = "scan started"
	logMsgScanCompleted = "scan completed"
	logMsgScanFailed    = "scan failed"
	logMsgCloseFailed   = "failed to close roster file"
	logMsgOperation     = "rostersource operation: "
	logAttrError        = "error"
	logAttrErrorType    = "error_type"
	logAttrLocation     = "location"
	logAttrRecordCount  = "record_count"
	logAttrDurationMS   = "duration_ms"
)

// Source is the file-backed record source.
// It holds no parsed state; every Scan reads the file from its beginning to its end.
type Source struct {
	opener           adapters.FileOpener
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// NewSourceFromPath creates a new Source reading the file at path with optional configuration.
// The file is not opened here, so a missing file surfaces as roster.ErrSourceUnavailable on Scan.
func NewSourceFromPath(path string, options ...Option) (Source, error) {
	if path == "" {
		return Source{}, roster.ErrEmptySourcePath
	}

	return newSource(adapters.NewOSAdapter(path), options...)
}

// NewSourceFromFS creates a new Source reading the named file inside fsys with optional configuration.
func NewSourceFromFS(fsys fs.FS, name string, options ...Option) (Source, error) {
	if fsys == nil {
		return Source{}, roster.ErrNilFileSystem
	}

	if name == "" {
		return Source{}, roster.ErrEmptySourcePath
	}

	return newSource(adapters.NewFSAdapter(fsys, name), options...)
}

func newSource(opener adapters.FileOpener, options ...Option) (Source, error) {
	s := Source{opener: opener}

	for _, option := range options {
		if err := option(&s); err != nil {
			return Source{}, err
		}
	}

	return s, nil
}

// IsZero reports whether the Source was built without a constructor and has nothing to read from.
func (s Source) IsZero() bool {
	return s.opener == nil
}

// Location returns the path or fs.FS name the Source reads from, or "" for a zero Source.
func (s Source) Location() string {
	if s.IsZero() {
		return ""
	}

	return s.opener.Location()
}

// Scan reads the whole file and returns one roster.Record per line, in file order.
//
// A file that cannot be opened or read fails with roster.ErrSourceUnavailable, a line with fewer
// than five fields fails with a *roster.MalformedRecordError. There are no partial results.
// Lines have no length limit. A zero Source fails with roster.ErrNilSource.
func (s Source) Scan(ctx context.Context) (roster.Records, error) {
	if s.IsZero() {
		return nil, roster.ErrNilSource
	}

	ctx, span := s.startScanSpan(ctx)
	s.logDebug(ctx, logMsgScanStarted, logAttrLocation, s.opener.Location())

	start := time.Now()
	records, err := s.readAll(ctx)
	duration := time.Since(start)

	if err != nil {
		errorType := classifyError(err)
		s.logError(ctx, logMsgScanFailed, err, logAttrErrorType, errorType, logAttrLocation, s.opener.Location())
		s.recordErrorMetrics(ctx, errorType)
		s.recordDurationMetrics(ctx, duration, statusFor(errorType))
		s.finishScanSpanError(span, errorType, duration)

		return nil, err
	}

	s.logOperation(
		ctx,
		logMsgScanCompleted,
		logAttrRecordCount, len(records),
		logAttrDurationMS, toMilliseconds(duration),
	)
	s.recordDurationMetrics(ctx, duration, statusSuccess)
	s.recordValueMetrics(ctx, metricRecordsScanned, float64(len(records)), statusSuccess)
	s.finishScanSpanSuccess(span, len(records), duration)

	return records, nil
}

// readAll opens a fresh handle, parses every line and releases the handle on every exit path.
func (s Source) readAll(ctx context.Context) (roster.Records, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, openErr := s.opener.Open()
	if openErr != nil {
		return nil, fmt.Errorf("%w: open %s: %w", roster.ErrSourceUnavailable, s.opener.Location(), openErr)
	}
	defer s.closeFile(ctx, file)

	reader := bufio.NewReader(file)
	records := make(roster.Records, 0)
	lineNumber := 0

	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("%w: read %s: %w", roster.ErrSourceUnavailable, s.opener.Location(), readErr)
		}

		if line == "" {
			break
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lineNumber++
		record, parseErr := roster.ParseLine(lineNumber, line)
		if parseErr != nil {
			return nil, parseErr
		}

		records = append(records, record)

		if readErr != nil {
			break
		}
	}

	return records, nil
}

// closeFile closes the handle and logs any error.
func (s Source) closeFile(ctx context.Context, file io.Closer) {
	if closeErr := file.Close(); closeErr != nil {
		s.logWarn(ctx, logMsgCloseFailed, logAttrError, closeErr.Error(), logAttrLocation, s.opener.Location())
	}
}
