// Package fileengine provides the file-backed record source for roster queries.
//
// A Source re-reads its file on every Scan: there is no parsed state and no cache shared between
// calls, so each query sees the file exactly as it is at the time of the call. Every Scan opens
// its own handle and releases it on every exit path, which makes a Source safe for concurrent use
// as long as the underlying file supports independent reads.
//
// Key features:
//   - Two opener kinds: a path on disk or a named file inside any fs.FS
//   - Strict line parsing: a line with fewer than five fields fails the whole scan
//   - Optional logging, metrics and tracing via functional options
//
// Usage examples:
//
//	// Basic usage
//	source, _ := fileengine.NewSourceFromPath("cohort_data.txt")
//
//	// Embedded fixtures
//	source, _ := fileengine.NewSourceFromFS(fixtures, "scenarios/gryffindors.txt")
//
//	// With operational logging
//	source, _ := fileengine.NewSourceFromPath(
//		"cohort_data.txt",
//		fileengine.WithLogger(slog.Default()),
//	)
//
//	records, _ := source.Scan(ctx)
package fileengine
