// Package rosterlib exposes the roster queries as plain method calls over one record source.
//
// Every call performs one fresh scan of the source; nothing is cached between calls. A Library holds no
// mutable state and may be used from several goroutines at once as long as its source allows concurrent
// scans, which fileengine.Source does.
//
// Example:
//
//	lib, err := rosterlib.Open("cohort_data.txt")
//	if err != nil {
//		return err
//	}
//
//	houses, err := lib.ListHouses(ctx)
//	cohort, found, err := lib.CohortFor(ctx, "Harry Potter")
//
// Observability is opt-in through WithLogger, WithContextualLogger, WithMetrics and WithTracing. The same
// collectors instrument the query handlers and, when the library opens the file itself, the file source.
package rosterlib
