// Package roster provides the core types for querying flat, pipe-delimited roster files.
//
// A roster file holds one person per line with exactly five positional fields:
//
//	first name | last name | house | advisor | cohort-or-role
//
// The house field may be empty (instructors, ghosts), and the last field carries either a
// cohort label such as "Fall 2015" or a single-character role code ("G" for ghost, "I" for
// instructor).
//
// This package defines the Record type, line parsing, the common error definitions and the
// dependency-free observability interfaces shared by the record sources and the query handlers.
//
// Key types:
//   - Record: One parsed line of a roster file
//   - Records: The records of one complete scan, in file order
//   - MalformedRecordError: A line that does not split into at least five fields
//
// Common usage pattern:
//
//	source, err := fileengine.NewSourceFromPath("cohort_data.txt")
//	if err != nil {
//		// handle error
//	}
//
//	records, err := source.Scan(ctx)
//	if err != nil {
//		// handle error (roster.ErrSourceUnavailable, roster.ErrMalformedRecord)
//	}
//
//	for _, record := range records {
//		fmt.Println(record.FullName(), record.House)
//	}
package roster
