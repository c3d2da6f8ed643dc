// Package housemates provides query functionality for finding the people who share both house and cohort
// with a given person.
//
// The projection makes two passes over the scanned records. The first resolves the house and cohort of the
// queried name, the second collects every other full name carrying exactly those two fields.
//
// A name that matches no record resolves to an empty house and an empty cohort, so the result lists the
// records that have neither. When several records share the queried name, the NameResolution of the query
// decides which one counts: the last one (default), the first one, or none at all (ResolveStrict fails
// with roster.ErrAmbiguousName).
package housemates
