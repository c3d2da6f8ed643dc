// Package selftest runs the documented example scenarios of the roster library against embedded fixtures
// and, given a roster file, checks the query invariants against it.
//
// A run produces a Report that serializes to JSON. The report passes only when every check passes.
package selftest
