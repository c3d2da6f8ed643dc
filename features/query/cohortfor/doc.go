// Package cohortfor provides query functionality for resolving the cohort-or-role field of a person by full name.
//
// The first record whose full name equals the queried name exactly decides the answer. An unknown name
// is a regular outcome reported through CohortFor.Found, not an error.
package cohortfor
