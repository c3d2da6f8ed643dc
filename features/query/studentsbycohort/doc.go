// Package studentsbycohort provides query functionality for listing the full names of students in a cohort.
//
// A query either matches one cohort label exactly (case-sensitive, no trimming) or matches every record
// whose cohort-or-role field is non-empty. The second form includes ghosts and instructors, whose role
// code occupies the cohort field.
package studentsbycohort
