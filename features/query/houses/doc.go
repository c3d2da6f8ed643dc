// Package houses provides query functionality for listing the distinct houses named in a roster.
//
// Records with an empty house field (ghosts, instructors, staff) are skipped. The result is a
// set: every house appears once, sorted by code point.
package houses
