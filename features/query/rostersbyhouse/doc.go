// Package rostersbyhouse provides query functionality for grouping full names into the seven rosters of
// the house overview: the five houses, the ghosts and the instructors.
//
// Each record lands in at most one roster, decided by core.Classify. Records matching no roster are
// dropped. The roster order is fixed and every roster is sorted by code point.
package rostersbyhouse
