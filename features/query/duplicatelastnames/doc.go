// Package duplicatelastnames provides query functionality for finding surnames that occur on more than one line.
//
// Every surname is reported once no matter how often it repeats. Identical full names on several lines
// count as repetitions of their surname.
package duplicatelastnames
