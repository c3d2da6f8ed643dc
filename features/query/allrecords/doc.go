// Package allrecords provides query functionality for listing every record of a roster in file order.
package allrecords
