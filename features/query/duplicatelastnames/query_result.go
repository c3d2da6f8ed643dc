package duplicatelastnames

// DuplicateLastNames represents the query result containing the repeated surnames, sorted by code point.
// Occurrences maps each of them to the number of lines it appears on.
type DuplicateLastNames struct {
	LastNames      []string
	Occurrences    map[string]int
	ScannedRecords int
}

// GetScannedRecords returns the number of records the projection was built from.
func (r DuplicateLastNames) GetScannedRecords() int {
	return r.ScannedRecords
}
