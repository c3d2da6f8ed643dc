package allrecords

const (
	queryType = "AllRecords"
)

// Query represents the input for listing all records.
type Query struct{}

// BuildQuery creates a new Query for listing all records.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
