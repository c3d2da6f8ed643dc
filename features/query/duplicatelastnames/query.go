package duplicatelastnames

const (
	queryType = "DuplicateLastNames"
)

// Query represents the input for finding repeated surnames.
type Query struct{}

// BuildQuery creates a new Query for finding repeated surnames.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
