package houses

const (
	queryType = "Houses"
)

// Query represents the input for listing all houses.
// This query uses an empty struct since it doesn't require any input parameters.
type Query struct{}

// BuildQuery creates a new Query for listing all houses.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
