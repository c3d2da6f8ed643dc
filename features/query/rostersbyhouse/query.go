package rostersbyhouse

const (
	queryType = "RostersByHouse"
)

// Query represents the input for grouping names by house and role.
type Query struct{}

// BuildQuery creates a new Query for the house overview.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
