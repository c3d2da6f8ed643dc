package shell

import (
	"context"

	"github.com/rosterkit/cohortdata/roster"
)

// ScansRecords defines the interface query handlers need from a record source.
// Every call reads the whole source afresh; implementations keep no parsed state between calls.
type ScansRecords interface {
	Scan(ctx context.Context) (roster.Records, error)
}

// Query represents the contract for all query types.
// The QueryType method enables polymorphic handling and observability instrumentation.
type Query interface {
	QueryType() string
}

// QueryResult represents the contract for all query result types (projections).
// GetScannedRecords returns the number of records the projection was computed from.
type QueryResult interface {
	GetScannedRecords() int
}

// QueryHandler defines the contract for components that process queries and return projections.
// Handlers scan the source and delegate to a pure projection function.
// The generic parameters Q and R ensure type safety between queries and their corresponding results.
type QueryHandler[Q Query, R QueryResult] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
