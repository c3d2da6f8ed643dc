package houses

import (
	"context"

	"github.com/rosterkit/cohortdata/shared/shell"
)

// QueryHandler orchestrates the complete query processing workflow.
// It handles the record source interaction and delegates projection logic to the pure core function.
type QueryHandler struct {
	source shell.ScansRecords
}

// NewQueryHandler creates a new QueryHandler with the provided record source dependency.
func NewQueryHandler(source shell.ScansRecords) QueryHandler {
	return QueryHandler{
		source: source,
	}
}

// Handle executes the complete query processing workflow: Scan -> Project.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Houses, error) {
	records, err := h.source.Scan(ctx)
	if err != nil {
		return Houses{}, err
	}

	return Project(records, query), nil
}
