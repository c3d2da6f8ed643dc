package rosterlib

import (
	"context"

	"github.com/rosterkit/cohortdata/features/query/allrecords"
	"github.com/rosterkit/cohortdata/features/query/cohortfor"
	"github.com/rosterkit/cohortdata/features/query/duplicatelastnames"
	"github.com/rosterkit/cohortdata/features/query/housemates"
	"github.com/rosterkit/cohortdata/features/query/houses"
	"github.com/rosterkit/cohortdata/features/query/rostersbyhouse"
	"github.com/rosterkit/cohortdata/features/query/studentsbycohort"
	"github.com/rosterkit/cohortdata/roster"
	"github.com/rosterkit/cohortdata/roster/fileengine"
	"github.com/rosterkit/cohortdata/shared/core"
	"github.com/rosterkit/cohortdata/shared/shell"
	"github.com/rosterkit/cohortdata/shared/shell/observable"
)

// Bucket identifies one of the seven rosters returned by RostersByHouse.
type Bucket = core.Bucket

// Buckets returns the seven buckets in the order RostersByHouse reports them.
func Buckets() [core.BucketCount]Bucket {
	return core.Buckets()
}

// BucketNames returns the display names of the seven buckets, in RostersByHouse order.
func BucketNames() [core.BucketCount]string {
	var names [core.BucketCount]string
	for i, bucket := range core.Buckets() {
		names[i] = bucket.String()
	}

	return names
}

type zeroer interface {
	IsZero() bool
}

// Library answers the roster queries over one record source.
type Library struct {
	nameResolution     housemates.NameResolution
	houses             shell.QueryHandler[houses.Query, houses.Houses]
	studentsByCohort   shell.QueryHandler[studentsbycohort.Query, studentsbycohort.StudentsByCohort]
	rostersByHouse     shell.QueryHandler[rostersbyhouse.Query, rostersbyhouse.RostersByHouse]
	allRecords         shell.QueryHandler[allrecords.Query, allrecords.AllRecords]
	cohortFor          shell.QueryHandler[cohortfor.Query, cohortfor.CohortFor]
	duplicateLastNames shell.QueryHandler[duplicatelastnames.Query, duplicatelastnames.DuplicateLastNames]
	housemates         shell.QueryHandler[housemates.Query, housemates.Housemates]
}

// New creates a Library over source.
// Returns roster.ErrNilSource for a nil or zero source and any error returned by an option.
func New(source shell.ScansRecords, opts ...Option) (*Library, error) {
	if source == nil {
		return nil, roster.ErrNilSource
	}

	if z, ok := source.(zeroer); ok && z.IsZero() {
		return nil, roster.ErrNilSource
	}

	s, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	return newLibrary(source, s)
}

// Open creates a Library over the roster file at path. The observability options also instrument the
// file source.
func Open(path string, opts ...Option) (*Library, error) {
	s, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	source, err := fileengine.NewSourceFromPath(path, sourceOptions(s)...)
	if err != nil {
		return nil, err
	}

	return newLibrary(source, s)
}

func applyOptions(opts []Option) (settings, error) {
	s := settings{nameResolution: housemates.ResolveLastMatch}
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return settings{}, err
		}
	}

	return s, nil
}

func sourceOptions(s settings) []fileengine.Option {
	var options []fileengine.Option
	if s.logger != nil {
		options = append(options, fileengine.WithLogger(s.logger))
	}
	if s.contextualLogger != nil {
		options = append(options, fileengine.WithContextualLogger(s.contextualLogger))
	}
	if s.metricsCollector != nil {
		options = append(options, fileengine.WithMetrics(s.metricsCollector))
	}
	if s.tracingCollector != nil {
		options = append(options, fileengine.WithTracing(s.tracingCollector))
	}

	return options
}

func newLibrary(source shell.ScansRecords, s settings) (*Library, error) {
	lib := &Library{nameResolution: s.nameResolution}

	var err error
	if lib.houses, err = instrument[houses.Query, houses.Houses](
		houses.NewQueryHandler(source), s,
	); err != nil {
		return nil, err
	}
	if lib.studentsByCohort, err = instrument[studentsbycohort.Query, studentsbycohort.StudentsByCohort](
		studentsbycohort.NewQueryHandler(source), s,
	); err != nil {
		return nil, err
	}
	if lib.rostersByHouse, err = instrument[rostersbyhouse.Query, rostersbyhouse.RostersByHouse](
		rostersbyhouse.NewQueryHandler(source), s,
	); err != nil {
		return nil, err
	}
	if lib.allRecords, err = instrument[allrecords.Query, allrecords.AllRecords](
		allrecords.NewQueryHandler(source), s,
	); err != nil {
		return nil, err
	}
	if lib.cohortFor, err = instrument[cohortfor.Query, cohortfor.CohortFor](
		cohortfor.NewQueryHandler(source), s,
	); err != nil {
		return nil, err
	}
	if lib.duplicateLastNames, err = instrument[duplicatelastnames.Query, duplicatelastnames.DuplicateLastNames](
		duplicatelastnames.NewQueryHandler(source), s,
	); err != nil {
		return nil, err
	}
	if lib.housemates, err = instrument[housemates.Query, housemates.Housemates](
		housemates.NewQueryHandler(source), s,
	); err != nil {
		return nil, err
	}

	return lib, nil
}

// instrument wraps a core handler with the observable wrapper when any collector is configured.
func instrument[Q shell.Query, R shell.QueryResult](
	coreHandler shell.QueryHandler[Q, R],
	s settings,
) (shell.QueryHandler[Q, R], error) {
	if !s.instrumented() {
		return coreHandler, nil
	}

	return observable.NewQueryWrapper[Q, R](
		coreHandler,
		observable.WithQueryLogging[Q, R](s.logger),
		observable.WithQueryContextualLogging[Q, R](s.contextualLogger),
		observable.WithQueryMetrics[Q, R](s.metricsCollector),
		observable.WithQueryTracing[Q, R](s.tracingCollector),
	)
}

// ListHouses returns every distinct non-empty house, sorted.
func (l *Library) ListHouses(ctx context.Context) ([]string, error) {
	result, err := l.houses.Handle(ctx, houses.BuildQuery())
	if err != nil {
		return nil, err
	}

	return result.Names, nil
}

// StudentsByCohort returns the sorted full names of the records in cohort.
// A nil cohort selects every record whose cohort-or-role field is non-empty.
func (l *Library) StudentsByCohort(ctx context.Context, cohort *string) ([]string, error) {
	query := studentsbycohort.BuildQuery()
	if cohort != nil {
		query = studentsbycohort.BuildQueryForCohort(*cohort)
	}

	result, err := l.studentsByCohort.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	return result.Names, nil
}

// StudentsByCohortLabel is StudentsByCohort for callers passing a label, where "All" selects every cohort.
func (l *Library) StudentsByCohortLabel(ctx context.Context, label string) ([]string, error) {
	result, err := l.studentsByCohort.Handle(ctx, studentsbycohort.BuildQueryFromLabel(label))
	if err != nil {
		return nil, err
	}

	return result.Names, nil
}

// RostersByHouse returns the seven sorted rosters, indexed like Buckets.
func (l *Library) RostersByHouse(ctx context.Context) ([core.BucketCount][]string, error) {
	result, err := l.rostersByHouse.Handle(ctx, rostersbyhouse.BuildQuery())
	if err != nil {
		return [core.BucketCount][]string{}, err
	}

	return result.Rosters, nil
}

// AllRecords returns one entry per line, in file order.
func (l *Library) AllRecords(ctx context.Context) ([]allrecords.Entry, error) {
	result, err := l.allRecords.Handle(ctx, allrecords.BuildQuery())
	if err != nil {
		return nil, err
	}

	return result.Entries, nil
}

// CohortFor returns the cohort-or-role field of the first record named name.
// found is false when no record carries the name; that is not an error.
func (l *Library) CohortFor(ctx context.Context, name string) (cohort string, found bool, err error) {
	result, err := l.cohortFor.Handle(ctx, cohortfor.BuildQuery(name))
	if err != nil {
		return "", false, err
	}

	return result.Cohort, result.Found, nil
}

// DuplicateLastNames returns every surname found on at least two lines, once each, sorted.
func (l *Library) DuplicateLastNames(ctx context.Context) ([]string, error) {
	result, err := l.duplicateLastNames.Handle(ctx, duplicatelastnames.BuildQuery())
	if err != nil {
		return nil, err
	}

	return result.LastNames, nil
}

// HousematesFor returns the sorted set of other full names sharing house and cohort with name.
// The name resolution configured with WithNameResolution applies.
func (l *Library) HousematesFor(ctx context.Context, name string) ([]string, error) {
	query := housemates.BuildQuery(name, housemates.WithNameResolution(l.nameResolution))

	result, err := l.housemates.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	return result.Names, nil
}
