package selftest

import (
	"context"
	"embed"
	"fmt"
	"slices"

	"github.com/rosterkit/cohortdata/roster/fileengine"
	"github.com/rosterkit/cohortdata/rosterlib"
	"github.com/rosterkit/cohortdata/shared/core"
)

//go:embed fixtures/*.txt
var fixtures embed.FS

const (
	fixtureTwoGryffindors = "fixtures/two_gryffindors.txt"
	fixtureWithInstructor = "fixtures/with_instructor.txt"
	fixtureSurnames       = "fixtures/surnames.txt"
)

type check struct {
	name string
	run  func(ctx context.Context, lib *rosterlib.Library) error
}

type scenario struct {
	fixture string
	check
}

func exampleScenarios() []scenario {
	return []scenario{
		{fixtureTwoGryffindors, check{"list houses of two gryffindors", scenarioListHouses}},
		{fixtureTwoGryffindors, check{"students of cohort Fall 2015", scenarioStudentsByCohort}},
		{fixtureWithInstructor, check{"instructor only in instructors roster", scenarioInstructorRoster}},
		{fixtureTwoGryffindors, check{"cohort for known and unknown name", scenarioCohortFor}},
		{fixtureSurnames, check{"duplicate last names", scenarioDuplicateLastNames}},
		{fixtureTwoGryffindors, check{"housemates of Harry Potter", scenarioHousemates}},
	}
}

func openFixture(name string, options ...rosterlib.Option) (*rosterlib.Library, error) {
	source, err := fileengine.NewSourceFromFS(fixtures, name)
	if err != nil {
		return nil, err
	}

	return rosterlib.New(source, options...)
}

func scenarioListHouses(ctx context.Context, lib *rosterlib.Library) error {
	got, err := lib.ListHouses(ctx)
	if err != nil {
		return err
	}

	return expectNames([]string{"Gryffindor"}, got)
}

func scenarioStudentsByCohort(ctx context.Context, lib *rosterlib.Library) error {
	cohort := "Fall 2015"

	got, err := lib.StudentsByCohort(ctx, &cohort)
	if err != nil {
		return err
	}

	return expectNames([]string{"Harry Potter", "Ron Weasley"}, got)
}

func scenarioInstructorRoster(ctx context.Context, lib *rosterlib.Library) error {
	rosters, err := lib.RostersByHouse(ctx)
	if err != nil {
		return err
	}

	for _, bucket := range rosterlib.Buckets() {
		want := []string{}
		switch bucket {
		case core.BucketGryffindor:
			want = []string{"Harry Potter", "Ron Weasley"}
		case core.BucketInstructors:
			want = []string{"Filius Flitwick"}
		}

		if err = expectNames(want, rosters[bucket]); err != nil {
			return fmt.Errorf("%s roster: %w", bucket, err)
		}
	}

	houses, err := lib.ListHouses(ctx)
	if err != nil {
		return err
	}

	return expectNames([]string{"Gryffindor"}, houses)
}

func scenarioCohortFor(ctx context.Context, lib *rosterlib.Library) error {
	cohort, found, err := lib.CohortFor(ctx, "Harry Potter")
	if err != nil {
		return err
	}
	if !found || cohort != "Fall 2015" {
		return fmt.Errorf("cohort for Harry Potter: got %q (found=%t), want %q", cohort, found, "Fall 2015")
	}

	cohort, found, err = lib.CohortFor(ctx, "Nobody Here")
	if err != nil {
		return err
	}
	if found {
		return fmt.Errorf("cohort for Nobody Here: got %q, want absent", cohort)
	}

	return nil
}

func scenarioDuplicateLastNames(ctx context.Context, lib *rosterlib.Library) error {
	got, err := lib.DuplicateLastNames(ctx)
	if err != nil {
		return err
	}

	return expectNames([]string{"Weasley"}, got)
}

func scenarioHousemates(ctx context.Context, lib *rosterlib.Library) error {
	got, err := lib.HousematesFor(ctx, "Harry Potter")
	if err != nil {
		return err
	}

	return expectNames([]string{"Ron Weasley"}, got)
}

func expectNames(want, got []string) error {
	if !slices.Equal(want, got) {
		return fmt.Errorf("got %q, want %q", got, want)
	}

	return nil
}
