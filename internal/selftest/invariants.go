package selftest

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/rosterkit/cohortdata/roster"
	"github.com/rosterkit/cohortdata/rosterlib"
	"github.com/rosterkit/cohortdata/shared/core"
)

// invariantChecks returns the checks run against a roster file. records is the parsed content of
// the file and lineCount its number of lines, both read once before the checks run.
func invariantChecks(records roster.Records, lineCount int) []check {
	return []check{
		{"full name is first and last name joined by one space", func(ctx context.Context, lib *rosterlib.Library) error {
			return checkFullNames(ctx, lib, records)
		}},
		{"all records length equals line count", func(ctx context.Context, lib *rosterlib.Library) error {
			return checkRecordCount(ctx, lib, lineCount)
		}},
		{"students of all cohorts equal the union of every cohort", func(ctx context.Context, lib *rosterlib.Library) error {
			return checkCohortUnion(ctx, lib, records)
		}},
		{"rosters partition the records", func(ctx context.Context, lib *rosterlib.Library) error {
			return checkRosterPartition(ctx, lib, records)
		}},
		{"duplicate last names appear on at least two lines", func(ctx context.Context, lib *rosterlib.Library) error {
			return checkDuplicateLastNames(ctx, lib, records)
		}},
		{"housemates share house and cohort", func(ctx context.Context, lib *rosterlib.Library) error {
			return checkHousemates(ctx, lib, records)
		}},
	}
}

// countLines counts newline-terminated lines plus a final unterminated one.
func countLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", roster.ErrSourceUnavailable, err)
	}

	count := bytes.Count(data, []byte("\n"))
	if len(data) > 0 && data[len(data)-1] != '\n' {
		count++
	}

	return count, nil
}

func checkFullNames(ctx context.Context, lib *rosterlib.Library, records roster.Records) error {
	entries, err := lib.AllRecords(ctx)
	if err != nil {
		return err
	}
	if len(entries) != len(records) {
		return fmt.Errorf("got %d entries, want %d", len(entries), len(records))
	}

	for i, record := range records {
		want := record.FirstName + " " + record.LastName
		if entries[i].FullName != want {
			return fmt.Errorf("line %d: got full name %q, want %q", record.Line, entries[i].FullName, want)
		}
	}

	return nil
}

func checkRecordCount(ctx context.Context, lib *rosterlib.Library, lineCount int) error {
	entries, err := lib.AllRecords(ctx)
	if err != nil {
		return err
	}
	if len(entries) != lineCount {
		return fmt.Errorf("got %d entries for %d lines", len(entries), lineCount)
	}

	return nil
}

func checkCohortUnion(ctx context.Context, lib *rosterlib.Library, records roster.Records) error {
	cohorts := make(core.NameSet)
	for _, record := range records {
		if record.HasCohortOrRole() {
			cohorts.Add(record.CohortOrRole)
		}
	}

	union := make([]string, 0)
	for _, cohort := range cohorts.Sorted() {
		names, err := lib.StudentsByCohort(ctx, &cohort)
		if err != nil {
			return err
		}
		union = append(union, names...)
	}
	slices.Sort(union)

	all, err := lib.StudentsByCohort(ctx, nil)
	if err != nil {
		return err
	}

	if !slices.Equal(union, all) {
		return fmt.Errorf("all cohorts yield %d names, the union of %d cohorts yields %d", len(all), len(cohorts), len(union))
	}

	return nil
}

func checkRosterPartition(ctx context.Context, lib *rosterlib.Library, records roster.Records) error {
	rosters, err := lib.RostersByHouse(ctx)
	if err != nil {
		return err
	}

	classified := make(map[core.Bucket][]string)
	for _, record := range records {
		if bucket, ok := core.Classify(record); ok {
			classified[bucket] = append(classified[bucket], record.FullName())
		}
	}

	for _, bucket := range rosterlib.Buckets() {
		names := rosters[bucket]
		if !slices.IsSorted(names) {
			return fmt.Errorf("%s roster is not sorted", bucket)
		}

		want := core.SortedNames(classified[bucket])
		if !slices.Equal(want, names) {
			return fmt.Errorf("%s roster: got %d names, want %d", bucket, len(names), len(want))
		}
	}

	return nil
}

func checkDuplicateLastNames(ctx context.Context, lib *rosterlib.Library, records roster.Records) error {
	duplicates, err := lib.DuplicateLastNames(ctx)
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, record := range records {
		counts[record.LastName]++
	}

	for lastName, count := range counts {
		reported := slices.Contains(duplicates, lastName)
		if reported != (count >= 2) {
			return fmt.Errorf("last name %q on %d lines, reported=%t", lastName, count, reported)
		}
	}

	return nil
}

func checkHousemates(ctx context.Context, lib *rosterlib.Library, records roster.Records) error {
	byName := make(map[string]roster.Records)
	for _, record := range records {
		byName[record.FullName()] = append(byName[record.FullName()], record)
	}

	for name, carriers := range byName {
		// the library resolves duplicate names to their last record by default
		target := carriers[len(carriers)-1]

		mates, err := lib.HousematesFor(ctx, name)
		if err != nil {
			return err
		}

		for _, mate := range mates {
			if mate == name {
				return fmt.Errorf("housemates of %q contain the name itself", name)
			}

			shares := slices.ContainsFunc(byName[mate], func(member roster.Record) bool {
				return member.House == target.House && member.CohortOrRole == target.CohortOrRole
			})
			if !shares {
				return fmt.Errorf("housemate %q of %q differs in house or cohort", mate, name)
			}
		}
	}

	return nil
}
