package roster

import (
	"fmt"
	"strings"
	"unicode"
)

// Records is an alias type for a slice of Record.
type Records = []Record

// Record is one parsed line of a roster file.
//
// Fields pass through verbatim: no trimming (apart from trailing whitespace of the whole line),
// no case folding and no normalization of internal whitespace.
type Record struct {
	FirstName    string
	LastName     string
	House        string
	Advisor      string
	CohortOrRole string

	// Line is the 1-based line number the record was parsed from.
	Line int
}

// FullName returns the first and last name joined by a single space.
// It is the identity key used by all name-based lookups; it is not guaranteed to be unique.
func (r Record) FullName() string {
	return r.FirstName + " " + r.LastName
}

// HasHouse reports whether the house field is non-empty.
func (r Record) HasHouse() bool {
	return r.House != ""
}

// HasCohortOrRole reports whether the cohort-or-role field is non-empty.
func (r Record) HasCohortOrRole() bool {
	return r.CohortOrRole != ""
}

// IsGhost reports whether the cohort-or-role field holds the ghost role code.
func (r Record) IsGhost() bool {
	return r.CohortOrRole == RoleGhost
}

// IsInstructor reports whether the cohort-or-role field holds the instructor role code.
func (r Record) IsInstructor() bool {
	return r.CohortOrRole == RoleInstructor
}

// MalformedRecordError reports a line that does not split into at least FieldCount fields.
type MalformedRecordError struct {
	Line       int
	Content    string
	FieldCount int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf(
		"%s: line %d has %d fields, want at least %d: %q",
		ErrMalformedRecord.Error(), e.Line, e.FieldCount, FieldCount, e.Content,
	)
}

// Unwrap makes errors.Is(err, ErrMalformedRecord) hold for every MalformedRecordError.
func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}

// ParseLine is a factory method for Record.
//
// It strips trailing whitespace (including a carriage return), splits the line on FieldDelimiter
// and maps the first FieldCount fields positionally. Additional fields are ignored.
// Returns a *MalformedRecordError if the line has fewer than FieldCount fields.
func ParseLine(lineNumber int, line string) (Record, error) {
	trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
	fields := strings.Split(trimmed, FieldDelimiter)

	if len(fields) < FieldCount {
		return Record{}, &MalformedRecordError{
			Line:       lineNumber,
			Content:    trimmed,
			FieldCount: len(fields),
		}
	}

	return Record{
		FirstName:    fields[fieldFirstName],
		LastName:     fields[fieldLastName],
		House:        fields[fieldHouse],
		Advisor:      fields[fieldAdvisor],
		CohortOrRole: fields[fieldCohortOrRole],
		Line:         lineNumber,
	}, nil
}

// FormatLine renders the record back into its on-disk representation (without a line terminator).
func (r Record) FormatLine() string {
	return strings.Join(
		[]string{r.FirstName, r.LastName, r.House, r.Advisor, r.CohortOrRole},
		FieldDelimiter,
	)
}
