package roster

import (
	"errors"
)

var ErrSourceUnavailable = errors.New("record source unavailable")
var ErrMalformedRecord = errors.New("malformed record")
var ErrAmbiguousName = errors.New("name matches more than one record")
var ErrEmptySourcePath = errors.New("empty source path supplied")
var ErrNilFileSystem = errors.New("nil file system supplied")
var ErrNilSource = errors.New("nil record source supplied")
var ErrUnknownNameResolution = errors.New("unknown name resolution policy")

const (
	// FieldDelimiter separates the positional fields of one line.
	FieldDelimiter = "|"

	// FieldCount is the minimum number of fields a line must split into.
	FieldCount = 5

	// RoleGhost marks a record as a ghost in the cohort-or-role field.
	RoleGhost = "G"

	// RoleInstructor marks a record as an instructor in the cohort-or-role field.
	RoleInstructor = "I"
)

const (
	fieldFirstName = iota
	fieldLastName
	fieldHouse
	fieldAdvisor
	fieldCohortOrRole
)
