package helper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/rosterkit/cohortdata/roster/fileengine"
)

const fixtureFileName = "cohort_data.txt"

// HogwartsRosterLines is the shared fixture roster: five houses, ghosts, instructors,
// one caretaker without house or cohort, and the duplicated surnames Creevey, Patil, and Weasley.
var HogwartsRosterLines = []string{
	"Harry|Potter|Gryffindor|McGonagall|Fall 2015",
	"Ron|Weasley|Gryffindor|McGonagall|Fall 2015",
	"Hermione|Granger|Gryffindor|McGonagall|Fall 2015",
	"Ginny|Weasley|Gryffindor|McGonagall|Spring 2016",
	"Colin|Creevey|Gryffindor|McGonagall|Winter 2016",
	"Dennis|Creevey|Gryffindor|McGonagall|Summer 2016",
	"Padma|Patil|Ravenclaw|Flitwick|Fall 2015",
	"Parvati|Patil|Gryffindor|McGonagall|Fall 2015",
	"Cho|Chang|Ravenclaw|Flitwick|Fall 2015",
	"Luna|Lovegood|Ravenclaw|Flitwick|Spring 2016",
	"Cedric|Diggory|Hufflepuff|Sprout|Winter 2016",
	"Hannah|Abbott|Hufflepuff|Sprout|Winter 2016",
	"Zacharias|Smith|Hufflepuff|Sprout|Spring 2016",
	"Draco|Malfoy|Slytherin|Snape|Fall 2015",
	"Vincent|Crabbe|Slytherin|Snape|Summer 2016",
	"Adrian|Pucey|Slytherin|Snape|Winter 2016",
	"Neville|Longbottom|Dumbledore's Army|McGonagall|Fall 2015",
	"Alicia|Spinnet|Dumbledore's Army|McGonagall|Summer 2016",
	"Nearly Headless|Nick|||G",
	"Fat|Friar|||G",
	"Minerva|McGonagall|||I",
	"Severus|Snape|||I",
	"Filius|Flitwick|||I",
	"Argus|Filch|||",
	"Seamus|Finnigan|Gryffindor|McGonagall|Fall 2015",
}

// RosterFileContent joins lines into newline-terminated file content.
func RosterFileContent(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}

// GivenRosterFile writes lines into a fresh roster file below t.TempDir and returns its path.
func GivenRosterFile(t testing.TB, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), fixtureFileName)
	err := os.WriteFile(path, []byte(RosterFileContent(lines...)), 0o600)
	require.NoError(t, err, "error in arranging test data")

	return path
}

// OverwriteRosterFile replaces the content of an existing roster file with lines.
func OverwriteRosterFile(t testing.TB, path string, lines ...string) {
	t.Helper()

	err := os.WriteFile(path, []byte(RosterFileContent(lines...)), 0o600)
	require.NoError(t, err, "error in arranging test data")
}

// GivenFileSource writes lines into a fresh roster file and returns a Source reading it.
func GivenFileSource(t testing.TB, lines []string, options ...fileengine.Option) fileengine.Source {
	t.Helper()

	source, err := fileengine.NewSourceFromPath(GivenRosterFile(t, lines...), options...)
	require.NoError(t, err, "error in arranging test data")

	return source
}

// GivenFSSource returns a Source reading lines from an in-memory file system.
func GivenFSSource(t testing.TB, lines []string, options ...fileengine.Option) fileengine.Source {
	t.Helper()

	fsys := fstest.MapFS{
		fixtureFileName: &fstest.MapFile{Data: []byte(RosterFileContent(lines...))},
	}

	source, err := fileengine.NewSourceFromFS(fsys, fixtureFileName, options...)
	require.NoError(t, err, "error in arranging test data")

	return source
}

// GivenMissingFileSource returns a Source pointing at a path that does not exist.
func GivenMissingFileSource(t testing.TB, options ...fileengine.Option) fileengine.Source {
	t.Helper()

	source, err := fileengine.NewSourceFromPath(filepath.Join(t.TempDir(), "missing.txt"), options...)
	require.NoError(t, err, "error in arranging test data")

	return source
}
