package adapters

import (
	"io"
	"os"
)

// OSAdapter opens a roster file by path on the local file system.
type OSAdapter struct {
	path string
}

// NewOSAdapter creates a new OS file adapter.
func NewOSAdapter(path string) *OSAdapter {
	return &OSAdapter{path: path}
}

// Open opens the file for reading.
func (a *OSAdapter) Open() (io.ReadCloser, error) {
	return os.Open(a.path)
}

// Location returns the path of the file.
func (a *OSAdapter) Location() string {
	return a.path
}
