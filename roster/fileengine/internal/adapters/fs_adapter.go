package adapters

import (
	"io"
	"io/fs"
)

// FSAdapter opens a named roster file inside an fs.FS.
type FSAdapter struct {
	fsys fs.FS
	name string
}

// NewFSAdapter creates a new fs.FS adapter.
func NewFSAdapter(fsys fs.FS, name string) *FSAdapter {
	return &FSAdapter{fsys: fsys, name: name}
}

// Open opens the named file inside the file system.
func (a *FSAdapter) Open() (io.ReadCloser, error) {
	return a.fsys.Open(a.name)
}

// Location returns the name of the file inside the file system.
func (a *FSAdapter) Location() string {
	return a.name
}
