package adapters

import "io"

// FileOpener defines the interface for opening the roster file needed by the source.
// Every call must return a fresh, independent handle.
type FileOpener interface {
	Open() (io.ReadCloser, error)
	Location() string
}
