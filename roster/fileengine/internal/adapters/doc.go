// Package adapters provide file opener implementations for the roster file source.
//
// This package implements the adapter pattern to support multiple ways of reaching a roster file:
// a path on the local file system (os.Open) and a named file inside any fs.FS (embed.FS,
// fstest.MapFS, os.DirFS). All adapters provide equivalent functionality through a common
// FileOpener interface, so the source reads every kind of file the same way.
package adapters
