// Package filedb implements db.BookDB on top of a single file.
//
// The whole collection is encoded with a codec.ICodec (indented JSON by
// default) and written with a write-to-temp-then-rename sequence: the new
// content goes to a temporary file in the target's directory, is flushed to
// disk, and only then replaces the target with an atomic rename. A crash during
// Save therefore leaves either the old or the new collection on disk, never a
// truncated mix.
//
// Load treats a missing file, or one containing only whitespace, as an empty
// collection. Anything else that fails to decode is reported wrapped in
// db.ErrCorrupt and the file is left untouched.
package filedb
