// Package memdb implements db.BookDB in memory. Saved collections are deep
// copied so later changes to the caller's slice never leak into the database,
// and nothing survives the process. It backs the CLI's --ephemeral mode and
// store tests that do not need a file system.
package memdb
