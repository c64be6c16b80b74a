// Package cmd implements the command-line interface of lsm, the personal
// library manager. It is the presentation layer on top of the record store
// (lib/store) and the query engine (lib/query): it turns flags and arguments
// into store operations and renders the results as text or json.
//
// The package is organized into several subpackages:
//
//   - book: Commands that change or browse the collection (add, list, rm,
//     read, unread, search, export, genres)
//   - report: Statistics over the collection and information about its storage
//   - util: Shared utilities for flags, configuration and store setup (internal use)
//
// See lsm --help for a list of all commands.
package cmd
