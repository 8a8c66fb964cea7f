// Package storage archives accepted plans in a local SQLite database.
//
// The archive keeps plan metadata alongside the full serialized plan so
// earlier runs can be listed, re-traced, or replayed without
// regenerating them.
package storage
