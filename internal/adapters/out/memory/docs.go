// Package memory provides map backed implementations of the ports for tests, demos
// and the STORAGE_DRIVER=memory mode.
//
// Repositories keep flattened records rather than aggregates and rebuild snapshots
// through Restore on every read, the same path the database adapters take. Saves
// are last write wins. All types are safe for concurrent use.
package memory
