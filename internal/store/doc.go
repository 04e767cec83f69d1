// Package store provides the persistence backends for the counter record.
//
// Every backend keeps one JSON record under the fixed key
// application.StorageKey and implements counter.Persistence:
//   - [Bolt] (default): a BoltDB bucket named "counter"
//   - [SQLiteWrapper]: a kv table in a pure Go SQLite database
//   - [File]: a JSON document written atomically
//
// Use [Open] to select a backend from model.StorageConfig:
//
//	s, err := store.Open(cfg.Storage, appDir)
//	st, ok := s.Load()
//
// Load never fails. Unreadable, malformed or out-of-range records are
// logged at debug level and reported as absent, so the counter starts at
// zero instead of surfacing an error.
package store
