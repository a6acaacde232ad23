// Package session provides session management for Jungle games.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Session ID generation
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the in-memory registry behind service.SessionManager. Each
// service.Session holds its own engine, the name of the setup it started from,
// and creation and last access times.
//
// Session Identifiers:
//
// Generated IDs are the first eight hex characters of a random UUID. Lookups
// are case-insensitive.
//
// Concurrency:
//
// The manager guards its map with a read/write lock. It does not lock the
// sessions themselves; the game service takes each session's own lock before
// touching its engine.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", "classic", engine.NewBoard())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
//
//	// drop games idle for a day
//	removed := manager.CleanupExpiredSessions(24 * time.Hour)
package session
