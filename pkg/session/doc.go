// Package session persists the handful of values page-level code keeps
// between visits: the bearer token, the user's role, and the user ID. It is
// a plain key-value store, no session protocol and no expiry logic; the
// backend decides when a token stops working.
//
// Two implementations are provided: MemoryStore for tests and FileStore,
// which keeps the values in a JSON file and survives process restarts.
package session
