// Package notifications implements the client-side notification center: the
// notification model the backend sends, a Store abstraction for keeping them
// around, and a Center that ingests batches arriving over the real-time
// tracker and answers the queries notification views need (list, unread
// count, mark read).
//
// The in-memory store covers the single-user web client case; a different
// Store implementation can be swapped in without touching the Center.
package notifications
