// Package apiclient is the typed HTTP client for the delivery platform
// backend. Every endpoint speaks the same JSON envelope, {"data": ...} on
// success and {"error": "..."} on failure, and the client turns that envelope
// into typed results and errors, so callers never touch HTTP plumbing.
//
// Authentication is a bearer token replayed on each request; the token comes
// from a TokenSource, typically the session store. The client also
// implements realtime.Source, so it can be handed straight to a tracker:
//
//	client, err := apiclient.New(cfg, apiclient.WithTokenSource(
//	    apiclient.NewSessionTokenSource(store),
//	))
//	tracker := realtime.New(client)
package apiclient
