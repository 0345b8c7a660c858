// Package realtime normalizes push-like update delivery over the polling
// transport the backend actually offers. A Tracker owns a single poll loop
// against a Source (the API client), and fans each update payload out to
// every subscribed handler in subscription order.
//
// The Tracker is an explicit, constructed service: the application's
// composition root creates one and hands it to the views that need live
// data. There is no package-level singleton.
//
//	tracker := realtime.New(apiClient, realtime.WithInterval(10*time.Second))
//	defer tracker.Close()
//
//	sub := tracker.Subscribe(func(u realtime.Updates) {
//	    refreshDashboard(u.Orders)
//	})
//	defer sub.Stop()
//
// The first subscriber starts the loop (with an immediate first fetch); the
// last one to leave stops it, so an idle application makes no requests.
// Exactly one poll is in flight at any time: the loop fetches synchronously,
// so a slow response defers the next cycle instead of overlapping it.
//
// Fetch failures and malformed payloads are logged and skipped; handlers
// only ever see well-formed payloads with HasUpdates set. Consecutive
// failures can optionally slow the loop down via a Backoff strategy; by
// default the fixed interval is kept.
package realtime
