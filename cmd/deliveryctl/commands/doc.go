// Package commands implements the deliveryctl CLI, a terminal client for
// the delivery platform used by operators and during development. It is
// also the composition root: configuration, logger, session store, API
// client, and real-time tracker are constructed here and handed to the
// commands explicitly.
package commands
