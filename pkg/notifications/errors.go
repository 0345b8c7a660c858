package notifications

import "errors"

var (
	// ErrNotFound is returned when a notification does not exist.
	ErrNotFound = errors.New("notifications: notification not found")

	// ErrMissingID is returned when storing a notification without an ID.
	ErrMissingID = errors.New("notifications: notification ID is required")

	// ErrPartialIngest is returned when some entries of an ingested batch
	// could not be stored.
	ErrPartialIngest = errors.New("notifications: partial ingest")
)
