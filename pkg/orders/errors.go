package orders

import "errors"

// ErrUnknownStatus is returned when a status string is outside the known
// lifecycle vocabulary.
var ErrUnknownStatus = errors.New("orders: unknown status")
