package logger

import "log/slog"

// Error records an error under the key "error". A nil error yields an empty
// attr that slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// OrderID records the order identifier under the key "order_id".
func OrderID(id string) slog.Attr {
	return slog.String("order_id", id)
}

// UserID records the user identifier under the key "user_id".
func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

// Role records the user role under the key "role".
func Role(role string) slog.Attr {
	return slog.String("role", role)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Count records a count under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
