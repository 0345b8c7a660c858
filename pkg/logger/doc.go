// Package logger builds configured log/slog loggers and provides attribute
// helpers so log keys stay consistent across the codebase.
//
// Components take a *slog.Logger through their options and default to
// slog.Default(); only the composition root calls logger.New.
//
//	log := logger.New(logger.WithDevelopment("deliveryctl"))
//	logger.SetAsDefault(log)
package logger
