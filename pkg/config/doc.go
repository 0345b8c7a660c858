// Package config loads configuration structs from environment variables,
// with a one-time attempt to read a .env file for local development.
//
// Each component declares its own config struct with `env` tags and the
// composition root loads it once at startup:
//
//	var cfg realtime.Config
//	config.MustLoad(&cfg)
//
// There is no caching layer: configs are loaded exactly once, at the
// composition root, and passed down explicitly.
package config
