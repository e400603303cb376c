// Package config loads env-tagged configuration structs from the process
// environment, optionally seeded from a .env file. Parsed configs are cached
// per type for the lifetime of the process.
package config
