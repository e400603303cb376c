// Package httpserver bootstraps the application's HTTP listener: functional
// options or an env-driven Config, TLS or plain-socket selection based on
// whether certificate and key files are configured, graceful shutdown on
// context cancellation or SIGINT/SIGTERM, start/stop hooks, and a health
// check handler for liveness and readiness probes.
package httpserver
