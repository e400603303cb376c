// Package logger builds configured slog.Logger instances: JSON or text
// output, static attributes, environment presets, and context extractors
// that inject request-scoped attributes (such as request IDs) into every
// record at log time.
package logger
