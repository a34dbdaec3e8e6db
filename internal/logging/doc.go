// Package logging assembles the slog loggers used across legenda.
//
// It owns handler selection (console, JSON, or automatic detection based on
// whether the output is a terminal), level parsing, and the request-id
// context helpers that let HTTP handlers and services tag log lines with the
// same correlation identifier.
package logging
