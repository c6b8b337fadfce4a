// Package logger builds the process-wide zap logger. Components derive
// child loggers from it with zap.String("component", ...).
package logger
