// Package logger provides structured logging for pipekit using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers so every plugin logs under
// its registered name.
//
// # Usage
//
//	log := logger.Get("list-files")
//	log.Info("listing files", logger.Fields("dir", dir))
package logger
