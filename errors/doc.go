// Package errors provides unified error handling for pipekit.
// It implements structured error types with machine-readable codes for
// the setup-time failure classes (configuration, composition, validation)
// and helpers to classify errors that cross package boundaries.
package errors
