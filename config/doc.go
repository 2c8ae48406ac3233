// Package config loads the tool-level settings of the pipekit binary.
//
// Settings come from an optional pipekit.yml file plus an optional .env
// file, with environment variables taking precedence using the PIPEKIT_
// prefix and underscore-separated paths (e.g. PIPEKIT_LOGGING_LEVEL).
package config
