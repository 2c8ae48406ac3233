// Package process executes subprocesses with context-driven shutdown.
//
// It backs the external entry point of the run driver: each expanded
// command line is run as a child process, with SIGTERM/SIGKILL
// escalation when the context is canceled.
package process
