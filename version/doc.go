// Package version provides build version information for the pipekit
// binary.
//
// Version, git commit, and build time are set at compile time via
// -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/pipekit/version.Version=1.0.0"
//
// When not set, the values fall back to the VCS metadata embedded by
// the Go toolchain.
package version
