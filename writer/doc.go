// Package writer provides the built-in output stages.
package writer
