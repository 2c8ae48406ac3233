// Package reader provides the built-in input stages.
//
// A reader produces the items a pipeline operates on. Finite readers
// (files, storage) finish after one pass; infinite readers (cron,
// watch-dir, get-email) keep producing until the session is stopped.
package reader
