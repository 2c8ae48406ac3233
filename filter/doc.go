// Package filter provides the built-in transformation stages.
//
// Filters sit between the reader and the writer of a pipeline and
// transform, annotate, or drop items. The trigger and sub-process
// filters additionally embed complete nested sub-flows that run against
// the items passing through.
package filter
