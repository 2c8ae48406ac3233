// Package exec drives repeated pipeline execution from a template.
//
// A pipeline template is a token sequence containing {name} variables.
// For every binding produced by the configured generators, the driver
// expands the template into a concrete command line and either prints
// it (dry run) or hands it to the pipeline entry point.
package exec
