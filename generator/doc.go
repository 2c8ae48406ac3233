// Package generator produces variable bindings for pipeline templates.
//
// A generator is a plugin that, after validating its configuration,
// yields an ordered sequence of bindings (variable name to string
// value). Multiple generators compose into a Cartesian product whose
// first generator forms the outer loop. Bindings drive template
// expansion: each binding turns the pipeline template into one concrete
// command line.
package generator
