// Package flow provides the core pipeline API for pipekit: plugin
// interfaces and the role-partitioned registry, the shared session,
// the token grammar used to assemble plugins from command lines, and
// the reader/filter(s)/writer execution cycle.
//
// A pipeline is described by a flat token sequence. Any token exactly
// matching a registered plugin name opens a new argument group; each
// group is parsed by the named plugin's own flag schema into a
// configured instance. Assembled instances are classified into at most
// one reader, an ordered filter chain and at most one writer.
package flow
