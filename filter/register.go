package filter

import "github.com/kbukum/pipekit/flow"

// Register adds all built-in filters to the registry. The trigger and
// sub-process filters resolve their sub-flow plugins against the same
// registry.
func Register(reg *flow.Registry) {
	reg.Register(flow.KindFilter, func() flow.Plugin { return NewAttachMetadata() })
	reg.Register(flow.KindFilter, func() flow.Plugin { return NewBlock() })
	reg.Register(flow.KindFilter, func() flow.Plugin { return NewListToSequence() })
	reg.Register(flow.KindFilter, func() flow.Plugin { return NewLogData() })
	reg.Register(flow.KindFilter, func() flow.Plugin { return NewMoveFiles() })
	reg.Register(flow.KindFilter, func() flow.Plugin { return NewSetMetadata() })
	reg.Register(flow.KindFilter, func() flow.Plugin { return NewSetPlaceholder() })
	reg.Register(flow.KindFilter, func() flow.Plugin { return NewSetStorage() })
	reg.Register(flow.KindFilter, func() flow.Plugin { return NewSubProcess(reg) })
	reg.Register(flow.KindFilter, func() flow.Plugin { return NewTrigger(reg) })
}
