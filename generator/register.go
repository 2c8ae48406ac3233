package generator

import "github.com/kbukum/pipekit/flow"

// Register adds all built-in generators to the registry.
func Register(reg *flow.Registry) {
	reg.Register(flow.KindGenerator, func() flow.Plugin { return NewCSVFile() })
	reg.Register(flow.KindGenerator, func() flow.Plugin { return NewDirs() })
	reg.Register(flow.KindGenerator, func() flow.Plugin { return NewList() })
	reg.Register(flow.KindGenerator, func() flow.Plugin { return NewNull() })
	reg.Register(flow.KindGenerator, func() flow.Plugin { return NewPrompt() })
	reg.Register(flow.KindGenerator, func() flow.Plugin { return NewRange() })
	reg.Register(flow.KindGenerator, func() flow.Plugin { return NewTextFile() })
}
