package reader

import "github.com/kbukum/pipekit/flow"

// Register adds all built-in readers to the registry.
func Register(reg *flow.Registry) {
	reg.Register(flow.KindReader, func() flow.Plugin { return NewCron() })
	reg.Register(flow.KindReader, func() flow.Plugin { return NewFromStorage() })
	reg.Register(flow.KindReader, func() flow.Plugin { return NewGetEmail() })
	reg.Register(flow.KindReader, func() flow.Plugin { return NewListFiles() })
	reg.Register(flow.KindReader, func() flow.Plugin { return NewStart() })
	reg.Register(flow.KindReader, func() flow.Plugin { return NewTextFile() })
	reg.Register(flow.KindReader, func() flow.Plugin { return NewWatchDir(reg) })
}
