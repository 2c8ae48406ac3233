package writer

import "github.com/kbukum/pipekit/flow"

// Register adds all built-in writers to the registry.
func Register(reg *flow.Registry) {
	reg.Register(flow.KindWriter, func() flow.Plugin { return NewConsole() })
	reg.Register(flow.KindWriter, func() flow.Plugin { return NewDeleteFiles() })
	reg.Register(flow.KindWriter, func() flow.Plugin { return NewSendEmail() })
	reg.Register(flow.KindWriter, func() flow.Plugin { return NewTextFile() })
	reg.Register(flow.KindWriter, func() flow.Plugin { return NewToStorage() })
}
