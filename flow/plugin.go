package flow

import (
	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/logger"
)

// Plugin is the minimal contract every pipeline handler satisfies.
// The registered name doubles as the sub-command token in the pipeline
// grammar.
type Plugin interface {
	// Name returns the registered name, used as boundary token.
	Name() string
	// Description returns a one-line description for help output.
	Description() string
	// Bind registers the plugin's options on the flag set.
	Bind(fs *pflag.FlagSet)
}

// Lifecycle is implemented by plugins that hold resources for the
// duration of one pipeline run.
type Lifecycle interface {
	// Init prepares the plugin for processing, e.g. opens files.
	Init(sess *Session) error
	// Finalize releases resources after processing has ended.
	Finalize() error
}

// Reader produces items. Read pushes items through emit until the
// current batch is exhausted; the execution loop keeps calling Read
// until Finished reports true. Infinite readers (polling, schedules)
// never finish and instead watch the session's stopped flag.
type Reader interface {
	Plugin
	Lifecycle
	Read(emit func(Payload) error) error
	Finished() bool
}

// FileSource is implemented by readers that can have their input
// files injected directly, bypassing their own source options. Used
// by readers that discover files and hand them to a base reader.
type FileSource interface {
	SetSource(paths []string)
}

// Filter transforms items.
type Filter interface {
	Plugin
	Lifecycle
	Process(data Payload) (Payload, error)
}

// Writer consumes items.
type Writer interface {
	Plugin
	Lifecycle
	Write(data Payload) error
}

// OptionBearer is implemented by plugins whose options struct carries
// `validate` tags. The struct is checked right after its flag group has
// been parsed, before the instance is accepted into a pipeline.
type OptionBearer interface {
	Options() any
}

// Base carries the state shared by all lifecycle plugins: the session
// and a component logger tagged with the plugin name.
type Base struct {
	Session *Session
	Log     *logger.Logger
}

// Attach wires the session and the component logger. Plugins call this
// from Init before performing their own checks.
func (b *Base) Attach(name string, sess *Session) {
	b.Session = sess
	b.Log = logger.Get(name)
}

// Finalize is a no-op so simple plugins only implement what they need.
func (b *Base) Finalize() error { return nil }
