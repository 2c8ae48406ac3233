package flow

import (
	"testing"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
)

// dropFilter discards every item.
type dropFilter struct {
	Base
}

func (f *dropFilter) Name() string           { return "drop" }
func (f *dropFilter) Description() string    { return "drops everything" }
func (f *dropFilter) Bind(fs *pflag.FlagSet) {}
func (f *dropFilter) Init(sess *Session) error {
	f.Attach("drop", sess)
	return nil
}
func (f *dropFilter) Process(data Payload) (Payload, error) {
	return List(nil), nil
}

func TestExecute_ReaderFilterWriter(t *testing.T) {
	reader := &fakeReader{name: "readerA", payloads: []Payload{Item("a"), Item("b")}}
	filter := &fakeFilter{name: "filterA", fn: func(v any) any { return v.(string) + "_x" }}
	writer := &fakeWriter{name: "writerB"}
	sess := NewSession()

	if err := Execute(reader, filter, writer, sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(writer.written) != 2 || writer.written[0] != "a_x" || writer.written[1] != "b_x" {
		t.Fatalf("unexpected output: %v", writer.written)
	}
	if reader.inited != 1 || filter.inited != 1 || writer.inited != 1 {
		t.Fatal("every plugin must be initialized once")
	}
	if reader.final != 1 || filter.final != 1 || writer.final != 1 {
		t.Fatal("every plugin must be finalized once")
	}
}

func TestExecute_NoFilter(t *testing.T) {
	reader := &fakeReader{name: "readerA", payloads: []Payload{Item("a")}}
	writer := &fakeWriter{name: "writerB"}
	if err := Execute(reader, nil, writer, NewSession()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(writer.written) != 1 || writer.written[0] != "a" {
		t.Fatalf("unexpected output: %v", writer.written)
	}
}

func TestExecute_NoReader(t *testing.T) {
	writer := &fakeWriter{name: "writerB"}
	err := Execute(nil, nil, writer, NewSession())
	if err == nil {
		t.Fatal("expected composition error")
	}
	if !errors.IsComposition(err) {
		t.Fatalf("expected composition error, got %v", err)
	}
}

func TestExecute_EmptyPayloadSkipsWriter(t *testing.T) {
	reader := &fakeReader{name: "readerA", payloads: []Payload{Item("a")}}
	writer := &fakeWriter{name: "writerB"}
	if err := Execute(reader, &dropFilter{}, writer, NewSession()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(writer.written) != 0 {
		t.Fatalf("writer must not see dropped items: %v", writer.written)
	}
}

func TestExecute_StoppedSession(t *testing.T) {
	reader := &fakeReader{name: "readerA", payloads: []Payload{Item("a")}}
	writer := &fakeWriter{name: "writerB"}
	sess := NewSession()
	sess.Stop()
	if err := Execute(reader, nil, writer, sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(writer.written) != 0 {
		t.Fatal("stopped session must not read")
	}
}
