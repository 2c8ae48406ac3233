package flow

import (
	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/logger"
)

// Execute runs one complete reader → filter → writer cycle with the
// shared session. All members are initialized up front; the loop keeps
// reading until the reader reports completion or the session is
// stopped. Read/process/write errors propagate unguarded. Finalize
// errors are logged and swallowed so outer finalization always
// proceeds.
func Execute(reader Reader, filter Filter, writer Writer, sess *Session) error {
	if reader == nil {
		return errors.Composition("no reader defined")
	}

	sub := &SubFlow{Reader: reader, Filter: filter, Writer: writer}
	if err := sub.Init(sess); err != nil {
		return err
	}
	defer finalize(sub)

	for !reader.Finished() && !sess.Stopped() {
		err := reader.Read(func(data Payload) error {
			return forward(data, filter, writer)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// forward pushes one payload through the filter (if any) into the
// writer (if any).
func forward(data Payload, filter Filter, writer Writer) error {
	var err error
	if filter != nil {
		data, err = filter.Process(data)
		if err != nil {
			return err
		}
	}
	if writer != nil && data.Len() > 0 {
		return writer.Write(data)
	}
	return nil
}

func finalize(sub *SubFlow) {
	for _, plugin := range sub.Plugins() {
		lc, ok := plugin.(Lifecycle)
		if !ok {
			continue
		}
		if err := lc.Finalize(); err != nil {
			logger.Get(plugin.Name()).Error("finalize failed",
				logger.ErrorFields("finalize", err))
		}
	}
}
