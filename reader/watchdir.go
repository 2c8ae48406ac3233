package reader

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
	"github.com/kbukum/pipekit/logger"
)

// Actions applied to a discovered file after it has been processed.
const (
	WatchActionNothing = "nothing"
	WatchActionMove    = "move"
	WatchActionDelete  = "delete"
)

// WatchDir watches a directory and forwards files as they appear.
// After processing, a file can be moved out of the watched directory
// or deleted so it is only ever picked up once. With a base reader
// configured, discovered files are fed through it and its items are
// forwarded instead of the paths. Runs until the session is stopped.
type WatchDir struct {
	flow.Base

	InputDir    string
	MoveTo      string
	Action      string
	Extensions  []string
	SettleWait  time.Duration
	ForwardList bool
	BaseReader  string

	registry   *flow.Registry
	watcher    *fsnotify.Watcher
	base       flow.Reader
	baseSource flow.FileSource
}

func NewWatchDir(reg *flow.Registry) *WatchDir {
	return &WatchDir{SettleWait: 50 * time.Millisecond, Action: WatchActionNothing, registry: reg}
}

func (r *WatchDir) Name() string { return "watch-dir" }

func (r *WatchDir) Description() string {
	return "Watches a directory and forwards files as they appear, optionally moving them out of the watched directory first."
}

func (r *WatchDir) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&r.InputDir, "dir_in", "i", "", "the directory to watch; may contain placeholders")
	fs.StringVarP(&r.MoveTo, "dir_out", "o", "", "the directory the 'move' action moves processed files to")
	fs.StringVarP(&r.Action, "action", "a", WatchActionNothing, "the action to apply to processed files (nothing|move|delete)")
	fs.StringSliceVarP(&r.Extensions, "extensions", "e", nil, "the extensions of the files to watch for (incl. dot)")
	fs.DurationVarP(&r.SettleWait, "settle_wait", "w", 50*time.Millisecond, "how long to wait after an event before processing, e.g. for files still being written")
	fs.BoolVar(&r.ForwardList, "as_list", false, "whether to forward discovered files as a list or one by one")
	fs.StringVarP(&r.BaseReader, "base_reader", "b", "", "the command-line of the reader to feed the discovered files through")
}

func (r *WatchDir) Init(sess *flow.Session) error {
	r.Attach(r.Name(), sess)
	if r.InputDir == "" {
		return errors.Configuration("no input directory provided")
	}
	if len(r.Extensions) == 0 {
		return errors.Configuration("no extensions provided")
	}
	switch r.Action {
	case WatchActionNothing, WatchActionDelete:
	case WatchActionMove:
		if r.MoveTo == "" {
			return errors.Configuration("the move action requires an output directory")
		}
	default:
		return errors.Configuration("unknown action: %q", r.Action)
	}
	if r.BaseReader != "" {
		base, err := flow.ParseReader(r.BaseReader, r.registry)
		if err != nil {
			return err
		}
		source, ok := base.(flow.FileSource)
		if !ok {
			return errors.Configuration("reader %q cannot take injected files", base.Name())
		}
		r.base = base
		r.baseSource = source
	}
	dir := sess.ExpandPlaceholders(r.InputDir)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Configuration("cannot create directory watcher").WithCause(err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return errors.Configuration("cannot watch directory: %s", dir).WithCause(err)
	}
	r.watcher = watcher
	return nil
}

func (r *WatchDir) matches(path string) bool {
	for _, ext := range r.Extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// applyAction moves or deletes the file after it has been processed.
func (r *WatchDir) applyAction(path string) error {
	switch r.Action {
	case WatchActionMove:
		target := r.Session.ExpandPlaceholders(r.MoveTo)
		dest := filepath.Join(target, filepath.Base(path))
		if err := os.Rename(path, dest); err != nil {
			return errors.Newf(errors.ErrCodeRuntime, "failed to move %s to %s", path, dest).WithCause(err)
		}
	case WatchActionDelete:
		if err := os.Remove(path); err != nil {
			return errors.Newf(errors.ErrCodeRuntime, "failed to delete %s", path).WithCause(err)
		}
	}
	return nil
}

func (r *WatchDir) Read(emit func(flow.Payload) error) error {
	for !r.Session.Stopped() {
		select {
		case event, ok := <-r.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !r.matches(event.Name) {
				continue
			}
			time.Sleep(r.SettleWait)
			if _, err := os.Stat(event.Name); err != nil {
				continue
			}
			path := event.Name
			r.Log.Info("file discovered", logger.Fields("path", path))
			if r.base != nil {
				if err := r.feedBase(path, emit); err != nil {
					return err
				}
			} else {
				var payload flow.Payload
				if r.ForwardList {
					payload = flow.List([]any{path})
				} else {
					payload = flow.Item(path)
				}
				if err := emit(payload); err != nil {
					return err
				}
			}
			if err := r.applyAction(path); err != nil {
				return err
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return nil
			}
			r.Log.Error("watch error", logger.ErrorFields("watch", err))
		case <-time.After(time.Second):
			// periodic wakeup to observe the stopped flag
		}
	}
	return nil
}

// feedBase runs one full cycle of the base reader over the discovered
// file, re-initializing it so each file starts a fresh read.
func (r *WatchDir) feedBase(path string, emit func(flow.Payload) error) error {
	r.baseSource.SetSource([]string{path})
	if err := r.base.Init(r.Session); err != nil {
		return err
	}
	for !r.base.Finished() {
		if err := r.base.Read(emit); err != nil {
			return err
		}
	}
	if err := r.base.Finalize(); err != nil {
		r.Log.Error("base reader finalize failed", logger.ErrorFields("finalize", err))
	}
	return nil
}

func (r *WatchDir) Finished() bool { return false }

func (r *WatchDir) Finalize() error {
	if r.watcher != nil {
		err := r.watcher.Close()
		r.watcher = nil
		return err
	}
	return nil
}
