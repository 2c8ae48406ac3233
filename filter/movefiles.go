package filter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
	"github.com/kbukum/pipekit/logger"
)

// MoveFiles moves the files passing through into the target directory
// and forwards their new paths.
type MoveFiles struct {
	flow.Base

	TargetDir string
}

func NewMoveFiles() *MoveFiles { return &MoveFiles{} }

func (f *MoveFiles) Name() string { return "move-files" }

func (f *MoveFiles) Description() string {
	return "Moves the files passing through into the target directory and forwards the new locations."
}

func (f *MoveFiles) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.TargetDir, "target_dir", "t", "", "the directory to move the files to; may contain placeholders")
}

func (f *MoveFiles) Init(sess *flow.Session) error {
	f.Attach(f.Name(), sess)
	if f.TargetDir == "" {
		return errors.Configuration("target directory not specified")
	}
	return nil
}

func (f *MoveFiles) Process(data flow.Payload) (flow.Payload, error) {
	target := f.Session.ExpandPlaceholders(f.TargetDir)
	info, err := os.Stat(target)
	if err != nil {
		return flow.Payload{}, errors.Configuration("target directory does not exist: %s", target).WithCause(err)
	}
	if !info.IsDir() {
		return flow.Payload{}, errors.Configuration("target is not a directory: %s", target)
	}

	var moved []any
	for _, item := range data.Items() {
		source := fmt.Sprint(flow.ItemValue(item))
		dest := filepath.Join(target, filepath.Base(source))
		if err := os.Rename(source, dest); err != nil {
			return flow.Payload{}, errors.Newf(errors.ErrCodeRuntime, "failed to move %s to %s", source, dest).WithCause(err)
		}
		f.Log.Info("moved file", logger.Fields("source", source, "target", dest))
		moved = append(moved, dest)
	}
	return flow.List(moved).Flatten(), nil
}
