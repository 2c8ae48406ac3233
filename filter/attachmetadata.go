package filter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
	"github.com/kbukum/pipekit/logger"
)

// Metadata file formats understood by attach-metadata.
const (
	MetadataFormatCSV  = "csv"
	MetadataFormatJSON = "json"
)

// AttachMetadata loads per-item metadata from files in a directory and
// attaches it to the items passing through. The metadata file is
// located by replacing the item's file extension with the format's
// extension.
type AttachMetadata struct {
	flow.Base

	MetadataDir    string
	MetadataFormat string

	attached int
	missed   int
}

func NewAttachMetadata() *AttachMetadata {
	return &AttachMetadata{MetadataFormat: MetadataFormatJSON}
}

func (f *AttachMetadata) Name() string { return "attach-metadata" }

func (f *AttachMetadata) Description() string {
	return "Attaches metadata to the data passing through, loaded from the specified directory based on the data's name. " +
		"In case of CSV, a header row is expected and the first column contains the keys and the second the values."
}

func (f *AttachMetadata) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.MetadataDir, "metadata_dir", "m", "", "the directory with the metadata files to load; may contain placeholders")
	fs.StringVarP(&f.MetadataFormat, "metadata_format", "f", MetadataFormatJSON, "the format of the metadata files: csv or json")
}

func (f *AttachMetadata) Init(sess *flow.Session) error {
	f.Attach(f.Name(), sess)
	if f.MetadataDir == "" {
		return errors.Configuration("no metadata directory provided")
	}
	switch f.MetadataFormat {
	case MetadataFormatCSV, MetadataFormatJSON:
	default:
		return errors.Configuration("unknown metadata format: %s", f.MetadataFormat)
	}
	return nil
}

func (f *AttachMetadata) Process(data flow.Payload) (flow.Payload, error) {
	for _, item := range data.Items() {
		mh, ok := item.(flow.MetadataHandler)
		if !ok {
			f.Log.Warn("item carries no metadata, cannot attach", logger.Fields("item", fmt.Sprint(item)))
			f.missed++
			continue
		}
		name := filepath.Base(fmt.Sprint(flow.ItemValue(item)))
		meta, err := f.loadMetadata(name)
		if err != nil {
			return flow.Payload{}, err
		}
		if meta == nil {
			f.Log.Warn("no metadata located", logger.Fields("name", name))
			f.missed++
			continue
		}
		target := mh.Metadata()
		for k, v := range meta {
			target[k] = v
		}
		f.attached++
	}
	return data, nil
}

// loadMetadata reads the metadata file for the given item name. A nil
// map without error means no file exists for the item.
func (f *AttachMetadata) loadMetadata(name string) (flow.Metadata, error) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	dir := f.Session.ExpandPlaceholders(f.MetadataDir)
	path := filepath.Join(dir, stem+"."+f.MetadataFormat)
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}

	switch f.MetadataFormat {
	case MetadataFormatCSV:
		fp, err := os.Open(path)
		if err != nil {
			return nil, errors.Newf(errors.ErrCodeRuntime, "failed to open metadata file: %s", path).WithCause(err)
		}
		defer fp.Close()
		rows, err := csv.NewReader(fp).ReadAll()
		if err != nil {
			return nil, errors.Newf(errors.ErrCodeRuntime, "failed to read metadata file: %s", path).WithCause(err)
		}
		result := make(flow.Metadata)
		for i, row := range rows {
			// skip the header row
			if i == 0 || len(row) < 2 {
				continue
			}
			result[row[0]] = row[1]
		}
		return result, nil

	case MetadataFormatJSON:
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Newf(errors.ErrCodeRuntime, "failed to read metadata file: %s", path).WithCause(err)
		}
		result := make(flow.Metadata)
		if err := json.Unmarshal(raw, &result); err != nil {
			return nil, errors.Newf(errors.ErrCodeRuntime, "failed to parse metadata file: %s", path).WithCause(err)
		}
		return result, nil

	default:
		return nil, errors.Configuration("unhandled metadata format: %s", f.MetadataFormat)
	}
}

func (f *AttachMetadata) Finalize() error {
	f.Log.Info("metadata attachment finished", logger.Fields("attached", f.attached, "missed", f.missed))
	return nil
}
