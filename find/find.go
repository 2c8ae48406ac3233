package find

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/logger"
)

// Options configures one file-finding run.
type Options struct {
	// Inputs are the directories to scan.
	Inputs []string

	// Recursive scans sub-directories as well.
	Recursive bool

	// Output is the file the located names are written to, one per
	// line. With splits configured, the split name is inserted before
	// the extension.
	Output string

	// Match keeps only full paths matching all of these patterns.
	Match []string

	// NotMatch drops full paths matching any of these patterns.
	NotMatch []string

	// SplitRatios and SplitNames divide the result into ratio-based
	// splits; the ratios must sum up to 100.
	SplitRatios []int
	SplitNames  []string

	// SplitNameSeparator sits between file name and split name.
	SplitNameSeparator string
}

// Run locates the files and writes the output file(s).
func Run(opts *Options, log *logger.Logger) error {
	if len(opts.Inputs) == 0 {
		return errors.Configuration("no input directories provided")
	}
	if opts.Output == "" {
		return errors.Configuration("no output file provided")
	}
	match, err := compileAll(opts.Match)
	if err != nil {
		return err
	}
	notMatch, err := compileAll(opts.NotMatch)
	if err != nil {
		return err
	}

	var files []string
	for _, dir := range opts.Inputs {
		if err := scan(dir, opts.Recursive, match, notMatch, &files); err != nil {
			return err
		}
	}
	log.Info("files found", logger.Fields("count", len(files)))

	if len(opts.SplitRatios) == 0 && len(opts.SplitNames) == 0 {
		return writeList(opts.Output, files, log)
	}

	splitter, err := NewSplitter(opts.SplitRatios, opts.SplitNames)
	if err != nil {
		return err
	}
	separator := opts.SplitNameSeparator
	if separator == "" {
		separator = "-"
	}
	buckets := make(map[string][]string, len(opts.SplitNames))
	for _, file := range files {
		name := splitter.Next()
		buckets[name] = append(buckets[name], file)
	}
	ext := filepath.Ext(opts.Output)
	stem := strings.TrimSuffix(opts.Output, ext)
	for _, name := range splitter.Names() {
		log.Info("split size", logger.Fields("split", name, "count", len(buckets[name])))
		if err := writeList(stem+separator+name+ext, buckets[name], log); err != nil {
			return err
		}
	}
	return nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	result := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errors.Configuration("invalid pattern %q", pattern).WithCause(err)
		}
		result = append(result, re)
	}
	return result, nil
}

// scan adds the matching files of dir to files, in directory order.
func scan(dir string, recursive bool, match, notMatch []*regexp.Regexp, files *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Load(dir, err)
	}
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if recursive {
				if err := scan(full, recursive, match, notMatch, files); err != nil {
					return err
				}
			}
			continue
		}
		if !keep(full, match, notMatch) {
			continue
		}
		*files = append(*files, full)
	}
	return nil
}

func keep(path string, match, notMatch []*regexp.Regexp) bool {
	for _, re := range match {
		if !re.MatchString(path) {
			return false
		}
	}
	for _, re := range notMatch {
		if re.MatchString(path) {
			return false
		}
	}
	return true
}

func writeList(path string, files []string, log *logger.Logger) error {
	log.Info("writing file list", logger.Fields("path", path, "count", len(files)))
	fp, err := os.Create(path)
	if err != nil {
		return errors.Load(path, err)
	}
	defer fp.Close()
	for _, file := range files {
		if _, err := fp.WriteString(file + "\n"); err != nil {
			return errors.Newf(errors.ErrCodeRuntime, "failed to write file list").WithCause(err)
		}
	}
	return nil
}
