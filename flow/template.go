package flow

import (
	"os"
	"strings"

	"github.com/kbukum/pipekit/errors"
)

// PipelineFormat selects how a pipeline definition is loaded.
type PipelineFormat string

const (
	// FormatCmdline treats the source as a command line.
	FormatCmdline PipelineFormat = "cmdline"
	// FormatFile treats the source as a path to a text file holding the
	// pipeline, one fragment per line.
	FormatFile PipelineFormat = "file"
)

// PipelineFormats lists the supported formats.
var PipelineFormats = []PipelineFormat{FormatCmdline, FormatFile}

// ParsePipelineFormat validates a format string.
func ParsePipelineFormat(s string) (PipelineFormat, error) {
	for _, f := range PipelineFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Configuration("unknown pipeline format: %q", s)
}

// LoadPipeline produces a flat token sequence from an already tokenized
// source. For cmdline, comment tokens are stripped. For file, the
// single source token is resolved through expand (nil for none) to a
// path whose lines are concatenated with single spaces and tokenized
// with shell quoting rules.
func LoadPipeline(tokens []string, format PipelineFormat, expand func(string) string) ([]string, error) {
	switch format {
	case FormatCmdline:
		return StripComments(tokens), nil
	case FormatFile:
		if len(tokens) != 1 {
			return nil, errors.Configuration("file format expects a single path token, got %d", len(tokens))
		}
		return loadPipelineFile(tokens[0], expand)
	}
	return nil, errors.Configuration("unknown pipeline format: %q", format)
}

// LoadPipelineString is LoadPipeline for a source that is still a
// single command-line string.
func LoadPipelineString(cmdline string, format PipelineFormat, expand func(string) string) ([]string, error) {
	switch format {
	case FormatCmdline:
		tokens, err := SplitCmdline(strings.TrimSpace(cmdline))
		if err != nil {
			return nil, err
		}
		return StripComments(tokens), nil
	case FormatFile:
		return loadPipelineFile(strings.TrimSpace(cmdline), expand)
	}
	return nil, errors.Configuration("unknown pipeline format: %q", format)
}

func loadPipelineFile(source string, expand func(string) string) ([]string, error) {
	path := source
	if expand != nil {
		path = expand(path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load(path, err)
	}
	lines := strings.Split(string(raw), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return SplitCmdline(strings.Join(lines, " "))
}

// StripProgram drops the leading program-name token so a full command
// invocation can be pasted as a template. The token is dropped when it
// starts with the program name.
func StripProgram(tokens []string, program string) []string {
	if program == "" || len(tokens) == 0 {
		return tokens
	}
	if strings.HasPrefix(tokens[0], program) {
		return tokens[1:]
	}
	return tokens
}
