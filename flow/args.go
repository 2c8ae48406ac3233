package flow

import (
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/kbukum/pipekit/errors"
)

// SplitCmdline tokenizes a command line using shell quoting rules.
func SplitCmdline(cmdline string) ([]string, error) {
	tokens, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, errors.Configuration("cannot tokenize command line").WithCause(err)
	}
	return tokens, nil
}

// JoinCmdline joins tokens into a single shell-quoted command line.
func JoinCmdline(tokens []string) string {
	return shellquote.Join(tokens...)
}

// StripComments removes comment tokens (starting with '#') from an
// already tokenized sequence.
func StripComments(tokens []string) []string {
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.HasPrefix(token, "#") {
			continue
		}
		result = append(result, token)
	}
	return result
}

// Group is one plugin-argument group in a token stream: the boundary
// token naming the plugin plus its own arguments.
type Group struct {
	Name string
	Args []string
}

// SplitGroups splits a token sequence into plugin-argument groups. A
// token is a boundary if it exactly matches one of the supplied names;
// tokens from one boundary up to (but excluding) the next boundary form
// that plugin's argument group. Tokens before the first boundary are a
// composition error.
func SplitGroups(tokens []string, names []string) ([]Group, error) {
	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[name] = true
	}

	var groups []Group
	for _, token := range tokens {
		if known[token] {
			groups = append(groups, Group{Name: token})
			continue
		}
		if len(groups) == 0 {
			return nil, errors.Composition("unknown plugin or stray argument before first plugin: %q", token)
		}
		last := &groups[len(groups)-1]
		last.Args = append(last.Args, token)
	}
	return groups, nil
}
