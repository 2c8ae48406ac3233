package placeholder

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Resolver produces the current value of a placeholder.
type Resolver func() string

type entry struct {
	description string
	resolve     Resolver
}

// Table holds the placeholders available to path and value expansion.
type Table struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewTable creates a table seeded with the built-in placeholders
// {HOME}, {CWD} and {TMP}.
func NewTable() *Table {
	t := &Table{entries: make(map[string]entry)}
	t.Add("HOME", "the user's home directory", func() string {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return home
	})
	t.Add("CWD", "the current working directory", func() string {
		cwd, err := os.Getwd()
		if err != nil {
			return ""
		}
		return cwd
	})
	t.Add("TMP", "the temp directory", os.TempDir)
	return t
}

// Add registers a resolver-backed placeholder, replacing any previous
// entry of the same name.
func (t *Table) Add(name, description string, resolve Resolver) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[name] = entry{description: description, resolve: resolve}
}

// Set registers a static placeholder value.
func (t *Table) Set(name, value string) {
	t.Add(name, "user-defined", func() string { return value })
}

// Expand replaces every {name} occurrence of a known placeholder in s.
// Unknown placeholders are left untouched. Resolved values are not
// re-expanded.
func (t *Table) Expand(s string) string {
	if !strings.Contains(s, "{") {
		return s
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	for name, e := range t.entries {
		token := "{" + name + "}"
		if strings.Contains(s, token) {
			s = strings.ReplaceAll(s, token, e.resolve())
		}
	}
	return s
}

// LoadFile loads user-defined placeholders from a key=value file.
func (t *Table) LoadFile(path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("cannot load placeholder file %q: %w", path, err)
	}
	for name, value := range values {
		t.Set(name, value)
	}
	return nil
}

// Names returns the sorted names of all registered placeholders.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns "name: description" lines for help output.
func (t *Table) Describe() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	lines := make([]string, 0, len(t.entries))
	for name, e := range t.entries {
		lines = append(lines, fmt.Sprintf("{%s}: %s", name, e.description))
	}
	sort.Strings(lines)
	return lines
}
