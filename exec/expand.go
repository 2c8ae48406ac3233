package exec

import (
	"strings"

	"github.com/kbukum/pipekit/generator"
)

// ExpandVars substitutes {name} variables in a token sequence with the
// binding's values. Substitution is a literal replacement applied in
// the binding's insertion order; a token may contain several variables.
// Substituted values are not re-expanded, and variables not present in
// the binding stay untouched.
func ExpandVars(tokens []string, binding *generator.Binding) []string {
	pairs := make([]string, 0, 2*len(binding.Keys()))
	for _, name := range binding.Keys() {
		value, _ := binding.Get(name)
		pairs = append(pairs, "{"+name+"}", value)
	}
	// strings.Replacer scans each token once, so a substituted value is
	// never rescanned for later variables.
	replacer := strings.NewReplacer(pairs...)
	result := make([]string, len(tokens))
	for i, token := range tokens {
		result[i] = replacer.Replace(token)
	}
	return result
}
