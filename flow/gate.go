package flow

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/logger"
)

// Gate is an optional comparison between an item's metadata field and a
// literal value, deciding whether a conditional stage applies. An
// absent field means "always true".
type Gate struct {
	Field      string
	Comparison string
	Value      string
}

// Bind registers the gate options on a plugin's flag set.
func (g *Gate) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&g.Field, "field", "", "the metadata field to use in the comparison")
	fs.StringVar(&g.Comparison, "comparison", CompareEqual,
		fmt.Sprintf("how to compare the metadata value with the supplied value; one of %v", Comparisons))
	fs.StringVar(&g.Value, "value", "", "the value to use in the comparison")
}

// Active reports whether a comparison was configured.
func (g *Gate) Active() bool { return g.Field != "" }

// Check validates the gate configuration.
func (g *Gate) Check() error {
	if !g.Active() {
		return nil
	}
	if g.Value == "" {
		return errors.Configuration("no value provided to compare with")
	}
	valid := false
	for _, op := range Comparisons {
		if g.Comparison == op {
			valid = true
			break
		}
	}
	if !valid {
		return errors.Configuration("unknown comparison operator: %s", g.Comparison)
	}
	return nil
}

// Eval evaluates the gate against one item's metadata. An inactive gate
// always passes. An active gate fails with a warning when the item
// exposes no metadata or lacks the field.
func (g *Gate) Eval(item any, log *logger.Logger) (bool, error) {
	if !g.Active() {
		return true, nil
	}
	meta, ok := ItemMetadata(item)
	if !ok {
		log.Warn("item carries no metadata, gate skipped",
			logger.Fields("field", g.Field))
		return false, nil
	}
	value, present := meta[g.Field]
	if !present {
		log.Warn("metadata field not present, gate skipped",
			logger.Fields("field", g.Field))
		return false, nil
	}
	result, err := Compare(value, g.Comparison, g.Value)
	if err != nil {
		return false, err
	}
	log.Info("gate evaluated", logger.Fields(
		"field", g.Field,
		"expression", fmt.Sprintf("%v %s %v = %v", value, g.Comparison, g.Value, result)))
	return result, nil
}
