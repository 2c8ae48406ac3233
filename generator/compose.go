package generator

import "github.com/kbukum/pipekit/errors"

// Compose runs all generators and combines their bindings into one
// Cartesian product. The first generator forms the outer loop; later
// generators nest inside it, so the combined sequence is enumerated
// outer-index-major. When an outer and inner binding share a key the
// inner value wins.
func Compose(gens []Generator) ([]*Binding, error) {
	if len(gens) == 0 {
		return nil, errors.Configuration("no generators supplied")
	}

	result, err := Generate(gens[0])
	if err != nil {
		return nil, err
	}
	for _, g := range gens[1:] {
		inner, err := Generate(g)
		if err != nil {
			return nil, err
		}
		combined := make([]*Binding, 0, len(result)*len(inner))
		for _, outer := range result {
			for _, b := range inner {
				combined = append(combined, outer.Merge(b))
			}
		}
		result = combined
	}
	return result, nil
}
