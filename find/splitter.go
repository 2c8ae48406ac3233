package find

import "github.com/kbukum/pipekit/errors"

// Splitter deals out items over named splits according to integer
// ratios, keeping the actual distribution as close to the ratios as
// possible at every point in the sequence.
type Splitter struct {
	ratios   []int
	names    []string
	assigned []int
	total    int
}

// NewSplitter validates the ratios and names. The ratios must sum up
// to 100 and pair up with the names.
func NewSplitter(ratios []int, names []string) (*Splitter, error) {
	if len(ratios) == 0 || len(names) == 0 {
		return nil, errors.Configuration("split ratios and names are both required")
	}
	if len(ratios) != len(names) {
		return nil, errors.Configuration("got %d split ratios but %d split names", len(ratios), len(names))
	}
	sum := 0
	for _, ratio := range ratios {
		if ratio <= 0 {
			return nil, errors.Configuration("split ratios must be positive, got %d", ratio)
		}
		sum += ratio
	}
	if sum != 100 {
		return nil, errors.Configuration("split ratios must sum up to 100, got %d", sum)
	}
	return &Splitter{
		ratios:   ratios,
		names:    names,
		assigned: make([]int, len(ratios)),
	}, nil
}

// Next returns the split name the next item belongs to.
func (s *Splitter) Next() string {
	s.total++
	best := 0
	bestDeficit := -1 << 31
	for i, ratio := range s.ratios {
		deficit := ratio*s.total - 100*s.assigned[i]
		if deficit > bestDeficit {
			bestDeficit = deficit
			best = i
		}
	}
	s.assigned[best]++
	return s.names[best]
}

// Names returns the configured split names in order.
func (s *Splitter) Names() []string { return s.names }
