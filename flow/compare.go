package flow

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kbukum/pipekit/errors"
)

// Comparison operators recognized in field-gated components.
const (
	CompareLessThan       = "<"
	CompareLessOrEqual    = "<="
	CompareEqual          = "=="
	CompareNotEqual       = "!="
	CompareGreaterOrEqual = ">="
	CompareGreaterThan    = ">"
	CompareContains       = "contains"
	CompareMatches        = "matches"
)

// Comparisons lists all recognized operators.
var Comparisons = []string{
	CompareLessThan,
	CompareLessOrEqual,
	CompareEqual,
	CompareNotEqual,
	CompareGreaterOrEqual,
	CompareGreaterThan,
	CompareContains,
	CompareMatches,
}

// Compare evaluates a typed binary comparison. When both sides parse as
// floating-point numbers the comparison is numeric, otherwise the
// string forms are compared. "contains" performs a substring search of
// rhs within lhs; "matches" performs an unanchored regexp search with
// pattern rhs against lhs.
func Compare(lhs any, op string, rhs any) (bool, error) {
	left := fmt.Sprint(lhs)
	right := fmt.Sprint(rhs)

	switch op {
	case CompareContains:
		return strings.Contains(left, right), nil
	case CompareMatches:
		re, err := regexp.Compile(right)
		if err != nil {
			return false, errors.Configuration("invalid pattern %q", right).WithCause(err)
		}
		return re.MatchString(left), nil
	}

	lf, lerr := strconv.ParseFloat(left, 64)
	rf, rerr := strconv.ParseFloat(right, 64)
	if lerr == nil && rerr == nil {
		return compareNumeric(lf, op, rf)
	}
	return compareString(left, op, right)
}

func compareNumeric(lhs float64, op string, rhs float64) (bool, error) {
	switch op {
	case CompareLessThan:
		return lhs < rhs, nil
	case CompareLessOrEqual:
		return lhs <= rhs, nil
	case CompareEqual:
		return lhs == rhs, nil
	case CompareNotEqual:
		return lhs != rhs, nil
	case CompareGreaterOrEqual:
		return lhs >= rhs, nil
	case CompareGreaterThan:
		return lhs > rhs, nil
	}
	return false, errors.Configuration("unknown comparison operator: %s", op)
}

func compareString(lhs, op, rhs string) (bool, error) {
	switch op {
	case CompareLessThan:
		return lhs < rhs, nil
	case CompareLessOrEqual:
		return lhs <= rhs, nil
	case CompareEqual:
		return lhs == rhs, nil
	case CompareNotEqual:
		return lhs != rhs, nil
	case CompareGreaterOrEqual:
		return lhs >= rhs, nil
	case CompareGreaterThan:
		return lhs > rhs, nil
	}
	return false, errors.Configuration("unknown comparison operator: %s", op)
}
