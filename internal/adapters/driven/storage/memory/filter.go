package memory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

// matchFilter evaluates a metadata filter. Attributes missing from the
// document are treated as null rather than as an error.
func matchFilter(f domain.Filter, metadata domain.Metadata) (bool, error) {
	// Deterministic key order keeps error messages stable.
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		ok, err := matchClause(key, f[key], metadata)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func matchClause(key string, cond any, metadata domain.Metadata) (bool, error) {
	switch key {
	case "$and", "$or":
		subs, err := subFilters(key, cond)
		if err != nil {
			return false, err
		}
		for _, sub := range subs {
			ok, err := matchFilter(sub, metadata)
			if err != nil {
				return false, err
			}
			if key == "$or" && ok {
				return true, nil
			}
			if key == "$and" && !ok {
				return false, nil
			}
		}
		return key == "$and", nil
	}

	if strings.HasPrefix(key, "$") {
		return false, fmt.Errorf("%w: unknown filter operator %q", domain.ErrInvalidInput, key)
	}

	value, present := metadata[key]

	ops, ok := cond.(map[string]any)
	if !ok {
		// Bare value is shorthand for $eq.
		ops = map[string]any{"$eq": cond}
	}
	for op, operand := range ops {
		ok, err := matchOperator(key, op, operand, value, present)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func subFilters(key string, cond any) ([]domain.Filter, error) {
	list, ok := cond.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects a list of filters", domain.ErrInvalidInput, key)
	}
	subs := make([]domain.Filter, len(list))
	for i, item := range list {
		switch m := item.(type) {
		case map[string]any:
			subs[i] = m
		case domain.Filter:
			subs[i] = m
		default:
			return nil, fmt.Errorf("%w: %s expects a list of filters", domain.ErrInvalidInput, key)
		}
	}
	return subs, nil
}

func matchOperator(key, op string, operand, value any, present bool) (bool, error) {
	isList := strings.HasPrefix(key, domain.ListKeyPrefix)

	switch op {
	case "$in", "$nin":
		if !isList {
			return false, fmt.Errorf("%w: %s only applies to %q attributes", domain.ErrInvalidInput, op, domain.ListKeyPrefix)
		}
		wanted, err := operandStrings(op, operand)
		if err != nil {
			return false, err
		}
		contains := present && overlaps(value, wanted)
		if op == "$in" {
			return contains, nil
		}
		return !contains, nil

	case "$eq", "$ne", "$gt", "$gte", "$lt", "$lte":
		if isList {
			return false, fmt.Errorf("%w: %s does not apply to list attribute %q", domain.ErrInvalidInput, op, key)
		}
		if operand != nil {
			if _, ok := operand.(string); !ok {
				return false, fmt.Errorf("%w: %s expects a string operand", domain.ErrInvalidInput, op)
			}
		}
		return compare(op, operand, value, present), nil

	default:
		return false, fmt.Errorf("%w: unknown filter operator %q", domain.ErrInvalidInput, op)
	}
}

// compare applies a comparison where a missing attribute is null:
// null only equals null and never orders against a string.
func compare(op string, operand, value any, present bool) bool {
	got, _ := value.(string)
	want, wantStr := operand.(string)

	if !present || !wantStr {
		equal := !present && !wantStr
		switch op {
		case "$eq":
			return equal
		case "$ne":
			return !equal
		default:
			return false
		}
	}

	switch op {
	case "$eq":
		return got == want
	case "$ne":
		return got != want
	case "$gt":
		return got > want
	case "$gte":
		return got >= want
	case "$lt":
		return got < want
	default:
		return got <= want
	}
}

func operandStrings(op string, operand any) ([]string, error) {
	switch v := operand.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		if list, ok := stringList(v); ok {
			return list, nil
		}
	}
	return nil, fmt.Errorf("%w: %s expects a string or list of strings", domain.ErrInvalidInput, op)
}

func overlaps(value any, wanted []string) bool {
	have, ok := value.([]string)
	if !ok {
		return false
	}
	for _, h := range have {
		for _, w := range wanted {
			if h == w {
				return true
			}
		}
	}
	return false
}
