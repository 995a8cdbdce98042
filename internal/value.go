package internal

import "fmt"

// truthy projects any value onto {true, false}: nil and false are
// falsy, everything else — including 0, 0.0 and the empty string — is
// truthy (spec.md §4.6, §8.1 "Truthiness totality").
func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// equalValues implements spec.md §4.5 equality: if both operands are
// numeric, compare by numeric value regardless of int/double tag;
// otherwise structural equality per tag (distinct tags are unequal,
// nil == nil holds).
func equalValues(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	an, aok := a.(Number)
	bn, bok := b.(Number)
	if aok && bok {
		return an.equals(bn)
	}
	return a == b
}

// stringify is the canonical print form used by the `print` statement
// (spec.md §4.6): numbers render with Number.String, booleans as
// true/false, nil as nil, strings unquoted, callables via their own
// String, instances as <instance of ClassName>.
func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case Number:
		return v.String()
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
