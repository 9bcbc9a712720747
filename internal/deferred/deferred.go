// Package deferred recognizes attribute values that defer to an external
// expression or templating mechanism.
package deferred

import "strings"

// sentinels are the characters that mark a value as a deferred expression.
// Their presence anywhere in the value bypasses grammar matching entirely.
const sentinels = "[]`$"

// IsExpression reports whether raw contains a deferred-expression sentinel.
// It runs before grammar matching, never as a fallback after a mismatch.
func IsExpression(raw string) bool {
	return strings.ContainsAny(raw, sentinels)
}
