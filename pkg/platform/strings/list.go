// Package strings provides string manipulation utilities.
package strings

import (
	"strings"

	"github.com/samber/lo"
)

// SplitList splits a comma-separated setting into its entries, trimming
// whitespace and dropping blanks and repeats. Order is preserved.
//
// Example:
//
//	SplitList(" a:9092, b:9092,,a:9092 ")
//	// Returns: []string{"a:9092", "b:9092"}
func SplitList(s string) []string {
	parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	return lo.Uniq(lo.Compact(parts))
}
