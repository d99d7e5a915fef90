// Package query provides the pure, synchronous filter and sort helpers
// the presentation layer applies to an already-loaded collection
// snapshot. Nothing here performs I/O or mutates its input.
package query

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"pipelinepro-server/models"
)

// Search keeps the items whose searchable field values contain q as a
// case-insensitive substring. A blank or whitespace-only query is the
// identity filter.
func Search[T any](items []T, q string, fields func(T) []string) []T {
	q = strings.TrimSpace(q)
	if q == "" {
		return items
	}
	q = strings.ToLower(q)

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Filter keeps the items the predicate accepts. Composing Filter with
// Search yields the AND of both conditions.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// FilterActivityType keeps activities of exactly the given type; the
// "all" sentinel (or a blank value) short-circuits to the identity.
func FilterActivityType(items []models.Activity, activityType string) []models.Activity {
	if activityType == "" || activityType == "all" {
		return items
	}
	return Filter(items, func(a models.Activity) bool {
		return a.Type == activityType
	})
}

// SortByField returns the items ordered by one of their JSON fields.
// Strings compare case-insensitively, RFC3339 timestamps compare as
// instants rather than lexically, numbers numerically. The sort is
// stable, so re-sorting a sorted snapshot with the direction flipped
// reverses it exactly (up to equal keys, which keep their order).
func SortByField[T any](items []T, field string, descending bool) []T {
	keys := make([]any, len(items))
	for i := range items {
		keys[i] = fieldValue(items[i], field)
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		c := compareValues(keys[idx[a]], keys[idx[b]])
		if descending {
			return c > 0
		}
		return c < 0
	})

	out := make([]T, len(items))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}

// fieldValue looks a field up by its JSON name, the same name the
// presentation layer sorts on.
func fieldValue[T any](item T, field string) any {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil
	}
	m := map[string]any{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m[field]
}

func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if af, ok := a.(float64); ok {
		if bf, ok := b.(float64); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		if at, err := time.Parse(time.RFC3339, as); err == nil {
			if bt, err := time.Parse(time.RFC3339, bs); err == nil {
				switch {
				case at.Before(bt):
					return -1
				case at.After(bt):
					return 1
				default:
					return 0
				}
			}
		}
		return strings.Compare(strings.ToLower(as), strings.ToLower(bs))
	}

	// mixed types: fall back to their printed form
	return strings.Compare(strings.ToLower(fmt.Sprint(a)), strings.ToLower(fmt.Sprint(b)))
}
