package driver

// Safe conversion helpers for values coming out of query result rows. Neo4j
// returns integers as int64 and aggregate sums occasionally as float64, so
// numeric helpers accept both.

// AsString converts a row value to string, returning fallback for nil or
// non-string values.
func AsString(v any, fallback string) string {
	if v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

// AsInt64 converts a row value to int64, returning fallback for nil or
// unconvertible values.
func AsInt64(v any, fallback int64) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return fallback
	}
}

// AsFloat64 converts a row value to float64, returning fallback for nil or
// unconvertible values.
func AsFloat64(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return fallback
	}
}

// AsStringSlice converts a row value holding a list into a []string, skipping
// entries that are not strings. Returns nil for anything else.
func AsStringSlice(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
