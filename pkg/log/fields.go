package log

import (
	"maps"
	"slices"
)

const (
	FieldKeyPrefix = "prefix"
	FieldKeyTest   = "test"
	FieldKeyFilter = "filter"
	FieldKeyError  = "error"
)

// Fields type, used to pass to `WithFields`.
type Fields map[string]any

// Keys returns the sorted field keys without the given ones.
func (fields Fields) Keys(removeKeys ...string) []string {
	keys := make([]string, 0, len(fields))

	for key := range maps.Keys(fields) {
		if !slices.Contains(removeKeys, key) {
			keys = append(keys, key)
		}
	}

	slices.Sort(keys)

	return keys
}
