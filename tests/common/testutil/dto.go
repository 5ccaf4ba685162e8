//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body decoded as a generic JSON object.
type Mutation func(m map[string]any)

// DtoMap round-trips v through JSON so tests can send bodies the typed DTO cannot express.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key to value; a nil value removes the key.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Nested applies Field inside the object stored under parent, e.g. the booking's customer.
func Nested(parent, key string, value any) Mutation {
	return func(m map[string]any) {
		child, ok := m[parent].(map[string]any)
		if !ok {
			child = map[string]any{}
			m[parent] = child
		}
		Field(key, value)(child)
	}
}
