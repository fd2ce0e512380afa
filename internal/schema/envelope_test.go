package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	cases := []struct {
		name   string
		result any
		want   string
	}{
		{"nil", nil, "[]"},
		{"empty raw", json.RawMessage(""), "[]"},
		{"raw null", json.RawMessage(" null "), "[]"},
		{"raw keeps key order", json.RawMessage(`[ {"z": 1, "a": 2} ]`), `[{"z":1,"a":2}]`},
		{"map", map[string]any{"b": 1, "a": "x"}, `{"a":"x","b":1}`},
		{"string", "hi <b>", `"hi <b>"`},
		{"slice", []int{1, 2}, "[1,2]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env, err := NewEnvelope(tc.result)
			require.NoError(t, err)
			require.Len(t, env.Content, 1)
			assert.Equal(t, "text", env.Content[0].Type)
			assert.Equal(t, tc.want, env.Text())
		})
	}
}

func TestNewEnvelope_InvalidRaw(t *testing.T) {
	_, err := NewEnvelope(json.RawMessage(`{"a":`))
	assert.Error(t, err)
}

func TestNewEnvelope_Deterministic(t *testing.T) {
	result := map[string]any{"k3": 3, "k1": []any{"x", map[string]any{"b": true, "a": nil}}, "k2": "v"}
	first, err := NewEnvelope(result)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := NewEnvelope(result)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEnvelope_JSONShape(t *testing.T) {
	env, err := NewEnvelope([]string{"a"})
	require.NoError(t, err)

	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":[{"type":"text","text":"[\"a\"]"}]}`, string(data))
}

func TestEnvelope_TextEmpty(t *testing.T) {
	assert.Equal(t, "", Envelope{}.Text())
}
