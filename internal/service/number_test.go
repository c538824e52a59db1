package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		present bool
		invalid bool
		value   float64
	}{
		{"json number", `{"n":3}`, true, false, 3},
		{"numeric string", `{"n":"4.5"}`, true, false, 4.5},
		{"empty string", `{"n":""}`, false, false, 0},
		{"absent", `{}`, false, false, 0},
		{"null", `{"n":null}`, false, false, 0},
		{"garbage string", `{"n":"abc"}`, true, true, 0},
		{"wrong type", `{"n":{"x":1}}`, true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				N Number `json:"n"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &payload))

			assert.Equal(t, tt.present, payload.N.Present(), "Present")
			assert.Equal(t, tt.invalid, payload.N.Invalid(), "Invalid")
			assert.Equal(t, tt.value, payload.N.Value(), "Value")
		})
	}
}

func TestNumberOr(t *testing.T) {
	assert.Equal(t, float64(5), NumberOf(5).Or(1))
	assert.Equal(t, float64(1), NumberOf(0).Or(1))
	assert.Equal(t, float64(1), Number{}.Or(1))
}
