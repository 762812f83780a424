package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPayloadFieldList(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"all keyword", `{"fields": "all"}`, nil},
		{"explicit list", `{"fields": ["name", "cnic"]}`, []string{"name", "cnic"}},
		{"missing fields", `{}`, nil},
		{"null fields", `{"fields": null}`, nil},
		{"non-string items skipped", `{"fields": ["name", 42]}`, []string{"name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload exportPayload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &payload))
			assert.Equal(t, tt.want, payload.fieldList())
		})
	}
}
