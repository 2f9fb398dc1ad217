package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithField(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]interface{}
		key      string
		value    interface{}
		expected map[string]interface{}
	}{
		{
			name:     "nil map is allocated",
			fields:   nil,
			key:      "packages",
			value:    5,
			expected: map[string]interface{}{"packages": 5},
		},
		{
			name:     "existing keys are kept",
			fields:   map[string]interface{}{"mode": "area"},
			key:      "packages",
			value:    3,
			expected: map[string]interface{}{"mode": "area", "packages": 3},
		},
		{
			name:     "same key is overwritten",
			fields:   map[string]interface{}{"shortfall": false},
			key:      "shortfall",
			value:    true,
			expected: map[string]interface{}{"shortfall": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &LogEntry{ActionType: ActionCalculate, Fields: tt.fields}
			result := entry.WithField(tt.key, tt.value)

			assert.Same(t, entry, result)
			assert.Equal(t, tt.expected, result.Fields)
		})
	}
}

func TestLogEntry_WithFields(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]interface{}
		merge    map[string]interface{}
		expected map[string]interface{}
	}{
		{
			name:     "merge into nil map",
			merge:    map[string]interface{}{"length": 5.0, "width": 2.0},
			expected: map[string]interface{}{"length": 5.0, "width": 2.0},
		},
		{
			name:     "merge keeps unrelated keys",
			fields:   map[string]interface{}{"trigger": "dimensions"},
			merge:    map[string]interface{}{"purchasable": 4},
			expected: map[string]interface{}{"trigger": "dimensions", "purchasable": 4},
		},
		{
			name:     "empty merge leaves nil map alone",
			merge:    map[string]interface{}{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &LogEntry{ActionType: ActionFormInput, Fields: tt.fields}
			result := entry.WithFields(tt.merge)

			assert.Same(t, entry, result)
			assert.Equal(t, tt.expected, result.Fields)
		})
	}
}
