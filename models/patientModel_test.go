package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSensitiveField(t *testing.T) {
	for _, name := range SensitiveFields {
		assert.True(t, IsSensitiveField(name), name)
	}

	assert.False(t, IsSensitiveField("name"))
	assert.False(t, IsSensitiveField("complaint"))
	assert.False(t, IsSensitiveField("admissionDate"))
}
