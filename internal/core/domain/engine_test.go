package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineType(t *testing.T) {
	assert.True(t, EngineLexical.IsValid())
	assert.True(t, EngineSemantic.IsValid())
	assert.False(t, EngineType("hybrid").IsValid())

	assert.Equal(t, "lexical", EngineLexical.String())
	assert.Contains(t, EngineSemantic.Description(), "Semantic")
	assert.Equal(t, "Unknown", EngineType("x").Description())
}
