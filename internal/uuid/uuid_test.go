package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := NewGoogleUUIDGenerator()

	first := gen.New()
	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, gen.New())
}

func TestSequentialGenerator(t *testing.T) {
	gen := NewSequentialGenerator("char")

	assert.Equal(t, "char-1", gen.New())
	assert.Equal(t, "char-2", gen.New())
}
