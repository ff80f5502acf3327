package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	// GIVEN
	a := 0.0
	b := 100.0
	c := 50.0

	expected := 0.5

	// WHEN
	result := Ratio(c, a, b)

	// THEN
	assert.Equal(t, expected, result)
}

func TestCoerce(t *testing.T) {
	// WHEN / THEN
	assert.Equal(t, 0, Coerce(-5, 0, 256))
	assert.Equal(t, 128, Coerce(128, 0, 256))
	assert.Equal(t, 256, Coerce(640, 0, 256))

	assert.Equal(t, 1.5, Coerce(1.5, 0.0, 2.0))
}
