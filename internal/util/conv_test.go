package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 28.57, Round2(2.0/7.0*100))
	assert.Equal(t, 71.43, Round2(5.0/7.0*100))
	assert.Equal(t, 33.33, Round2(100.0/3.0))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 100.0, Round2(100))
	assert.Equal(t, 12.5, Round2(12.5))
}

func TestMustParseUint(t *testing.T) {
	assert.Equal(t, uint(42), MustParseUint("42"))
	assert.Equal(t, uint(0), MustParseUint("no-numerico"))
	assert.Equal(t, uint(0), MustParseUint("-1"))
	assert.Equal(t, uint(0), MustParseUint(""))
}
