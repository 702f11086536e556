package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomTokenLength(t *testing.T) {
	for _, length := range []int{1, 5, 10} {
		assert.Len(t, GenerateRandomToken(length), length)
	}
}

func TestGenerateRandomTokenUsesAlphabet(t *testing.T) {
	for i := 0; i < 50; i++ {
		token := GenerateRandomToken(5)
		for _, r := range token {
			assert.True(t, strings.ContainsRune(TokenAlphabet, r), "unexpected character %q", r)
		}
	}
}
