package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA256Hex(t *testing.T) {
	// echo -n "abc" | sha256sum
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", SHA256Hex("a", "b", "c"))
	assert.Len(t, SHA256Hex("1", "Recife", "123456789"), 64)
	assert.NotEqual(t, SHA256Hex("1", "Recife", "1"), SHA256Hex("1", "Recife", "2"))
}
