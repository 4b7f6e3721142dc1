package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDecodeOutput(t *testing.T) {
	assert.Equal(t,
		filepath.Join("saves", "my_save.sol.decoded.json"),
		defaultDecodeOutput(filepath.Join("saves", "my_save.json")))
	assert.Equal(t, "default.sol.decoded.json", defaultDecodeOutput("default.json"))
}

func TestDefaultEncodeOutput(t *testing.T) {
	assert.Equal(t,
		filepath.Join("saves", "my_save.reencoded.json"),
		defaultEncodeOutput(filepath.Join("saves", "my_save.sol.decoded.json")))
	assert.Equal(t, "legacy.reencoded.json", defaultEncodeOutput("legacy.json"))
}
