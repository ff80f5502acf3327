package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadIntFromFile(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "value")
	err := os.WriteFile(filePath, []byte(" 42000\n"), 0644)
	assert.NoError(t, err)

	// WHEN
	value, err := ReadIntFromFile(filePath)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 42000, value)
}

func TestReadIntFromEmptyFile(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "value")
	err := os.WriteFile(filePath, []byte(""), 0644)
	assert.NoError(t, err)

	// WHEN
	_, err = ReadIntFromFile(filePath)

	// THEN
	assert.Error(t, err)
}

func TestReadIntFromMissingFile(t *testing.T) {
	// WHEN
	_, err := ReadIntFromFile(filepath.Join(t.TempDir(), "does-not-exist"))

	// THEN
	assert.Error(t, err)
}

func TestWriteIntToFile(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "value")

	// WHEN
	err := WriteIntToFile(128, filePath)

	// THEN
	assert.NoError(t, err)

	value, err := ReadIntFromFile(filePath)
	assert.NoError(t, err)
	assert.Equal(t, 128, value)
}

func TestWriteIntToFileAtomic(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "value")

	// WHEN
	err := WriteIntToFileAtomic(255, filePath)

	// THEN
	assert.NoError(t, err)

	value, err := ReadIntFromFile(filePath)
	assert.NoError(t, err)
	assert.Equal(t, 255, value)
}
