package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobArchiveName(t *testing.T) {
	job := NewJob("SDL2", "https://www.libsdl.org/release/SDL2-devel-2.0.16-VC.zip", "")
	assert.Equal(t, "SDL2-devel-2.0.16-VC.zip", job.ArchiveName())
}

func TestJobTargetFolder(t *testing.T) {
	t.Run("derived from archive name", func(t *testing.T) {
		job := NewJob("", "https://www.libsdl.org/release/SDL2-devel-2.0.16-VC.zip", "")
		assert.Equal(t, "SDL2-devel-2.0.16-VC", job.TargetFolder())
	})

	t.Run("override takes precedence", func(t *testing.T) {
		job := NewJob("", "https://www.libsdl.org/release/SDL2-devel-2.0.16-VC.zip", "SDL2-2.0.16")
		assert.Equal(t, "SDL2-2.0.16", job.TargetFolder())
	})
}

func TestJobValidate(t *testing.T) {
	valid := NewJob("SDL2", "https://example.com/a/lib.zip", "")
	require.NoError(t, valid.Validate())

	notZip := NewJob("SDL2", "https://example.com/a/lib.tar.gz", "lib")
	err := notZip.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPrecondition))

	onlyExtension := NewJob("", "https://example.com/a/.zip", "")
	assert.ErrorIs(t, onlyExtension.Validate(), ErrPrecondition)
}

func TestJobLabel(t *testing.T) {
	assert.Equal(t, "SDL2_net", NewJob("SDL2_net", "https://example.com/x.zip", "").Label())
	assert.Equal(t, "x", NewJob("", "https://example.com/x.zip", "").Label())
}

func TestNewJobAssignsUniqueIDs(t *testing.T) {
	a := NewJob("a", "https://example.com/a.zip", "")
	b := NewJob("a", "https://example.com/a.zip", "")
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}
