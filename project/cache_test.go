package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lintkit/starfix/project"
)

func TestHashContent_Deterministic(t *testing.T) {
	a, err := project.HashContent([]byte("class A {}"))
	assert.NoError(t, err)
	b, err := project.HashContent([]byte("class A {}"))
	assert.NoError(t, err)
	c, err := project.HashContent([]byte("class B {}"))
	assert.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestCache_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".starfix.cache")

	cache := project.OpenCache(path)
	assert.False(t, cache.Clean("A.java", 1))

	cache.MarkClean("A.java", 1)
	cache.MarkClean("B.java", 2)
	assert.NoError(t, cache.Save())

	reloaded := project.OpenCache(path)
	assert.True(t, reloaded.Clean("A.java", 1))
	assert.True(t, reloaded.Clean("B.java", 2))
	assert.False(t, reloaded.Clean("A.java", 99), "changed content must miss")

	reloaded.Invalidate("A.java")
	assert.NoError(t, reloaded.Save())
	assert.False(t, project.OpenCache(path).Clean("A.java", 1))
}

func TestCache_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".starfix.cache")
	assert.NoError(t, os.WriteFile(path, []byte("not msgpack"), 0o644))
	cache := project.OpenCache(path)
	assert.False(t, cache.Clean("A.java", 1))
}

func TestCache_SaveOnlyWhenDirty(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".starfix.cache")
	cache := project.OpenCache(path)
	assert.NoError(t, cache.Save())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "clean cache must not create a file")
}
