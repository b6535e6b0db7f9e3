package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lintkit/starfix/project"
)

func TestDetector_Maven(t *testing.T) {
	root := t.TempDir()
	pom := `<project><artifactId>billing-service</artifactId></project>`
	assert.NoError(t, os.WriteFile(filepath.Join(root, "pom.xml"), []byte(pom), 0o644))
	nested := filepath.Join(root, "src", "main", "java")
	assert.NoError(t, os.MkdirAll(nested, 0o755))

	detector := project.NewDetector()
	proj, err := detector.Detect(nested)
	assert.NoError(t, err)
	assert.Equal(t, "maven", proj.Type)
	assert.Equal(t, "billing-service", proj.Name)
	assert.Equal(t, root, proj.RootPath)
}

func TestDetector_Gradle(t *testing.T) {
	root := t.TempDir()
	gradle := `rootProject.name = 'inventory'`
	assert.NoError(t, os.WriteFile(filepath.Join(root, "build.gradle"), []byte(gradle), 0o644))

	detector := project.NewDetector()
	proj, err := detector.Detect(root)
	assert.NoError(t, err)
	assert.Equal(t, "gradle", proj.Type)
	assert.Equal(t, "inventory", proj.Name)
}

func TestDetector_NoMarkers(t *testing.T) {
	root := t.TempDir()
	detector := project.NewDetector()
	proj, err := detector.Detect(root)
	assert.NoError(t, err)
	// Temp dirs have no markers above them either in most setups, but a
	// host machine may; only the fallback name is stable to assert.
	assert.NotEmpty(t, proj.Name)
	assert.NotEmpty(t, proj.RootPath)
}
