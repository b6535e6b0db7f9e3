// Package project discovers Java source files and runs the wildcard-import
// rule across them.
package project

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

// Project describes the project enclosing a path.
type Project struct {
	Type     string
	Name     string
	RootPath string
}

// Detector identifies project root folders and provides project information.
type Detector struct {
	markers []string
}

// NewDetector creates a new project detector instance.
func NewDetector() *Detector {
	return &Detector{
		markers: []string{
			"pom.xml",      // Maven projects
			"build.gradle", // Gradle projects
			"go.mod",       // mixed repos with Go tooling at the root
			".git",         // generic VCS marker
		},
	}
}

// Detect identifies the project root for the given path. When no marker is
// found the path itself becomes the root with type "unknown".
func (d *Detector) Detect(path string) (*Project, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, projectType := d.findProjectRoot(startDir)
	project := &Project{
		Type:     "unknown",
		RootPath: absPath,
	}
	if rootPath != "" {
		project.RootPath = rootPath
		project.Type = projectType
		project.Name = extractProjectName(rootPath, projectType)
	}
	if project.Name == "" {
		project.Name = filepath.Base(project.RootPath)
	}
	return project, nil
}

// findProjectRoot searches up from the current directory for project markers.
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, projectTypeFor(marker)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

func projectTypeFor(marker string) string {
	switch marker {
	case "pom.xml":
		return "maven"
	case "build.gradle":
		return "gradle"
	case "go.mod":
		return "go"
	case ".git":
		return "git"
	default:
		return "unknown"
	}
}

func extractProjectName(rootPath, projectType string) string {
	switch projectType {
	case "maven":
		return extractMavenProjectName(filepath.Join(rootPath, "pom.xml"))
	case "gradle":
		return extractGradleProjectName(filepath.Join(rootPath, "build.gradle"))
	case "go":
		return extractGoModuleName(filepath.Join(rootPath, "go.mod"))
	default:
		return ""
	}
}

func extractMavenProjectName(pomPath string) string {
	data, err := os.ReadFile(pomPath)
	if err != nil {
		return ""
	}
	artifactIDRegex := regexp.MustCompile(`<artifactId>([^<]+)</artifactId>`)
	matches := artifactIDRegex.FindSubmatch(data)
	if len(matches) < 2 {
		return ""
	}
	return string(matches[1])
}

func extractGradleProjectName(gradlePath string) string {
	data, err := os.ReadFile(gradlePath)
	if err != nil {
		return ""
	}
	nameRegex := regexp.MustCompile(`(?:rootProject|project)\.name\s*=\s*['"]([^'"]+)['"]`)
	matches := nameRegex.FindSubmatch(data)
	if len(matches) < 2 {
		return ""
	}
	return string(matches[1])
}

func extractGoModuleName(goModPath string) string {
	fs := afs.New()
	if content, _ := fs.DownloadWithURL(context.Background(), goModPath); len(content) > 0 {
		if mod, _ := modfile.Parse(goModPath, content, nil); mod != nil {
			return mod.Module.Mod.Path
		}
	}
	return ""
}
