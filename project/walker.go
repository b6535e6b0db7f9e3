package project

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Walker lists the Java source files a run should analyze.
type Walker struct {
	exclude   []glob.Glob
	skipTests bool
}

// NewWalker compiles the exclude patterns, which match slash-separated paths
// relative to the walk root.
func NewWalker(exclude []string, skipTests bool) (*Walker, error) {
	w := &Walker{skipTests: skipTests}
	for _, pattern := range exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		w.exclude = append(w.exclude, g)
	}
	return w, nil
}

// List returns the relative paths of all .java files under root, in
// deterministic walk order.
func (w *Walker) List(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if entry.IsDir() {
			if rel != "." && (w.excluded(rel) || entry.Name() == ".git") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".java" {
			return nil
		}
		if w.excluded(rel) {
			return nil
		}
		if w.skipTests && isTestFile(rel) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return files, nil
}

func (w *Walker) excluded(rel string) bool {
	for _, g := range w.exclude {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// isTestFile mirrors the Maven/Gradle conventions: test source trees and
// *Test.java / *Tests.java / *IT.java files.
func isTestFile(rel string) bool {
	if strings.Contains(rel, "src/test/") {
		return true
	}
	base := strings.TrimSuffix(filepath.Base(rel), ".java")
	return strings.HasSuffix(base, "Test") ||
		strings.HasSuffix(base, "Tests") ||
		strings.HasSuffix(base, "IT")
}
