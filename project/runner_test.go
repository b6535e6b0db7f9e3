package project_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/txtar"

	"github.com/lintkit/starfix/config"
	"github.com/lintkit/starfix/project"
)

// writeProject materializes a txtar archive as a directory tree.
func writeProject(t *testing.T, archive string) string {
	t.Helper()
	root := t.TempDir()
	for _, file := range txtar.Parse([]byte(archive)).Files {
		path := filepath.Join(root, filepath.FromSlash(file.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, file.Data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

const mixedProject = `
-- pom.xml --
<project><artifactId>demo</artifactId></project>
-- src/main/java/com/example/util/Strings.java --
package com.example.util;

public class Strings {
    public static final String EMPTY = "";
}
-- src/main/java/com/example/App.java --
package com.example;

import com.example.util.*;

public class App {
    Strings s;
}
-- src/main/java/com/example/Clean.java --
package com.example;

public class Clean {
}
`

func TestRunner_Check(t *testing.T) {
	root := writeProject(t, mixedProject)
	cfg := config.Default()
	cfg.Cache = false

	runner := project.NewRunner(cfg, false, nil)
	summary, findings, err := runner.Run(context.Background(), root)
	assert.NoError(t, err)

	assert.Equal(t, 3, summary.Files)
	assert.Equal(t, 1, summary.Findings)
	assert.Equal(t, 2, summary.Clean)
	assert.Equal(t, 0, summary.Fixed)

	if assert.Len(t, findings, 1) {
		finding := findings[0]
		assert.Equal(t, "src/main/java/com/example/App.java", finding.Path)
		assert.Equal(t, 3, finding.Line)
		assert.Equal(t, "com.example.util.*", finding.Wildcard)
		assert.False(t, finding.Edit.Empty())
	}
}

func TestRunner_Fix(t *testing.T) {
	root := writeProject(t, mixedProject)
	cfg := config.Default()
	cfg.Cache = false

	runner := project.NewRunner(cfg, true, nil)
	summary, _, err := runner.Run(context.Background(), root)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Fixed)

	fixed, err := os.ReadFile(filepath.Join(root, "src/main/java/com/example/App.java"))
	assert.NoError(t, err)
	assert.Equal(t, `package com.example;

import com.example.util.Strings;

public class App {
    Strings s;
}
`, string(fixed))

	// A second run over the fixed tree reports nothing.
	summary, findings, err := runner.Run(context.Background(), root)
	assert.NoError(t, err)
	assert.Equal(t, 0, summary.Findings)
	assert.Empty(t, findings)
}

func TestRunner_CacheSkipsUnchangedCleanFiles(t *testing.T) {
	root := writeProject(t, mixedProject)
	cfg := config.Default()

	runner := project.NewRunner(cfg, false, nil)
	_, _, err := runner.Run(context.Background(), root)
	assert.NoError(t, err)

	if _, err := os.Stat(filepath.Join(root, ".starfix.cache")); err != nil {
		t.Fatalf("cache file not written: %v", err)
	}

	summary, findings, err := runner.Run(context.Background(), root)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.Skipped, "clean files should be cache hits")
	assert.Equal(t, 1, summary.Findings, "files with findings are never cached")
	assert.Len(t, findings, 1)
}

func TestRunner_ExcludePatterns(t *testing.T) {
	root := writeProject(t, mixedProject)
	cfg := config.Default()
	cfg.Cache = false
	cfg.Exclude = []string{"src/main/java/com/example/App.java"}

	runner := project.NewRunner(cfg, false, nil)
	summary, findings, err := runner.Run(context.Background(), root)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.Files)
	assert.Empty(t, findings)
}

func TestRunner_SkipTests(t *testing.T) {
	root := writeProject(t, `
-- src/main/java/com/example/App.java --
package com.example;

public class App {}
-- src/test/java/com/example/AppTest.java --
package com.example;

import java.util.*;

public class AppTest {
    List<String> xs;
}
`)
	cfg := config.Default()
	cfg.Cache = false
	cfg.SkipTests = true

	runner := project.NewRunner(cfg, false, nil)
	summary, findings, err := runner.Run(context.Background(), root)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Files)
	assert.Empty(t, findings)
}
