package project

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/viant/afs"

	"github.com/lintkit/starfix/checker"
	"github.com/lintkit/starfix/config"
	"github.com/lintkit/starfix/internal/log"
	"github.com/lintkit/starfix/java"
	"github.com/lintkit/starfix/rewrite"
)

// Finding is one reported wildcard-import diagnostic.
type Finding struct {
	Path     string
	Line     int
	Wildcard string
	Edit     *checker.Edit
}

// Summary counts what a run did.
type Summary struct {
	Files    int
	Skipped  int
	Clean    int
	Findings int
	Fixed    int
	Failed   int
}

// Runner checks (and optionally fixes) every Java file of a project.
// Files are processed one at a time; the symbol index built up front is the
// only state shared between them, and it is read-only during analysis.
type Runner struct {
	cfg      *config.Config
	fs       afs.Service
	log      *log.Logger
	checker  *checker.Checker
	fix      bool
	useCache bool
}

// NewRunner creates a runner. fix selects rewrite mode; with it disabled the
// runner only reports.
func NewRunner(cfg *config.Config, fix bool, logger *log.Logger) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		cfg:      cfg,
		fs:       afs.New(),
		log:      logger,
		checker:  &checker.Checker{ImplicitScopes: cfg.ImplicitScopes},
		fix:      fix,
		useCache: cfg.Cache,
	}
}

// Run analyzes every Java file under root and returns the findings in walk
// order. Internal analysis errors fail the affected file only; they are
// counted in the summary and logged, never turned into findings.
func (r *Runner) Run(ctx context.Context, root string) (*Summary, []Finding, error) {
	walker, err := NewWalker(r.cfg.Exclude, r.cfg.SkipTests)
	if err != nil {
		return nil, nil, err
	}
	files, err := walker.List(root)
	if err != nil {
		return nil, nil, err
	}

	summary := &Summary{Files: len(files)}

	// The index sees every file of the project, including ones the cache
	// will skip: resolution must not depend on cache state.
	index := java.NewIndex()
	contents := make(map[string][]byte, len(files))
	for _, rel := range files {
		data, err := r.fs.DownloadWithURL(ctx, filepath.Join(root, rel))
		if err != nil {
			return nil, nil, err
		}
		contents[rel] = data
		if err := index.HarvestSource(data); err != nil {
			r.log.Warn("failed to index file", "path", rel, "error", err)
		}
	}

	cachePath := r.cfg.CachePath
	if cachePath == "" {
		cachePath = filepath.Join(root, ".starfix.cache")
	}
	cache := OpenCache(cachePath)

	var findings []Finding
	for _, rel := range files {
		data := contents[rel]
		hash, err := HashContent(data)
		if err != nil {
			return nil, nil, err
		}
		if r.useCache && cache.Clean(rel, hash) {
			summary.Skipped++
			continue
		}

		unit, err := java.Load(data, index)
		if err != nil {
			r.log.Warn("failed to parse file", "path", rel, "error", err)
			summary.Failed++
			continue
		}
		match, err := r.checker.Check(unit)
		if err != nil {
			r.log.Error("internal error analyzing file", "path", rel, "error", err)
			summary.Failed++
			continue
		}
		if match == nil {
			summary.Clean++
			if r.useCache {
				cache.MarkClean(rel, hash)
			}
			continue
		}

		summary.Findings++
		findings = append(findings, Finding{
			Path:     rel,
			Line:     match.At.Location.Line,
			Wildcard: match.At.Path,
			Edit:     match.Edit,
		})

		if !r.fix {
			cache.Invalidate(rel)
			continue
		}
		fixed, err := rewrite.Apply(data, match.Edit)
		if err != nil {
			r.log.Error("failed to build fix", "path", rel, "error", err)
			summary.Failed++
			continue
		}
		if err := r.fs.Upload(ctx, filepath.Join(root, rel), 0o644, bytes.NewReader(fixed)); err != nil {
			r.log.Error("failed to write fix", "path", rel, "error", err)
			summary.Failed++
			continue
		}
		summary.Fixed++
		if r.useCache {
			if newHash, err := HashContent(fixed); err == nil {
				cache.MarkClean(rel, newHash)
			}
		}
		r.log.Debug("fixed file", "path", rel, "imports", len(match.Edit.Ops))
	}

	if r.useCache {
		if err := cache.Save(); err != nil {
			r.log.Warn("failed to save cache", "error", err)
		}
	}
	return summary, findings, nil
}
