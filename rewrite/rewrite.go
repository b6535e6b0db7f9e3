// Package rewrite turns a checker edit into new source bytes. It rebuilds
// the unit's import block: removed imports are dropped, added ones merged
// in, and the block is rendered with static imports first, each group
// sorted. Nothing outside the import block is touched.
package rewrite

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lintkit/starfix/checker"
	"github.com/lintkit/starfix/java"
)

type importEntry struct {
	path   string
	static bool
}

// Apply rewrites src according to edit. The edit is applied all or nothing:
// a removal that matches no import declaration in src fails without
// producing output.
func Apply(src []byte, edit *checker.Edit) ([]byte, error) {
	if edit.Empty() {
		return src, nil
	}

	imports, insertAt, err := java.ParseImports(src)
	if err != nil {
		return nil, err
	}

	kept := make([]importEntry, 0, len(imports))
	for _, imp := range imports {
		kept = append(kept, importEntry{path: imp.Path, static: imp.Static})
	}

	for _, op := range edit.Ops {
		switch op.Kind {
		case checker.OpRemoveImport, checker.OpRemoveStaticImport:
			static := op.Kind == checker.OpRemoveStaticImport
			idx := -1
			for i, entry := range kept {
				if entry.path == op.Spec && entry.static == static {
					idx = i
					break
				}
			}
			if idx == -1 {
				return nil, fmt.Errorf("cannot apply edit: no import matches %s %q", op.Kind, op.Spec)
			}
			kept = append(kept[:idx], kept[idx+1:]...)
		case checker.OpAddImport, checker.OpAddStaticImport:
			entry := importEntry{path: op.Spec, static: op.Kind == checker.OpAddStaticImport}
			if !contains(kept, entry) {
				kept = append(kept, entry)
			}
		}
	}

	block := renderBlock(kept)

	start, end := insertAt, insertAt
	if len(imports) > 0 {
		start = imports[0].Location.Start
		end = imports[len(imports)-1].Location.End
	} else if block != "" {
		// No import block yet; open one below the package declaration.
		block = "\n\n" + block
	}

	if block == "" {
		// Everything removed, nothing added: swallow the trailing
		// newlines so a single blank line survives.
		for end < len(src) && src[end] == '\n' {
			end++
		}
	}

	result := make([]byte, 0, len(src)+len(block))
	result = append(result, src[:start]...)
	result = append(result, block...)
	result = append(result, src[end:]...)
	return result, nil
}

// renderBlock renders the import block: static imports, blank line,
// non-static imports, both groups sorted by path.
func renderBlock(entries []importEntry) string {
	var statics, plain []string
	for _, entry := range entries {
		if entry.static {
			statics = append(statics, "import static "+entry.path+";")
		} else {
			plain = append(plain, "import "+entry.path+";")
		}
	}
	sort.Strings(statics)
	sort.Strings(plain)

	var groups []string
	if len(statics) > 0 {
		groups = append(groups, strings.Join(statics, "\n"))
	}
	if len(plain) > 0 {
		groups = append(groups, strings.Join(plain, "\n"))
	}
	return strings.Join(groups, "\n\n")
}

func contains(entries []importEntry, entry importEntry) bool {
	for _, e := range entries {
		if e == entry {
			return true
		}
	}
	return false
}
