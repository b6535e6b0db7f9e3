package checker

// OpKind identifies one textual operation of an edit.
type OpKind int

const (
	OpRemoveImport OpKind = iota
	OpRemoveStaticImport
	OpAddImport
	OpAddStaticImport
)

// String returns the operation name as rendered in verbose diagnostics.
func (k OpKind) String() string {
	switch k {
	case OpRemoveImport:
		return "removeImport"
	case OpRemoveStaticImport:
		return "removeStaticImport"
	case OpAddImport:
		return "addImport"
	case OpAddStaticImport:
		return "addStaticImport"
	default:
		return "unknown"
	}
}

// Op is one operation of an edit. Spec is the import target: the path as
// written for removals (e.g. "java.util.*"), the fully qualified symbol name
// for insertions.
type Op struct {
	Kind OpKind
	Spec string
}

// Edit is an ordered, all-or-nothing source rewrite: deletions exactly cover
// the unit's wildcard imports, insertions the deduplicated needed set.
type Edit struct {
	Ops []Op
}

// Empty reports whether the edit carries no operations.
func (e *Edit) Empty() bool {
	return e == nil || len(e.Ops) == 0
}

// BuildEdit assembles the final edit: one removal per wildcard import,
// whether or not anything was attributed to it, then one insertion per
// needed import in group order. Duplicate insertions for the same
// (qualified name, static form) pair are suppressed.
func BuildEdit(wildcards []ImportDecl, grouping *Grouping) *Edit {
	edit := &Edit{}
	for _, imp := range wildcards {
		kind := OpRemoveImport
		if imp.Static {
			kind = OpRemoveStaticImport
		}
		edit.Ops = append(edit.Ops, Op{Kind: kind, Spec: imp.Path})
	}
	added := map[Op]bool{}
	for i := range wildcards {
		for _, need := range grouping.At(i) {
			kind := OpAddImport
			if need.Static {
				kind = OpAddStaticImport
			}
			op := Op{Kind: kind, Spec: need.QualifiedName()}
			if added[op] {
				continue
			}
			added[op] = true
			edit.Ops = append(edit.Ops, op)
		}
	}
	return edit
}
