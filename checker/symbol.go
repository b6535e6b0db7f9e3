// Package checker implements the wildcard-import lint rule: it detects
// on-demand imports in a resolved compilation unit, determines which symbols
// each one actually supplies, and builds an edit replacing every wildcard
// import with explicit single-symbol imports.
package checker

// Kind classifies a resolved symbol for import-form selection.
type Kind int

const (
	// KindOther covers symbols that never need an import (packages, locals).
	KindOther Kind = iota
	// KindType is a class, interface, enum or annotation declaration.
	KindType
	// KindField is a field declaration.
	KindField
	// KindMethod is a method declaration.
	KindMethod
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindField:
		return "field"
	case KindMethod:
		return "method"
	default:
		return "other"
	}
}

// Symbol is a resolved name: simple name, qualified name of the owning scope,
// and kind. Symbols compare by value; the collector relies on that to
// deduplicate repeated references to the same declaration.
type Symbol struct {
	Name  string
	Owner string
	Kind  Kind
}

// QualifiedName returns the fully qualified name, owner.name.
func (s Symbol) QualifiedName() string {
	if s.Owner == "" {
		return s.Name
	}
	return s.Owner + "." + s.Name
}

// NeededImport is a single explicit import that must be added when a wildcard
// import is removed. Static form follows the symbol kind: types import
// non-statically, fields and methods statically.
type NeededImport struct {
	Name   string
	Owner  string
	Static bool
}

// QualifiedName returns the import target, owner.name.
func (n NeededImport) QualifiedName() string {
	return n.Owner + "." + n.Name
}

// neededImportFor maps a symbol to its import form. The second result is
// false for kinds that never need an import.
func neededImportFor(sym Symbol) (NeededImport, bool) {
	switch sym.Kind {
	case KindType:
		return NeededImport{Name: sym.Name, Owner: sym.Owner, Static: false}, true
	case KindField, KindMethod:
		return NeededImport{Name: sym.Name, Owner: sym.Owner, Static: true}, true
	default:
		return NeededImport{}, false
	}
}
