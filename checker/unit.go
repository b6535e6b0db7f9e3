package checker

import "strings"

// Location is a byte range within the unit's source.
type Location struct {
	Start int
	End   int
	Line  int
}

// ImportDecl is one import declaration of a compilation unit, in source order.
type ImportDecl struct {
	// Path is the import target as written, e.g. "java.util.List" or
	// "java.util.*".
	Path     string
	Static   bool
	Wildcard bool
	Location Location
}

// Scope returns the qualified name of the imported scope. For a wildcard
// import this strips the trailing ".*"; for a single import it strips the
// member name.
func (d ImportDecl) Scope() string {
	if d.Wildcard {
		return strings.TrimSuffix(d.Path, ".*")
	}
	if idx := strings.LastIndex(d.Path, "."); idx != -1 {
		return d.Path[:idx]
	}
	return d.Path
}

// NodeType discriminates the tree nodes the collector cares about. Everything
// else is NodeOther and is only traversed.
type NodeType int

const (
	NodeOther NodeType = iota
	NodeImport
	NodeConstructor
	NodeIdent
)

// Node is one node of the unit's syntax tree as exposed by the front end.
// Only the method matching the node's type carries meaning: Ref for
// NodeIdent, Synthetic and Body for NodeConstructor.
type Node interface {
	Type() NodeType
	Children() []Node

	// Ref resolves an identifier reference to its canonical symbol.
	// The second result is false when resolution failed.
	Ref() (Symbol, bool)

	// Synthetic reports whether a constructor was generated by the
	// resolver rather than written in source.
	Synthetic() bool

	// Body returns a constructor's body subtree, or nil.
	Body() Node
}

// WildcardScope answers whether a symbol is visible in the unit solely
// because of its on-demand imports.
type WildcardScope interface {
	Includes(sym Symbol) bool
}

// Unit is a parsed, semantically resolved compilation unit. Implementations
// are read-only for the duration of a check.
type Unit interface {
	// Imports returns the unit's import declarations in source order.
	Imports() []ImportDecl

	// Root returns the root of the unit's syntax tree.
	Root() Node

	// Scope returns the unit's wildcard scope.
	Scope() WildcardScope
}
