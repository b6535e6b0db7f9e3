package java

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/lintkit/starfix/checker"
)

// resolver binds unqualified identifier references to symbols. Resolution
// precedence mirrors the language: declarations in the unit itself, then
// single-symbol imports, then the unit's own package, then on-demand
// imports. Qualified references are left unresolved on purpose: only the
// unqualified use of a name can depend on a wildcard import.
type resolver struct {
	pkg       string
	source    []byte
	index     *Index
	decls     map[string]bool
	singles   map[string]string
	wildcards []checker.ImportDecl
}

func newResolver(pkg string, imports []checker.ImportDecl, decls map[string]bool, index *Index, src []byte) *resolver {
	r := &resolver{
		pkg:     pkg,
		source:  src,
		index:   index,
		decls:   decls,
		singles: map[string]string{},
	}
	for _, imp := range imports {
		if imp.Wildcard {
			r.wildcards = append(r.wildcards, imp)
			continue
		}
		r.singles[memberName(imp.Path)] = imp.Scope()
	}
	return r
}

func (r *resolver) resolve(n *sitter.Node) (checker.Symbol, bool) {
	if !isUnqualified(n) {
		return checker.Symbol{}, false
	}
	name := n.Content(r.source)

	if r.decls[name] {
		// Declared in this unit; visible without any import.
		return checker.Symbol{Name: name, Owner: r.pkg, Kind: checker.KindOther}, true
	}
	if owner, ok := r.singles[name]; ok {
		if sym, found := r.index.Lookup(owner, name); found {
			return sym, true
		}
		return checker.Symbol{Name: name, Owner: owner, Kind: checker.KindType}, true
	}
	if sym, ok := r.index.Lookup(r.pkg, name); ok {
		return sym, true
	}
	for _, imp := range r.wildcards {
		if sym, ok := r.index.Lookup(imp.Scope(), name); ok {
			return sym, true
		}
	}
	return checker.Symbol{}, false
}

// isUnqualified reports whether an identifier node is a simple, leftmost
// reference. The member position of a field access, method call or scoped
// name resolves relative to its qualifier and never through the unit's
// import scopes.
func isUnqualified(n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return false
	}
	switch parent.Type() {
	case "package_declaration":
		return false
	case "field_access":
		field := parent.ChildByFieldName("field")
		return field == nil || !field.Equal(n)
	case "method_invocation":
		if object := parent.ChildByFieldName("object"); object != nil {
			name := parent.ChildByFieldName("name")
			return name == nil || !name.Equal(n)
		}
		return true
	case "method_reference":
		first := parent.NamedChild(0)
		return first != nil && first.Equal(n)
	case "scoped_identifier", "scoped_type_identifier":
		first := parent.NamedChild(0)
		if first == nil || !first.Equal(n) {
			return false
		}
		// The leftmost name of a scoped chain is unqualified only when
		// the chain itself is not nested under another scope.
		return isUnqualified(parent) || parent.Parent() == nil
	}
	return true
}

// wildcardScope is the set of symbols visible in one unit solely through its
// on-demand imports, as required by checker.WildcardScope.
type wildcardScope struct {
	members map[checker.Symbol]bool
}

func (s *wildcardScope) Includes(sym checker.Symbol) bool {
	return s.members[sym]
}

// buildScope expands every wildcard import through the index and removes the
// names that some earlier resolution path would supply anyway: declarations
// in the unit, single-symbol imports, and the unit's own package.
func buildScope(pkg string, imports []checker.ImportDecl, decls map[string]bool, index *Index) *wildcardScope {
	singles := map[string]bool{}
	for _, imp := range imports {
		if !imp.Wildcard {
			singles[memberName(imp.Path)] = true
		}
	}

	scope := &wildcardScope{members: map[checker.Symbol]bool{}}
	for _, imp := range imports {
		if !imp.Wildcard {
			continue
		}
		for name, sym := range index.Members(imp.Scope()) {
			if decls[name] || singles[name] {
				continue
			}
			if _, samePkg := index.Lookup(pkg, name); samePkg {
				continue
			}
			scope.members[sym] = true
		}
	}
	return scope
}

// declaredNames collects every name declared anywhere in the unit: types,
// methods, fields, locals, parameters, enum constants and type parameters.
// Any of them shadows a like-named wildcard scope member.
func declaredNames(root *sitter.Node, src []byte) map[string]bool {
	decls := map[string]bool{}
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		switch n.Type() {
		case "class_declaration", "interface_declaration", "enum_declaration",
			"annotation_type_declaration", "record_declaration",
			"method_declaration", "constructor_declaration",
			"variable_declarator", "formal_parameter", "enum_constant",
			"catch_formal_parameter":
			if name := n.ChildByFieldName("name"); name != nil {
				decls[name.Content(src)] = true
			}
		case "type_parameter":
			if first := n.NamedChild(0); first != nil {
				decls[first.Content(src)] = true
			}
		}
		for i := uint32(0); i < n.NamedChildCount(); i++ {
			walk(n.NamedChild(int(i)))
		}
	}
	walk(root)
	return decls
}

// memberName returns the last segment of a qualified name.
func memberName(path string) string {
	if idx := strings.LastIndex(path, "."); idx != -1 {
		return path[idx+1:]
	}
	return path
}
