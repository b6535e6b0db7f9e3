// Package java adapts tree-sitter parse trees of Java compilation units to
// the checker's interfaces: it extracts import declarations, resolves
// identifier references against a symbol index, and materializes the unit's
// wildcard scope.
package java

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/lintkit/starfix/checker"
)

// Unit is one parsed, resolved Java compilation unit. It implements
// checker.Unit and is read-only after Load returns.
type Unit struct {
	source   []byte
	tree     *sitter.Tree
	root     *sitter.Node
	pkg      string
	imports  []checker.ImportDecl
	resolver *resolver
	scope    *wildcardScope
}

// Load parses src and resolves it against the given symbol index.
func Load(src []byte, index *Index) (*Unit, error) {
	if index == nil {
		index = NewIndex()
	}
	root, tree, err := parse(src)
	if err != nil {
		return nil, err
	}

	u := &Unit{
		source:  src,
		tree:    tree,
		root:    root,
		pkg:     parsePackage(root, src),
		imports: parseImports(root, src),
	}
	decls := declaredNames(root, src)
	u.resolver = newResolver(u.pkg, u.imports, decls, index, src)
	u.scope = buildScope(u.pkg, u.imports, decls, index)
	return u, nil
}

// Imports returns the unit's import declarations in source order.
func (u *Unit) Imports() []checker.ImportDecl { return u.imports }

// Root returns the unit's syntax tree root.
func (u *Unit) Root() checker.Node { return &node{n: u.root, u: u} }

// Scope returns the unit's wildcard scope.
func (u *Unit) Scope() checker.WildcardScope { return u.scope }

// Package returns the unit's package name, empty for the default package.
func (u *Unit) Package() string { return u.pkg }

func parse(src []byte) (*sitter.Node, *sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse source: %w", err)
	}
	return tree.RootNode(), tree, nil
}

// parsePackage extracts the package name from a compilation unit.
func parsePackage(root *sitter.Node, src []byte) string {
	for i := uint32(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(int(i))
		if child.Type() == "package_declaration" {
			if nameNode := child.NamedChild(0); nameNode != nil {
				return nameNode.Content(src)
			}
		}
	}
	return ""
}
