package java

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/lintkit/starfix/checker"
)

// parseImports extracts the ordered import list of a compilation unit.
func parseImports(root *sitter.Node, src []byte) []checker.ImportDecl {
	var imports []checker.ImportDecl
	for i := uint32(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(int(i))
		if child.Type() != "import_declaration" {
			continue
		}
		imports = append(imports, parseImportDeclaration(child, src))
	}
	return imports
}

// parseImportDeclaration reads one import_declaration node. The grammar
// represents an on-demand import as a trailing asterisk node and the static
// modifier as an anonymous keyword token, so both named and anonymous
// children are inspected.
func parseImportDeclaration(n *sitter.Node, src []byte) checker.ImportDecl {
	decl := checker.ImportDecl{
		Location: checker.Location{
			Start: int(n.StartByte()),
			End:   int(n.EndByte()),
			Line:  int(n.StartPoint().Row) + 1,
		},
	}
	for i := uint32(0); i < n.ChildCount(); i++ {
		child := n.Child(int(i))
		switch child.Type() {
		case "static":
			decl.Static = true
		case "identifier", "scoped_identifier":
			decl.Path = child.Content(src)
		case "asterisk":
			decl.Wildcard = true
		}
	}
	if decl.Wildcard {
		decl.Path += ".*"
	}
	return decl
}

// ParseImports parses src just far enough to report its import declarations
// and the byte offset at which an import block may be inserted when none
// exists (directly after the package declaration, or at the start of the
// file in the default package).
func ParseImports(src []byte) ([]checker.ImportDecl, int, error) {
	root, _, err := parse(src)
	if err != nil {
		return nil, 0, err
	}
	insertAt := 0
	for i := uint32(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(int(i))
		if child.Type() == "package_declaration" {
			insertAt = int(child.EndByte())
		}
	}
	return parseImports(root, src), insertAt, nil
}
