package java

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/lintkit/starfix/checker"
)

// node wraps a tree-sitter node as a checker.Node.
type node struct {
	n *sitter.Node
	u *Unit
}

func (n *node) Type() checker.NodeType {
	switch n.n.Type() {
	case "import_declaration":
		return checker.NodeImport
	case "constructor_declaration":
		return checker.NodeConstructor
	case "identifier", "type_identifier":
		return checker.NodeIdent
	default:
		return checker.NodeOther
	}
}

func (n *node) Children() []checker.Node {
	count := n.n.NamedChildCount()
	children := make([]checker.Node, 0, count)
	for i := uint32(0); i < count; i++ {
		children = append(children, &node{n: n.n.NamedChild(int(i)), u: n.u})
	}
	return children
}

func (n *node) Ref() (checker.Symbol, bool) {
	return n.u.resolver.resolve(n.n)
}

// Synthetic is always false here: tree-sitter only ever yields constructors
// that are written in source. The collector's synthetic handling is for
// front ends that expose resolver-generated members.
func (n *node) Synthetic() bool { return false }

func (n *node) Body() checker.Node {
	body := n.n.ChildByFieldName("body")
	if body == nil {
		return nil
	}
	return &node{n: body, u: n.u}
}
