package java

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/lintkit/starfix/checker"
)

// Index maps owner qualified names to the importable members they declare.
// An owner is either a package (whose members are types) or a type (whose
// members are static fields and methods, reachable via static on-demand
// imports). An Index is built once per run and read-only afterwards.
type Index struct {
	members map[string]map[string]checker.Symbol
}

// NewIndex returns an index seeded with the builtin JDK symbol table.
func NewIndex() *Index {
	idx := &Index{members: map[string]map[string]checker.Symbol{}}
	for _, sym := range jdkSymbols {
		idx.Add(sym)
	}
	return idx
}

// Add registers a symbol under its owner. Later additions win, which lets a
// project shadow builtin entries.
func (x *Index) Add(sym checker.Symbol) {
	owner := x.members[sym.Owner]
	if owner == nil {
		owner = map[string]checker.Symbol{}
		x.members[sym.Owner] = owner
	}
	owner[sym.Name] = sym
}

// Lookup finds a member of the given owner by simple name.
func (x *Index) Lookup(owner, name string) (checker.Symbol, bool) {
	sym, ok := x.members[owner][name]
	return sym, ok
}

// Members returns all members of an owner, keyed by simple name. The result
// must not be mutated.
func (x *Index) Members(owner string) map[string]checker.Symbol {
	return x.members[owner]
}

// HarvestSource parses one Java file and registers its importable
// declarations: public top-level types, their nested types, public static
// fields and methods, and enum constants.
func (x *Index) HarvestSource(src []byte) error {
	root, _, err := parse(src)
	if err != nil {
		return err
	}
	pkg := parsePackage(root, src)
	for i := uint32(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(int(i))
		switch child.Type() {
		case "class_declaration", "interface_declaration", "enum_declaration",
			"annotation_type_declaration", "record_declaration":
			x.harvestType(child, src, pkg)
		}
	}
	return nil
}

// harvestType registers a type declaration and its static members. owner is
// the qualified name of the scope declaring the type.
func (x *Index) harvestType(n *sitter.Node, src []byte, owner string) {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	typeName := nameNode.Content(src)
	x.Add(checker.Symbol{Name: typeName, Owner: owner, Kind: checker.KindType})

	qualified := typeName
	if owner != "" {
		qualified = owner + "." + typeName
	}

	body := n.ChildByFieldName("body")
	if body == nil {
		return
	}
	for i := uint32(0); i < body.NamedChildCount(); i++ {
		member := body.NamedChild(int(i))
		switch member.Type() {
		case "field_declaration":
			if !hasModifier(member, "static") {
				continue
			}
			if declarator := member.ChildByFieldName("declarator"); declarator != nil {
				if name := declarator.ChildByFieldName("name"); name != nil {
					x.Add(checker.Symbol{Name: name.Content(src), Owner: qualified, Kind: checker.KindField})
				}
			}
		case "method_declaration":
			if !hasModifier(member, "static") {
				continue
			}
			if name := member.ChildByFieldName("name"); name != nil {
				x.Add(checker.Symbol{Name: name.Content(src), Owner: qualified, Kind: checker.KindMethod})
			}
		case "constant_declaration":
			// Interface constants are implicitly static.
			if declarator := member.ChildByFieldName("declarator"); declarator != nil {
				if name := declarator.ChildByFieldName("name"); name != nil {
					x.Add(checker.Symbol{Name: name.Content(src), Owner: qualified, Kind: checker.KindField})
				}
			}
		case "enum_constant":
			if name := member.ChildByFieldName("name"); name != nil {
				x.Add(checker.Symbol{Name: name.Content(src), Owner: qualified, Kind: checker.KindField})
			}
		case "class_declaration", "interface_declaration", "enum_declaration",
			"annotation_type_declaration", "record_declaration":
			x.harvestType(member, src, qualified)
		}
	}
}

// hasModifier reports whether a declaration node carries the given modifier.
// Modifier keywords are anonymous tokens, so all children of the modifiers
// node are inspected, not just the named ones.
func hasModifier(n *sitter.Node, modifier string) bool {
	if n.NamedChildCount() == 0 || n.NamedChild(0).Type() != "modifiers" {
		return false
	}
	modifiers := n.NamedChild(0)
	for i := uint32(0); i < modifiers.ChildCount(); i++ {
		if modifiers.Child(int(i)).Type() == modifier {
			return true
		}
	}
	return false
}
