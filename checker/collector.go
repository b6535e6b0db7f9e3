package checker

// defaultImplicitScope is always visible without an import in Java.
const defaultImplicitScope = "java.lang"

// collector walks a unit's syntax tree and accumulates the symbols that are
// only reachable through the unit's wildcard imports. The result set is
// deduplicated by symbol value and keeps first-seen order so the produced
// edit is deterministic.
type collector struct {
	scope    WildcardScope
	implicit map[string]bool
	seen     map[NeededImport]bool
	needed   []NeededImport
}

// Collect returns the explicit imports required to stand in for the unit's
// wildcard imports. Identifier references inside import declarations are
// ignored, as are the signatures of synthetic constructors; references that
// did not resolve never contribute. implicitScopes lists owners that need no
// import regardless of scope membership; nil means java.lang only.
func Collect(root Node, scope WildcardScope, implicitScopes []string) []NeededImport {
	if implicitScopes == nil {
		implicitScopes = []string{defaultImplicitScope}
	}
	implicit := make(map[string]bool, len(implicitScopes))
	for _, s := range implicitScopes {
		implicit[s] = true
	}
	c := &collector{
		scope:    scope,
		implicit: implicit,
		seen:     map[NeededImport]bool{},
	}
	c.walk(root)
	return c.needed
}

func (c *collector) walk(node Node) {
	if node == nil {
		return
	}
	switch node.Type() {
	case NodeImport:
		// Imports never use their own target.
		return
	case NodeConstructor:
		if node.Synthetic() {
			// A generated constructor's parameter and throws types are
			// resolver artifacts, not source usages. Only the body counts.
			c.walk(node.Body())
			return
		}
	case NodeIdent:
		c.visitIdent(node)
	}
	for _, child := range node.Children() {
		c.walk(child)
	}
}

func (c *collector) visitIdent(node Node) {
	sym, ok := node.Ref()
	if !ok {
		return
	}
	if !c.scope.Includes(sym) {
		return
	}
	if c.implicit[sym.Owner] {
		return
	}
	need, ok := neededImportFor(sym)
	if !ok {
		return
	}
	if c.seen[need] {
		return
	}
	c.seen[need] = true
	c.needed = append(c.needed, need)
}
