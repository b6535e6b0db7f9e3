package checker

import (
	"errors"
	"fmt"
)

// ErrNoMatchingImport reports that a needed import could not be attributed to
// any wildcard import of the unit. The wildcard scope said the symbol came
// from an on-demand import, so a matching declaration must exist; its absence
// is an internal inconsistency, not a lint finding.
var ErrNoMatchingImport = errors.New("no matching wildcard import")

// Grouping partitions needed imports by the wildcard import that supplies
// them. Groups are parallel to the wildcard import slice the grouping was
// built from; an unused wildcard import has an empty group.
type Grouping struct {
	groups [][]NeededImport
}

// Group assigns each needed import to the wildcard import whose scope name
// equals its owner, comparing fully qualified names exactly. Two scopes are
// never conflated on a prefix or suffix match.
func Group(wildcards []ImportDecl, needed []NeededImport) (*Grouping, error) {
	g := &Grouping{groups: make([][]NeededImport, len(wildcards))}
	for _, need := range needed {
		idx := -1
		for i, imp := range wildcards {
			if imp.Scope() == need.Owner {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, fmt.Errorf("%w for %s", ErrNoMatchingImport, need.QualifiedName())
		}
		g.groups[idx] = append(g.groups[idx], need)
	}
	return g, nil
}

// At returns the needed imports attributed to the i-th wildcard import.
func (g *Grouping) At(i int) []NeededImport {
	if i < 0 || i >= len(g.groups) {
		return nil
	}
	return g.groups[i]
}
