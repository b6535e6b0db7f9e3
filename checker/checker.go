package checker

// Match is a positive finding: the diagnostic anchor (the first wildcard
// import of the unit) and the edit that replaces every wildcard import with
// explicit ones.
type Match struct {
	At   ImportDecl
	Edit *Edit
}

// Checker runs the wildcard-import rule on one compilation unit at a time.
// The zero value is ready to use.
type Checker struct {
	// ImplicitScopes lists owners whose members never need an import.
	// Nil means java.lang only.
	ImplicitScopes []string
}

// Check analyzes one unit. It returns (nil, nil) when there is nothing to
// report: no wildcard imports, or wildcard imports whose removal plus
// replacement would amount to an empty edit. A non-nil error signals an
// internal inconsistency between the collected symbols and the unit's
// imports; no partial edit is ever returned alongside it.
func (c *Checker) Check(unit Unit) (*Match, error) {
	wildcards := FindWildcardImports(unit.Imports())
	if len(wildcards) == 0 {
		return nil, nil
	}

	needed := Collect(unit.Root(), unit.Scope(), c.ImplicitScopes)

	grouping, err := Group(wildcards, needed)
	if err != nil {
		return nil, err
	}

	edit := BuildEdit(wildcards, grouping)
	if edit.Empty() {
		return nil, nil
	}
	return &Match{At: wildcards[0], Edit: edit}, nil
}
