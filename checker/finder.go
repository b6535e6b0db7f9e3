package checker

// FindWildcardImports returns the ordered subsequence of declarations written
// in on-demand form, static or not. Classification is purely syntactic; no
// resolution is involved. An empty result means the rule has nothing to do.
func FindWildcardImports(imports []ImportDecl) []ImportDecl {
	var result []ImportDecl
	for _, imp := range imports {
		if imp.Wildcard {
			result = append(result, imp)
		}
	}
	return result
}
