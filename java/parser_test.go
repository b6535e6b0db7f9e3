package java_test

import (
	"testing"

	"github.com/lintkit/starfix/checker"
	"github.com/lintkit/starfix/java"
)

func TestLoad_Package(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantPkg string
	}{
		{
			name:    "named package",
			source:  "package com.example;\n\npublic class A {}\n",
			wantPkg: "com.example",
		},
		{
			name:    "default package",
			source:  "public class A {}\n",
			wantPkg: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, err := java.Load([]byte(tt.source), nil)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if unit.Package() != tt.wantPkg {
				t.Errorf("Package() = %q, want %q", unit.Package(), tt.wantPkg)
			}
		})
	}
}

func TestLoad_Imports(t *testing.T) {
	source := `package com.example;

import java.util.List;
import java.util.*;
import static java.util.Collections.emptyList;
import static java.util.Collections.*;

public class A {}
`
	unit, err := java.Load([]byte(source), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []struct {
		path     string
		static   bool
		wildcard bool
	}{
		{"java.util.List", false, false},
		{"java.util.*", false, true},
		{"java.util.Collections.emptyList", true, false},
		{"java.util.Collections.*", true, true},
	}
	imports := unit.Imports()
	if len(imports) != len(want) {
		t.Fatalf("Imports() returned %d declarations, want %d", len(imports), len(want))
	}
	for i, w := range want {
		got := imports[i]
		if got.Path != w.path || got.Static != w.static || got.Wildcard != w.wildcard {
			t.Errorf("import %d = {%q static=%v wildcard=%v}, want {%q static=%v wildcard=%v}",
				i, got.Path, got.Static, got.Wildcard, w.path, w.static, w.wildcard)
		}
		if got.Location.End <= got.Location.Start {
			t.Errorf("import %d has empty location", i)
		}
	}
	if imports[0].Scope() != "java.util" {
		t.Errorf("single import Scope() = %q, want java.util", imports[0].Scope())
	}
	if imports[1].Scope() != "java.util" {
		t.Errorf("wildcard import Scope() = %q, want java.util", imports[1].Scope())
	}
	if imports[3].Scope() != "java.util.Collections" {
		t.Errorf("static wildcard Scope() = %q, want java.util.Collections", imports[3].Scope())
	}
}

func TestLoad_ImportLines(t *testing.T) {
	source := "package p;\n\nimport java.util.*;\n\nclass A {}\n"
	unit, err := java.Load([]byte(source), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(unit.Imports()) != 1 {
		t.Fatalf("expected one import, got %d", len(unit.Imports()))
	}
	if line := unit.Imports()[0].Location.Line; line != 3 {
		t.Errorf("import line = %d, want 3", line)
	}
}

func TestParseImports_InsertOffset(t *testing.T) {
	source := "package com.example;\n\npublic class A {}\n"
	imports, insertAt, err := java.ParseImports([]byte(source))
	if err != nil {
		t.Fatalf("ParseImports() error = %v", err)
	}
	if len(imports) != 0 {
		t.Fatalf("expected no imports, got %d", len(imports))
	}
	if want := len("package com.example;"); insertAt != want {
		t.Errorf("insertAt = %d, want %d", insertAt, want)
	}
}

func TestIndex_HarvestSource(t *testing.T) {
	source := `package com.example.util;

public class Strings {
    public static final String EMPTY = "";
    private int counter;

    public static String join(String a, String b) {
        return a + b;
    }

    public String instanceOnly() {
        return EMPTY;
    }

    public static class Pair {}
}
`
	index := java.NewIndex()
	if err := index.HarvestSource([]byte(source)); err != nil {
		t.Fatalf("HarvestSource() error = %v", err)
	}

	if sym, ok := index.Lookup("com.example.util", "Strings"); !ok || sym.Kind != checker.KindType {
		t.Errorf("Strings not indexed as type: %v %v", sym, ok)
	}
	if sym, ok := index.Lookup("com.example.util.Strings", "EMPTY"); !ok || sym.Kind != checker.KindField {
		t.Errorf("EMPTY not indexed as field: %v %v", sym, ok)
	}
	if sym, ok := index.Lookup("com.example.util.Strings", "join"); !ok || sym.Kind != checker.KindMethod {
		t.Errorf("join not indexed as method: %v %v", sym, ok)
	}
	if sym, ok := index.Lookup("com.example.util.Strings", "Pair"); !ok || sym.Kind != checker.KindType {
		t.Errorf("nested Pair not indexed as type: %v %v", sym, ok)
	}
	if _, ok := index.Lookup("com.example.util.Strings", "counter"); ok {
		t.Errorf("instance field counter should not be indexed")
	}
	if _, ok := index.Lookup("com.example.util.Strings", "instanceOnly"); ok {
		t.Errorf("instance method instanceOnly should not be indexed")
	}
}

func TestIndex_BuiltinTable(t *testing.T) {
	index := java.NewIndex()
	if sym, ok := index.Lookup("java.util", "List"); !ok || sym.Kind != checker.KindType {
		t.Errorf("java.util.List missing from builtin table")
	}
	if sym, ok := index.Lookup("java.util.concurrent.TimeUnit", "SECONDS"); !ok || sym.Kind != checker.KindField {
		t.Errorf("TimeUnit.SECONDS missing from builtin table")
	}
	if sym, ok := index.Lookup("java.util.Collections", "emptyList"); !ok || sym.Kind != checker.KindMethod {
		t.Errorf("Collections.emptyList missing from builtin table")
	}
}
