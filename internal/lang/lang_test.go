package lang

import "testing"

func TestLanguageOf(t *testing.T) {
	tests := []struct {
		path string
		want ID
		ok   bool
	}{
		{"main.rs", Rust, true},
		{"index.js", JavaScript, true},
		{"component.jsx", JavaScript, true},
		{"app.ts", TypeScript, true},
		{"App.TSX", Tsx, true},
		{"script.py", Python, true},
		{"main.go", Go, true},
		{"Main.java", Java, true},
		{"lib.c", C, true},
		{"lib.h", C, true},
		{"lib.cpp", Cpp, true},
		{"Program.cs", CSharp, true},
		{"model.rb", Ruby, true},
		{"index.php", Php, true},
		{"README.md", "", false},
		{"Makefile", "", false},
		{"noext", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, ok := LanguageOf(tc.path)
			if ok != tc.ok {
				t.Fatalf("LanguageOf(%q) ok = %v, want %v", tc.path, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("LanguageOf(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestLanguage_BuildsAndCaches(t *testing.T) {
	l1, ok := Language(Go)
	if !ok {
		t.Fatal("Language(Go) returned ok=false")
	}
	if l1 == nil {
		t.Fatal("Language(Go) returned a nil language")
	}

	l2, ok := Language(Go)
	if !ok {
		t.Fatal("second Language(Go) call returned ok=false")
	}
	if l1 != l2 {
		t.Error("Language(Go) did not return the cached instance on second call")
	}
}

func TestLanguage_UnknownID(t *testing.T) {
	if _, ok := Language(ID("NotALanguage")); ok {
		t.Error("Language with an unregistered ID should return ok=false")
	}
}
