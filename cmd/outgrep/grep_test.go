package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunGrep_FindsEnclosingFunction(t *testing.T) {
	dir := t.TempDir()
	src := "package main\n\nfunc greet() {\n\tprintln(\"hello world\")\n}\n"
	if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	origRoot, origInclude, origExclude := flagRoot, flagInclude, flagExclude
	defer func() { flagRoot, flagInclude, flagExclude = origRoot, origInclude, origExclude }()
	flagRoot = dir
	flagInclude = nil
	flagExclude = nil
	exitCode = -1

	if err := runGrep(grepCmd, []string{"hello"}); err != nil {
		t.Fatalf("runGrep: %v", err)
	}
	if exitCode != 0 {
		t.Errorf("exitCode = %d, want 0 for a match", exitCode)
	}
}

func TestRunGrep_NoMatchExitsOne(t *testing.T) {
	dir := t.TempDir()
	src := "package main\n\nfunc greet() {}\n"
	if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	origRoot := flagRoot
	defer func() { flagRoot = origRoot }()
	flagRoot = dir
	exitCode = -1

	if err := runGrep(grepCmd, []string{"nonexistent_pattern_xyz"}); err != nil {
		t.Fatalf("runGrep: %v", err)
	}
	if exitCode != 1 {
		t.Errorf("exitCode = %d, want 1 for no match", exitCode)
	}
}
