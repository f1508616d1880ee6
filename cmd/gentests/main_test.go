package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	n, err := generate(dir, []TestCase{
		{"001_id", "x: x", "y: y"},
		{"002_bad", "(x", "x"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("wrote %d cases", n)
	}

	input, err := os.ReadFile(filepath.Join(dir, "001_id", "input.lam"))
	if err != nil {
		t.Fatal(err)
	}
	if string(input) != "x: x\n" {
		t.Fatalf("got %q", input)
	}
	test, err := os.ReadFile(filepath.Join(dir, "001_id", "reduction_test.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(test), "func Test_001_id_Reduction(") {
		t.Fatalf("got %s", test)
	}
	if _, err := os.Stat(filepath.Join(dir, "002_bad")); !os.IsNotExist(err) {
		t.Fatalf("unparsable case written: %v", err)
	}
}

// TestGenerateWriteError points the output at a regular file so every
// directory creation fails.
func TestGenerateWriteError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "generated")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	n, err := generate(file, []TestCase{
		{"001_id", "x: x", "y: y"},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if n != 0 {
		t.Fatalf("wrote %d cases", n)
	}

	// a case directory that cannot be created stops the run
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "001_id"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	n, err = generate(dir, []TestCase{
		{"001_id", "x: x", "y: y"},
		{"002_id_id", "(x: x) (y: y)", "z: z"},
	})
	if err == nil || !strings.Contains(err.Error(), "001_id") {
		t.Fatalf("got %v", err)
	}
	if n != 0 {
		t.Fatalf("wrote %d cases", n)
	}
}
