package parser

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vaisto-lang/vaisto/internal/ast"
)

// update controls whether golden files are (re)written instead of compared.
// Usage: go test ./internal/parser -update
var update = flag.Bool("update", false, "update golden files")

func goldenCompare(t *testing.T, name string, got string) {
	t.Helper()

	path := filepath.Join("testdata", "parser", name+".golden")

	if *update {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create directory %s: %v", dir, err)
		}
		if err := os.WriteFile(path, []byte(got), 0644); err != nil {
			t.Fatalf("failed to write golden file %s: %v", path, err)
		}
		t.Logf("updated golden file: %s", path)
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v\nrun with -update to create it", path, err)
	}
	if diff := cmp.Diff(string(want), got); diff != "" {
		t.Errorf("golden mismatch for %s (-want +got):\n%s", name, diff)
	}
}

// mustParse parses input and fails the test if any parse errors surface.
func mustParse(t *testing.T, input string) *ast.File {
	t.Helper()
	p := NewFromSource("test://unit", []byte(input))
	f := p.Parse()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors for %q:\n%v", input, p.Errors())
	}
	return f
}

// mustParseError parses input and fails the test unless at least one parse
// error surfaces.
func mustParseError(t *testing.T, input string) []error {
	t.Helper()
	p := NewFromSource("test://unit", []byte(input))
	p.Parse()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected parse errors for %q but got none", input)
	}
	return p.Errors()
}
