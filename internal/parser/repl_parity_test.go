package parser

import (
	"testing"

	"github.com/vaisto-lang/vaisto/internal/ast"
)

// TestREPLFileParity checks that a bare expression parses to the same AST
// shape whether its source name marks it as REPL input or a file, since
// the REPL front end synthesizes a throwaway module around the same parser.
func TestREPLFileParity(t *testing.T) {
	exprs := []string{
		"(+ 1 2)",
		"(* 2 3)",
		"(+ 1 (* 2 3))",
		"(foo bar baz)",
		"[1 2 3]",
		"(fn [x] (+ x 1))",
		"(let [x 5] (+ x 1))",
		"(if true 1 0)",
		"(&& true false)",
		`"hello world"`,
		"(. foo :bar)",
		"(> x 5)",
	}

	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			repl := NewFromSource("<repl>", []byte(expr))
			replFile := repl.Parse()
			if len(repl.Errors()) > 0 {
				t.Fatalf("repl parse errors: %v", repl.Errors())
			}

			file := NewFromSource("module.va", []byte(expr))
			fileFile := file.Parse()
			if len(file.Errors()) > 0 {
				t.Fatalf("file parse errors: %v", file.Errors())
			}

			replShape := ast.Print(replFile.Eval)
			fileShape := ast.Print(fileFile.Eval)
			if replShape != fileShape {
				t.Errorf("REPL/file parity mismatch for %q:\nrepl: %s\nfile: %s", expr, replShape, fileShape)
			}
		})
	}
}
