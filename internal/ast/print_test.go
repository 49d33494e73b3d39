package ast

import "testing"

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (func() bool {
		for i := 0; i+len(substr) <= len(s); i++ {
			if s[i:i+len(substr)] == substr {
				return true
			}
		}
		return false
	})()
}

func TestPrint_DefnDecl(t *testing.T) {
	decl := &DefnDecl{
		Name:   "double",
		Params: []string{"x"},
		Body: &BinOp{
			Op:    "+",
			Left:  &Sym{Name: "x", Loc: Loc{File: "a.va", Line: 1, Col: 10}},
			Right: &Sym{Name: "x", Loc: Loc{File: "a.va", Line: 1, Col: 12}},
			Loc:   Loc{File: "a.va", Line: 1, Col: 9},
		},
		Loc: Loc{File: "a.va", Line: 1, Col: 1},
	}

	out := Print(decl)
	if out == "" {
		t.Fatal("Print returned empty string")
	}
	if !contains(out, "DefnDecl") {
		t.Errorf("output missing node type: %s", out)
	}
	if !contains(out, "double") {
		t.Errorf("output missing name: %s", out)
	}
	if !contains(out, "test://unit") {
		t.Errorf("output did not normalize file name: %s", out)
	}
}

func TestPrint_Nil(t *testing.T) {
	if Print(nil) != "null" {
		t.Fatal("expected \"null\" for nil node")
	}
}

func TestPrint_Match(t *testing.T) {
	m := &Match{
		Scrutinee: &Sym{Name: "x", Loc: Loc{File: "a.va"}},
		Clauses: []MatchClause{
			{Pattern: &PWildcard{Loc: Loc{File: "a.va"}}, Body: &Literal{Kind: LitInt, Int: 1, Loc: Loc{File: "a.va"}}},
		},
		Loc: Loc{File: "a.va"},
	}
	out := Print(m)
	if !contains(out, "Match") {
		t.Errorf("output missing Match: %s", out)
	}
}
