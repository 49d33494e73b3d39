package ast

import (
	"encoding/json"
	"fmt"
)

// Print produces a deterministic JSON representation of an AST node,
// normalizing file names so golden snapshots are stable across machines.
// Mirrors the teacher's json-snapshot approach to AST debugging.
func Print(node Node) string {
	if node == nil {
		return "null"
	}
	data, err := json.MarshalIndent(simplify(node), "", "  ")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(data)
}

// simplify walks a node tree producing a map[string]interface{} suitable
// for json.Marshal, with Loc.File normalized to "test://unit" so
// snapshots don't depend on the working directory.
func simplify(node Node) interface{} {
	if node == nil {
		return nil
	}
	m := map[string]interface{}{
		"node": fmt.Sprintf("%T", node),
	}
	loc := node.Pos()
	loc.File = "test://unit"
	m["loc"] = loc

	switch n := node.(type) {
	case *File:
		var decls []interface{}
		for _, d := range n.Decls {
			decls = append(decls, simplify(d))
		}
		m["decls"] = decls
	case *Literal:
		switch n.Kind {
		case LitInt:
			m["value"] = n.Int
		case LitFloat:
			m["value"] = n.Float
		case LitBool:
			m["value"] = n.Bool
		case LitString:
			m["value"] = n.Str
		}
	case *Sym:
		m["name"] = n.Name
	case *Atom:
		m["tag"] = n.Tag
	case *If:
		m["cond"] = simplify(n.Cond)
		m["then"] = simplify(n.Then)
		m["else"] = simplify(n.Else)
	case *Let:
		var binds []interface{}
		for _, b := range n.Bindings {
			binds = append(binds, map[string]interface{}{"name": b.Name, "init": simplify(b.Init)})
		}
		m["bindings"] = binds
		m["body"] = simplify(n.Body)
	case *Fn:
		m["params"] = n.Params
		m["body"] = simplify(n.Body)
	case *Call:
		m["fn"] = simplify(n.Fn)
		var args []interface{}
		for _, a := range n.Args {
			args = append(args, simplify(a))
		}
		m["args"] = args
	case *BinOp:
		m["op"] = n.Op
		m["left"] = simplify(n.Left)
		m["right"] = simplify(n.Right)
	case *Do:
		var exprs []interface{}
		for _, e := range n.Exprs {
			exprs = append(exprs, simplify(e))
		}
		m["exprs"] = exprs
	case *Match:
		m["scrutinee"] = simplify(n.Scrutinee)
		var clauses []interface{}
		for _, c := range n.Clauses {
			clauses = append(clauses, map[string]interface{}{
				"pattern": simplify(c.Pattern),
				"body":    simplify(c.Body),
			})
		}
		m["clauses"] = clauses
	case *FieldAccess:
		m["record"] = simplify(n.Record)
		m["field"] = n.Field
	case *Spawn:
		m["process"] = n.Process
		m["init"] = simplify(n.Init)
	case *Send:
		m["pid"] = simplify(n.Pid)
		m["msg"] = simplify(n.Msg)
		m["safe"] = n.Safe
	case *DefnDecl:
		m["name"] = n.Name
		m["params"] = n.Params
		m["body"] = simplify(n.Body)
	case *DeftypeDecl:
		m["name"] = n.Name
		m["deriving"] = n.Deriving
	case *ProcessDecl:
		m["name"] = n.Name
		m["init"] = simplify(n.Init)
	}
	return m
}
