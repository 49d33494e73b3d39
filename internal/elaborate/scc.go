package elaborate

import "github.com/vaisto-lang/vaisto/internal/ast"

// callGraph maps each top-level defn name to the set of other top-level
// defn names its body refers to, directly or through a nested let/fn/
// match/do, so admitDefns can group mutually-recursive definitions
// together before inferring either one.
func callGraph(defns []*ast.DefnDecl) map[string]map[string]bool {
	names := make(map[string]bool, len(defns))
	for _, d := range defns {
		names[d.Name] = true
	}
	graph := make(map[string]map[string]bool, len(defns))
	for _, d := range defns {
		refs := make(map[string]bool)
		collectRefs(d.Body, names, refs)
		graph[d.Name] = refs
	}
	return graph
}

func collectRefs(e ast.Expr, names map[string]bool, out map[string]bool) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.Sym:
		if names[n.Name] {
			out[n.Name] = true
		}
	case *ast.If:
		collectRefs(n.Cond, names, out)
		collectRefs(n.Then, names, out)
		collectRefs(n.Else, names, out)
	case *ast.Let:
		for _, b := range n.Bindings {
			collectRefs(b.Init, names, out)
		}
		collectRefs(n.Body, names, out)
	case *ast.Fn:
		collectRefs(n.Body, names, out)
	case *ast.Call:
		collectRefs(n.Fn, names, out)
		for _, a := range n.Args {
			collectRefs(a, names, out)
		}
	case *ast.BinOp:
		collectRefs(n.Left, names, out)
		collectRefs(n.Right, names, out)
	case *ast.Do:
		for _, x := range n.Exprs {
			collectRefs(x, names, out)
		}
	case *ast.Match:
		collectRefs(n.Scrutinee, names, out)
		for _, cl := range n.Clauses {
			collectRefs(cl.Body, names, out)
		}
	case *ast.FieldAccess:
		collectRefs(n.Record, names, out)
	case *ast.Spawn:
		collectRefs(n.Init, names, out)
	case *ast.Send:
		collectRefs(n.Pid, names, out)
		collectRefs(n.Msg, names, out)
	}
}

// sccGroups runs Tarjan's strongly-connected-components algorithm over
// the top-level defn call graph, returning groups in the order Tarjan
// naturally emits them — every callee's (or whole mutually-recursive
// cluster's) group before its callers' — grounded on the teacher's
// scc.go CallGraph.SCCs, rebuilt over vaisto's flat top-level-defn call
// graph instead of its module/package dependency graph.
func sccGroups(defns []*ast.DefnDecl) [][]string {
	graph := callGraph(defns)
	order := make([]string, len(defns))
	for i, d := range defns {
		order[i] = d.Name
	}

	index := map[string]int{}
	lowlink := map[string]int{}
	onStack := map[string]bool{}
	var stack []string
	counter := 0
	var groups [][]string

	var strongConnect func(v string)
	strongConnect = func(v string) {
		index[v] = counter
		lowlink[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		for w := range graph[v] {
			if _, known := graph[w]; !known {
				continue
			}
			if _, visited := index[w]; !visited {
				strongConnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] {
				if index[w] < lowlink[v] {
					lowlink[v] = index[w]
				}
			}
		}

		if lowlink[v] == index[v] {
			var group []string
			for {
				n := len(stack) - 1
				w := stack[n]
				stack = stack[:n]
				onStack[w] = false
				group = append(group, w)
				if w == v {
					break
				}
			}
			groups = append(groups, group)
		}
	}

	for _, name := range order {
		if _, visited := index[name]; !visited {
			strongConnect(name)
		}
	}
	return groups
}
