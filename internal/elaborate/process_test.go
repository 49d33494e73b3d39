package elaborate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/types"
)

func counterProcess() *ast.ProcessDecl {
	return &ast.ProcessDecl{
		Name: "Counter",
		Init: lit(0),
		Handlers: []ast.ProcessHandler{
			{Tag: "inc", Body: &ast.Call{Fn: sym("add"), Args: []ast.Expr{sym("state"), lit(1)}}},
			{Tag: "get", Body: sym("state")},
		},
	}
}

func TestProcessHandlersShareStateType(t *testing.T) {
	file := &ast.File{
		Name:  "counter",
		Decls: []ast.Decl{counterProcess()},
	}

	module := Elaborate(file)
	require.True(t, module.Ok(), "unexpected errors: %v", module.Errors)

	info, ok := module.Processes["Counter"]
	require.True(t, ok)
	assert.True(t, info.StateType.Equals(types.TInt))
	assert.True(t, info.MessageTag["inc"])
	assert.True(t, info.MessageTag["get"])
}

func TestSpawnAndSendAcceptedTag(t *testing.T) {
	file := &ast.File{
		Name: "main",
		Decls: []ast.Decl{
			counterProcess(),
			&ast.DefnDecl{
				Name: "main",
				Body: &ast.Let{
					Bindings: []ast.Binding{
						{Name: "pid", Init: &ast.Spawn{Process: "Counter", Init: lit(0)}},
					},
					Body: &ast.Do{Exprs: []ast.Expr{
						&ast.Send{Pid: sym("pid"), Msg: &ast.Atom{Tag: "inc"}},
						sym("pid"),
					}},
				},
			},
		},
	}

	module := Elaborate(file)
	require.True(t, module.Ok(), "unexpected errors: %v", module.Errors)
}

func TestSendRejectsUnacceptedTag(t *testing.T) {
	file := &ast.File{
		Name: "main",
		Decls: []ast.Decl{
			counterProcess(),
			&ast.DefnDecl{
				Name: "main",
				Body: &ast.Let{
					Bindings: []ast.Binding{
						{Name: "pid", Init: &ast.Spawn{Process: "Counter", Init: lit(0)}},
					},
					Body: &ast.Send{Pid: sym("pid"), Msg: &ast.Atom{Tag: "reset"}},
				},
			},
		},
	}

	module := Elaborate(file)
	require.False(t, module.Ok())
}
