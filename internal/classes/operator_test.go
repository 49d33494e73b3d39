package classes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorMethodMapping(t *testing.T) {
	cases := []struct {
		op     string
		class  string
		method string
	}{
		{"+", "Num", "add"},
		{"-", "Num", "sub"},
		{"*", "Num", "mul"},
		{"/", "Num", "div"},
		{"==", "Eq", "eq"},
		{"!=", "Eq", "neq"},
		{"<", "Ord", "lt"},
		{"<=", "Ord", "lte"},
		{">", "Ord", "gt"},
		{">=", "Ord", "gte"},
	}
	for _, c := range cases {
		class, method := OperatorMethod(c.op)
		assert.Equal(t, c.class, class, c.op)
		assert.Equal(t, c.method, method, c.op)
	}
}

func TestOperatorMethodUnknownOperator(t *testing.T) {
	class, method := OperatorMethod("%")
	assert.Empty(t, class)
	assert.Empty(t, method)
}
