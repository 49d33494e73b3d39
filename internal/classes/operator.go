package classes

// OperatorMethod maps a binary operator symbol to the class method it
// desugars to during dictionary-passing elaboration. Grounded on the
// teacher's OperatorMethod, trimmed to vaisto's operator set (no
// bitwise/shift operators — spec.md's BinOp production doesn't have
// them) and dropping the unary branch: vaisto has no unary operator
// syntax, only `(neg x)`/`(not x)` as ordinary function calls, so there
// is nothing for a unary OperatorMethod to desugar.
func OperatorMethod(op string) (class, method string) {
	switch op {
	case "+":
		return "Num", "add"
	case "-":
		return "Num", "sub"
	case "*":
		return "Num", "mul"
	case "/":
		return "Num", "div"
	case "==":
		return "Eq", "eq"
	case "!=":
		return "Eq", "neq"
	case "<":
		return "Ord", "lt"
	case "<=":
		return "Ord", "lte"
	case ">":
		return "Ord", "gt"
	case ">=":
		return "Ord", "gte"
	default:
		return "", ""
	}
}
