package domain

import m "minbool.dev/pkg/minbool/internal/model"

// Evaluate computes the expression's value under the given bindings. It is
// pure structural recursion and fails only with UndefinedVariableError when
// a referenced variable has no binding.
func Evaluate(node m.Node, bindings m.Binding) (bool, error) {
	return eval(node, bindings, nil)
}

// EvaluateWithTrace additionally records every node's computed value, keyed
// by node identifier. The trace exists for explanatory consumers (per-step
// display, subexpression highlighting); the minimizer never reads it.
func EvaluateWithTrace(node m.Node, bindings m.Binding) (bool, map[int]bool, error) {
	trace := make(map[int]bool)

	result, err := eval(node, bindings, trace)
	if err != nil {
		return false, nil, err
	}

	return result, trace, nil
}

func eval(node m.Node, bindings m.Binding, trace map[int]bool) (bool, error) {
	var result bool

	switch n := node.(type) {
	case *m.Var:
		value, ok := bindings[n.Name]
		if !ok {
			return false, &m.UndefinedVariableError{Name: n.Name}
		}

		result = value

	case *m.Lit:
		result = n.Value

	case *m.Not:
		inner, err := eval(n.X, bindings, trace)
		if err != nil {
			return false, err
		}

		result = !inner

	case *m.Bin:
		left, err := eval(n.Left, bindings, trace)
		if err != nil {
			return false, err
		}

		right, err := eval(n.Right, bindings, trace)
		if err != nil {
			return false, err
		}

		switch n.Op {
		case m.OpAnd:
			result = left && right
		case m.OpOr:
			result = left || right
		case m.OpXor:
			result = left != right
		case m.OpNand:
			result = !(left && right)
		case m.OpNor:
			result = !(left || right)
		case m.OpXnor:
			result = left == right
		}
	}

	if trace != nil {
		trace[node.NodeID()] = result
	}

	return result, nil
}
