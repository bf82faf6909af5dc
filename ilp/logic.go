package ilp

// This file linearizes the boolean connectives partition's ILP formulation
// needs over 0/1-valued linear expressions, plus the one non-boolean helper
// (AbsVar) it builds on top of linear constraints.

// LogicAnd introduces y = AND(terms) and returns y. Each term must be a
// linear expression that only ever takes value 0 or 1 at a feasible
// solution — typically VarExpr(x, 1) for a binary variable x, or
// LogicNot(x) for its negation, which lets callers conjoin a mix of bits
// and negated bits without allocating an extra variable per negation.
//
// Encoding: y <= term_i for every i, and y >= sum(term_i) - (n-1).
func (m *Model) LogicAnd(label string, terms ...LinExpr) VarID {
	y := m.AddBinaryVar(label)
	sum := LinExpr{}
	for _, term := range terms {
		m.LEConstraint(VarExpr(y, 1).Minus(term), 0) // y - term <= 0
		sum = sum.Plus(term)
	}
	m.GEConstraint(VarExpr(y, 1).Minus(sum), -float64(len(terms)-1)) // y - sum(terms) >= -(n-1)
	return y
}

// LogicNot returns the linear expression 1 - x; NOT needs no new variable
// or constraint because negation of a 0/1 variable is already linear.
func LogicNot(x VarID) LinExpr {
	return ConstExpr(1).Minus(VarExpr(x, 1))
}

// LogicXor introduces y = a XOR b and returns y.
//
// Encoding: y <= a+b, y >= a-b, y >= b-a, y <= 2-a-b.
func (m *Model) LogicXor(label string, a, b VarID) VarID {
	y := m.AddBinaryVar(label)
	sumAB := VarExpr(a, 1).Plus(VarExpr(b, 1))
	m.LEConstraint(VarExpr(y, 1).Minus(sumAB), 0)                             // y - a - b <= 0
	m.GEConstraint(VarExpr(y, 1).Minus(VarExpr(a, 1)).Plus(VarExpr(b, 1)), 0) // y - a + b >= 0
	m.GEConstraint(VarExpr(y, 1).Plus(VarExpr(a, 1)).Minus(VarExpr(b, 1)), 0) // y + a - b >= 0
	m.LEConstraint(VarExpr(y, 1).Plus(sumAB), 2)                              // y + a + b <= 2
	return y
}

// AbsVar introduces t = |expr| and returns t's VarID; lb and ub are
// recorded as t's declared integer bounds.
//
// Encoding: t >= expr, t >= -expr. This under-constrains t from below only
// (t could in principle be larger than |expr|), which is why AbsVar is only
// ever wired into a minimization objective or a <= constraint on t: the
// solver's own pressure to minimize or satisfy the upper bound pins t to
// exactly |expr| at any optimum.
func (m *Model) AbsVar(label string, expr LinExpr, lb, ub int64) VarID {
	t := m.AddIntegerVar(label, lb, ub)
	tExpr := VarExpr(t, 1)
	m.GEConstraint(tExpr.Minus(expr), 0) // t - expr >= 0
	m.GEConstraint(tExpr.Plus(expr), 0)  // t + expr >= 0
	return t
}
