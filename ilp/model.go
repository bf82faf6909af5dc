package ilp

// Model accumulates variables, constraints, and an objective, then hands
// them to Solve. A Model is not safe for concurrent mutation; build it on
// one goroutine before calling Solve.
type Model struct {
	vars        []Var
	constraints []Constraint
	objective   LinExpr
	minimize    bool
	hasObj      bool

	values map[VarID]float64
	status Status
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{minimize: true}
}

// AddBinaryVar declares a new 0/1 variable and returns its id. label is
// carried only for diagnostics (Var.Label) and has no effect on solving.
func (m *Model) AddBinaryVar(label string) VarID {
	id := VarID(len(m.vars) + 1)
	m.vars = append(m.vars, Var{ID: id, Kind: Binary, Label: label})
	return id
}

// AddIntegerVar declares a new bounded integer variable and returns its id.
func (m *Model) AddIntegerVar(label string, lb, ub int64) VarID {
	id := VarID(len(m.vars) + 1)
	m.vars = append(m.vars, Var{ID: id, Kind: Integer, Label: label, LB: lb, UB: ub})
	return id
}

// AddLinearConstraint records expr <sense> rhs.
func (m *Model) AddLinearConstraint(expr LinExpr, sense Sense, rhs float64) {
	m.constraints = append(m.constraints, Constraint{Expr: expr, Sense: sense, RHS: rhs})
}

// LEConstraint is sugar for AddLinearConstraint(expr, LE, rhs).
func (m *Model) LEConstraint(expr LinExpr, rhs float64) { m.AddLinearConstraint(expr, LE, rhs) }

// GEConstraint is sugar for AddLinearConstraint(expr, GE, rhs).
func (m *Model) GEConstraint(expr LinExpr, rhs float64) { m.AddLinearConstraint(expr, GE, rhs) }

// EQConstraint is sugar for AddLinearConstraint(expr, EQ, rhs).
func (m *Model) EQConstraint(expr LinExpr, rhs float64) { m.AddLinearConstraint(expr, EQ, rhs) }

// SetObjective sets the objective expression and direction.
func (m *Model) SetObjective(expr LinExpr, minimize bool) {
	m.objective = expr
	m.minimize = minimize
	m.hasObj = true
}

// Vars returns every declared variable, in declaration order.
func (m *Model) Vars() []Var {
	out := make([]Var, len(m.vars))
	copy(out, m.vars)
	return out
}

// Value returns the solved value of v after a successful Solve call.
func (m *Model) Value(v VarID) (float64, error) {
	val, ok := m.values[v]
	if !ok {
		return 0, ErrUnknownVar
	}
	return val, nil
}

// Status returns the outcome of the most recent Solve call.
func (m *Model) Status() Status { return m.status }

// ObjectiveValue returns the objective's value at the incumbent solution.
func (m *Model) ObjectiveValue() float64 {
	return m.objective.Eval(m.values)
}
