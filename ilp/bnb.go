package ilp

import (
	"context"
	"time"
)

// SolveOptions configures a single Solve call.
type SolveOptions struct {
	// TimeLimit, if positive, bounds wall-clock search time. On expiry the
	// best incumbent found so far is returned with status Feasible (or
	// Infeasible if none was found yet) rather than an error, matching how
	// tsp.TSPBranchAndBound treats a soft deadline.
	TimeLimit time.Duration
}

// bnbEngine holds all search state for one Solve call, mirroring
// tsp.bbEngine: an explicit struct instead of closures, so dependencies and
// hot-path state stay predictable.
type bnbEngine struct {
	eps float64

	// Preprocessing: union-find style aliasing collapses variables pinned
	// equal by an EQ constraint (x == y) onto one representative, and
	// fixed values collapse variables pinned to a literal constant (x == k)
	// out of the search entirely.
	repOf map[VarID]VarID
	fixed map[VarID]float64

	freeBinaries []VarID
	objExpr      LinExpr
	minimize     bool

	binaryOnly []Constraint // every free var appearing is a free binary
	mixed      []Constraint // a free integer (AbsVar) var appears, or no free var is left and the constant violates it

	varConstraints map[VarID][]int // free binary VarID -> indices into binaryOnly

	assign map[VarID]float64

	steps       int
	useDeadline bool
	deadline    time.Time
	timedOut    bool

	bestObj    float64
	bestAssign map[VarID]float64
	foundAny   bool
}

// find returns v's representative after alias collapsing, resolving chains.
func (e *bnbEngine) find(v VarID) VarID {
	for {
		rep, ok := e.repOf[v]
		if !ok || rep == v {
			return v
		}
		v = rep
	}
}

// union aliases b onto a's representative.
func (e *bnbEngine) union(a, b VarID) {
	ra, rb := e.find(a), e.find(b)
	if ra == rb {
		return
	}
	e.repOf[rb] = ra
}

// preprocess scans the raw constraints for trivial x==y and x==k patterns
// and removes the corresponding variables from the search space, then
// rewrites every constraint and the objective against the reduced
// variable set.
func (e *bnbEngine) preprocess(m *Model) {
	e.repOf = make(map[VarID]VarID)
	e.fixed = make(map[VarID]float64)

	for _, c := range m.constraints {
		if c.Sense != EQ {
			continue
		}
		ids := c.Expr.VarIDs()
		if len(ids) == 1 && c.Expr.Coeff(ids[0]) == 1 && c.Expr.Const == 0 {
			e.fixed[ids[0]] = c.RHS
			continue
		}
		if len(ids) == 2 && c.Expr.Const == 0 && c.RHS == 0 {
			a, b := ids[0], ids[1]
			ca, cb := c.Expr.Coeff(a), c.Expr.Coeff(b)
			if ca == 1 && cb == -1 {
				e.union(a, b)
			} else if ca == -1 && cb == 1 {
				e.union(b, a)
			}
		}
	}

	binKind := make(map[VarID]bool, len(m.vars))
	for _, v := range m.vars {
		binKind[v.ID] = v.Kind == Binary
	}

	seenBinary := make(map[VarID]bool)
	for _, v := range m.vars {
		if v.Kind != Binary {
			continue
		}
		rep := e.find(v.ID)
		if _, isFixed := e.fixed[rep]; isFixed {
			continue
		}
		if !seenBinary[rep] {
			seenBinary[rep] = true
			e.freeBinaries = append(e.freeBinaries, rep)
		}
	}

	e.objExpr = e.rewriteExpr(m.objective)
	e.minimize = m.minimize

	e.varConstraints = make(map[VarID][]int)
	for _, raw := range m.constraints {
		c := Constraint{Expr: e.rewriteExpr(raw.Expr), Sense: raw.Sense, RHS: raw.RHS}
		if e.isTriviallySatisfiedDegenerate(c) {
			continue
		}
		if len(c.Expr.Terms) == 0 || e.involvesIntegerVar(c, m) {
			e.mixed = append(e.mixed, c)
			continue
		}
		idx := len(e.binaryOnly)
		e.binaryOnly = append(e.binaryOnly, c)
		for _, v := range c.Expr.VarIDs() {
			e.varConstraints[v] = append(e.varConstraints[v], idx)
		}
	}
}

// rewriteExpr substitutes every term's variable with its representative
// (folding fixed variables into the constant) and sums duplicate terms.
func (e *bnbEngine) rewriteExpr(expr LinExpr) LinExpr {
	out := LinExpr{Const: expr.Const}
	coeffs := make(map[VarID]float64)
	order := make([]VarID, 0, len(expr.Terms))
	for _, t := range expr.Terms {
		rep := e.find(t.Var)
		if val, ok := e.fixed[rep]; ok {
			out.Const += t.Coeff * val
			continue
		}
		if _, seen := coeffs[rep]; !seen {
			order = append(order, rep)
		}
		coeffs[rep] += t.Coeff
	}
	for _, v := range order {
		if coeffs[v] != 0 {
			out.Terms = append(out.Terms, Term{Var: v, Coeff: coeffs[v]})
		}
	}
	return out
}

// isTriviallySatisfiedDegenerate reports whether c has no remaining free
// variables (everything was folded into Expr.Const by rewriteExpr) and its
// constant already satisfies it; such a constraint can never fail and is
// dropped. A degenerate constraint whose constant violates it (e.g. two
// EQ constraints pinning one variable to different values) is kept with
// the mixed constraints, so every leaf fails it and Solve reports
// Infeasible.
func (e *bnbEngine) isTriviallySatisfiedDegenerate(c Constraint) bool {
	return len(c.Expr.Terms) == 0 && c.satisfied(c.Expr.Const, e.eps)
}

// involvesIntegerVar reports whether c references a variable declared as
// Integer (after alias resolution).
func (e *bnbEngine) involvesIntegerVar(c Constraint, m *Model) bool {
	for _, v := range c.Expr.VarIDs() {
		for _, decl := range m.vars {
			if decl.ID == v && decl.Kind == Integer {
				return true
			}
		}
	}
	return false
}

// deadlineCheck performs a rare time-budget test (every 4096 node events),
// the same cadence tsp.bbEngine uses.
func (e *bnbEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}
	if time.Now().After(e.deadline) {
		e.timedOut = true
		return true
	}
	return false
}

// lowerBound computes an admissible bound on the objective's value over any
// completion of the current partial assignment: the already-fixed
// contribution plus, per free unassigned binary variable, the smaller of
// its two possible contributions (0 or its coefficient), plus zero for any
// not-yet-resolved AbsVar auxiliary (valid since |e| >= 0 always).
func (e *bnbEngine) lowerBound() float64 {
	bound := e.objExpr.Const
	for _, t := range e.objExpr.Terms {
		if val, assigned := e.assign[t.Var]; assigned {
			bound += t.Coeff * val
			continue
		}
		if t.Coeff < 0 {
			bound += t.Coeff
		}
	}
	return bound
}

// checkBinaryConstraints evaluates every binary-only constraint that is
// now fully determined by e.assign, returning false on the first violation.
func (e *bnbEngine) checkBinaryConstraints(justAssigned VarID) bool {
	for _, idx := range e.varConstraints[justAssigned] {
		c := e.binaryOnly[idx]
		determined := true
		for _, v := range c.Expr.VarIDs() {
			if _, ok := e.assign[v]; !ok {
				determined = false
				break
			}
		}
		if !determined {
			continue
		}
		val := c.Expr.Eval(e.assign)
		if !c.satisfied(val, e.eps) {
			return false
		}
	}
	return true
}

// dfs performs deterministic branching over freeBinaries[depth:], pruning
// by lower bound and by fully-determined constraint violation, the way
// tsp.bbEngine.dfs prunes by lower bound and infinite-edge skips.
func (e *bnbEngine) dfs(depth int) {
	if e.timedOut {
		return
	}
	if e.deadlineCheck() {
		return
	}

	if depth == len(e.freeBinaries) {
		e.evaluateLeaf()
		return
	}

	// Lower-bound pruning only tightens the minimizing direction; every
	// objective this module builds (partition/search) minimizes, so the
	// maximizing direction is left an exhaustive (but still correct) search.
	if e.foundAny && e.minimize {
		if lb := e.lowerBound(); lb >= e.bestObj-e.eps {
			return
		}
	}

	v := e.freeBinaries[depth]
	for _, val := range [2]float64{0, 1} {
		e.assign[v] = val
		if e.checkBinaryConstraints(v) {
			e.dfs(depth + 1)
		}
		if e.timedOut {
			delete(e.assign, v)
			return
		}
	}
	delete(e.assign, v)
}

// evaluateLeaf resolves any integer (AbsVar) variables analytically against
// the now-complete binary assignment, checks the mixed constraints that
// reference them, and updates the incumbent if this leaf improves on it.
func (e *bnbEngine) evaluateLeaf() {
	full := make(map[VarID]float64, len(e.assign)+len(e.mixed))
	for k, v := range e.assign {
		full[k] = v
	}

	for _, c := range e.mixed {
		for _, v := range c.Expr.VarIDs() {
			if _, ok := e.assign[v]; ok {
				continue
			}
			// Keep the largest lower bound over every defining constraint.
			val := e.resolveIntegerVar(c, v, full)
			if cur, seen := full[v]; !seen || val > cur {
				full[v] = val
			}
		}
	}

	for _, c := range e.mixed {
		val := c.Expr.Eval(full)
		if !c.satisfied(val, e.eps) {
			return
		}
	}

	obj := e.objExpr.Eval(full)
	if !e.foundAny || (e.minimize && obj < e.bestObj-e.eps) || (!e.minimize && obj > e.bestObj+e.eps) {
		e.foundAny = true
		e.bestObj = obj
		e.bestAssign = full
	}
}

// resolveIntegerVar returns the lower bound (never below 0) that one AbsVar
// defining constraint (t - expr >= 0 or t + expr >= 0) places on v, without
// branching. evaluateLeaf keeps the larger of the two bounds: since both
// are GE constraints pinning t from below, and AbsVar is only ever wired
// into a minimizing objective or an upper-bound constraint, the tightest
// feasible value is max(expr, -expr, 0) evaluated at the given assignment.
func (e *bnbEngine) resolveIntegerVar(defining Constraint, v VarID, full map[VarID]float64) float64 {
	coeff := defining.Expr.Coeff(v)
	if coeff == 0 {
		return 0
	}
	rest := LinExpr{Const: defining.Expr.Const}
	for _, t := range defining.Expr.Terms {
		if t.Var == v {
			continue
		}
		rest.Terms = append(rest.Terms, t)
	}
	// defining: coeff*t + rest >= 0  (from RHS 0)  =>  t >= -rest/coeff
	lower := -rest.Eval(full) / coeff
	best := lower
	if 0 > best {
		best = 0
	}
	return best
}

// Solve runs exact branch-and-bound search over m and records the
// incumbent assignment into m's internal value map.
//
// Returns Optimal if search completed without hitting opts.TimeLimit,
// Feasible if a time limit cut search short but an incumbent was found,
// or Infeasible if no satisfying assignment exists (or none was found
// before the deadline).
func (m *Model) Solve(ctx context.Context, opts SolveOptions) (Status, error) {
	if !m.hasObj {
		return Unknown, ErrNoObjective
	}

	e := &bnbEngine{eps: 1e-6, assign: make(map[VarID]float64)}
	e.preprocess(m)

	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	e.dfs(0)

	if !e.foundAny {
		m.status = Infeasible
		return m.status, nil
	}

	m.values = make(map[VarID]float64, len(m.vars))
	for _, v := range m.vars {
		rep := e.find(v.ID)
		if val, ok := e.fixed[rep]; ok {
			m.values[v.ID] = val
			continue
		}
		m.values[v.ID] = e.bestAssign[rep]
	}

	if e.timedOut {
		m.status = Feasible
	} else {
		m.status = Optimal
	}

	select {
	case <-ctx.Done():
		return m.status, ctx.Err()
	default:
	}

	return m.status, nil
}
