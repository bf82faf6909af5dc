package ilp

import (
	"context"
	"testing"
)

// TestSolve_TrivialMinimization builds min x1+x2 subject to x1+x2>=1, a
// textbook binary program whose optimum assigns exactly one variable to 1.
func TestSolve_TrivialMinimization(t *testing.T) {
	m := NewModel()
	x1 := m.AddBinaryVar("x1")
	x2 := m.AddBinaryVar("x2")
	m.GEConstraint(VarExpr(x1, 1).Plus(VarExpr(x2, 1)), 1)
	m.SetObjective(VarExpr(x1, 1).Plus(VarExpr(x2, 1)), true)

	status, err := m.Solve(context.Background(), SolveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != Optimal {
		t.Fatalf("status = %v; want Optimal", status)
	}

	v1, _ := m.Value(x1)
	v2, _ := m.Value(x2)
	if v1+v2 != 1 {
		t.Errorf("x1+x2 = %v; want 1", v1+v2)
	}
}

// TestSolve_Infeasible builds a program whose two constraints contradict.
func TestSolve_Infeasible(t *testing.T) {
	m := NewModel()
	x := m.AddBinaryVar("x")
	m.EQConstraint(VarExpr(x, 1), 0)
	m.EQConstraint(VarExpr(x, 1), 1)
	m.SetObjective(VarExpr(x, 1), true)

	status, err := m.Solve(context.Background(), SolveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != Infeasible {
		t.Fatalf("status = %v; want Infeasible", status)
	}
}

// TestLogicAnd_ForcesConjunction checks that y=AND(a,b) behaves correctly
// across all four input combinations by minimizing/maximizing around it.
func TestLogicAnd_ForcesConjunction(t *testing.T) {
	m := NewModel()
	a := m.AddBinaryVar("a")
	b := m.AddBinaryVar("b")
	y := m.LogicAnd("y", VarExpr(a, 1), VarExpr(b, 1))
	m.EQConstraint(VarExpr(a, 1), 1)
	m.EQConstraint(VarExpr(b, 1), 1)
	m.SetObjective(VarExpr(y, 1), false) // maximize, still must equal 1

	status, err := m.Solve(context.Background(), SolveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != Optimal {
		t.Fatalf("status = %v; want Optimal", status)
	}
	yv, _ := m.Value(y)
	if yv != 1 {
		t.Errorf("AND(1,1) = %v; want 1", yv)
	}
}

// TestLogicAnd_AcceptsNegatedTerm checks that y=AND(a, NOT(b)) only holds
// when a=1 and b=0, verifying LogicNot composes correctly as a LogicAnd
// term without its own variable.
func TestLogicAnd_AcceptsNegatedTerm(t *testing.T) {
	m := NewModel()
	a := m.AddBinaryVar("a")
	b := m.AddBinaryVar("b")
	y := m.LogicAnd("y", VarExpr(a, 1), LogicNot(b))
	m.EQConstraint(VarExpr(a, 1), 1)
	m.EQConstraint(VarExpr(b, 1), 0)
	m.SetObjective(VarExpr(y, 1), false) // maximize, still must equal 1

	status, err := m.Solve(context.Background(), SolveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != Optimal {
		t.Fatalf("status = %v; want Optimal", status)
	}
	yv, _ := m.Value(y)
	if yv != 1 {
		t.Errorf("AND(a=1, NOT(b=0)) = %v; want 1", yv)
	}
}

// TestLogicAnd_NegatedTermForcesZero checks that AND(a, NOT(b)) drops to 0
// once b=1, even while the objective pressures y upward.
func TestLogicAnd_NegatedTermForcesZero(t *testing.T) {
	m := NewModel()
	a := m.AddBinaryVar("a")
	b := m.AddBinaryVar("b")
	y := m.LogicAnd("y", VarExpr(a, 1), LogicNot(b))
	m.EQConstraint(VarExpr(a, 1), 1)
	m.EQConstraint(VarExpr(b, 1), 1)
	m.SetObjective(VarExpr(y, 1), false) // maximize; y must still be forced to 0

	status, err := m.Solve(context.Background(), SolveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != Optimal {
		t.Fatalf("status = %v; want Optimal", status)
	}
	yv, _ := m.Value(y)
	if yv != 0 {
		t.Errorf("AND(a=1, NOT(b=1)) = %v; want 0", yv)
	}
}

// TestAbsVar_ResolvesAnalytically checks that t=|a-b| is pinned correctly
// at the optimum of a minimizing objective over t.
func TestAbsVar_ResolvesAnalytically(t *testing.T) {
	m := NewModel()
	a := m.AddBinaryVar("a")
	b := m.AddBinaryVar("b")
	diff := VarExpr(a, 1).Minus(VarExpr(b, 1))
	tVar := m.AbsVar("t", diff, -1, 1)
	m.EQConstraint(VarExpr(a, 1), 1)
	m.EQConstraint(VarExpr(b, 1), 0)
	m.SetObjective(VarExpr(tVar, 1), true)

	status, err := m.Solve(context.Background(), SolveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != Optimal {
		t.Fatalf("status = %v; want Optimal", status)
	}
	tv, _ := m.Value(tVar)
	if tv != 1 {
		t.Errorf("|1-0| resolved to %v; want 1", tv)
	}
}
