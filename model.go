package kmst

import "fmt"

// VarType selects the domain of a decision variable.
type VarType int8

const (
	Continuous VarType = iota
	Binary
	Integer
)

// Var is an opaque handle to a column of the underlying model.
type Var int32

// Sense is the relation of a linear constraint.
type Sense int8

const (
	LessEqual Sense = iota
	Equal
	GreaterEqual
)

// Status is the terminal state reported by the engine. Everything except
// StatusOptimal counts as "not solved" for the pipeline.
type Status int

const (
	StatusUnknown Status = iota
	StatusOptimal
	StatusInfeasible
	StatusTimeLimit
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusTimeLimit:
		return "TIME_LIMIT"
	default:
		return "UNKNOWN"
	}
}

// Term is one coefficient of a linear expression.
type Term struct {
	Var  Var
	Coef float64
}

// LinExpr is a linear expression over model variables.
type LinExpr struct {
	Terms []Term
}

// Add appends coef*v and returns the expression for chaining.
func (e *LinExpr) Add(v Var, coef float64) *LinExpr {
	e.Terms = append(e.Terms, Term{Var: v, Coef: coef})
	return e
}

// Model is the generic MILP surface the formulations build against. The
// engine behind it is an external collaborator; one Model serves exactly one
// instance and is freed afterwards.
type Model interface {
	// AddVar creates a variable with the given domain and bounds.
	AddVar(vt VarType, lb, ub float64, name string) (Var, error)
	// AddConstr adds the linear constraint "expr sense rhs".
	AddConstr(expr *LinExpr, sense Sense, rhs float64, name string) error
	// SetObjective replaces the scalar linear objective.
	SetObjective(expr *LinExpr, minimize bool) error
	// Optimize runs the engine and reports the terminal status.
	Optimize() (Status, error)
	// ObjVal returns the objective value of the incumbent solution.
	ObjVal() (float64, error)
	// Value returns the solved value of a variable.
	Value(v Var) (float64, error)
	// Free releases engine resources.
	Free()
}

// ModelFactory creates a fresh model for one instance.
type ModelFactory func(name string) (Model, error)

// Backend maps a configured solver name to its model factory; timeLimit is
// the per-solve wall clock budget in seconds (0 means none). The ortools
// name is recognized but has no backend here; it is rejected up front
// rather than producing an empty model.
func Backend(name string, timeLimit float64) (ModelFactory, error) {
	switch name {
	case "gurobi":
		return GurobiFactory(timeLimit), nil
	case "ortools":
		return nil, fmt.Errorf("%w: no ortools backend built in", ErrUnknownSolver)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
	}
}
