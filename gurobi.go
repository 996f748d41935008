package kmst

import (
	"fmt"

	"git.solver4all.com/azaryc2s/gorobi/gurobi"
)

// gurobiModel adapts one Gurobi model to the Model interface. Every instance
// gets a fresh environment and model so no constraint state survives between
// pipeline runs.
type gurobiModel struct {
	env   *gurobi.Env
	model *gurobi.Model
	cols  int
	sol   []float64
}

// GurobiFactory returns a factory for Gurobi models with the given wall
// clock limit in seconds; 0 leaves the engine unlimited. The limit is an
// engine parameter, not a pipeline concern, so it lives here.
func GurobiFactory(timeLimit float64) ModelFactory {
	return func(name string) (Model, error) {
		env, err := gurobi.LoadEnv("kmst-gurobi.log")
		if err != nil {
			return nil, err
		}
		env.SetIntParam("LogToConsole", int32(0))
		if timeLimit > 0 {
			env.SetDblParam("TimeLimit", timeLimit)
		}
		model, err := env.NewModel(name, 0, nil, nil, nil, nil, nil)
		if err != nil {
			env.Free()
			return nil, err
		}
		return &gurobiModel{env: env, model: model}, nil
	}
}

// NewGurobiModel creates an empty Gurobi model with console logging off and
// no time limit.
func NewGurobiModel(name string) (Model, error) {
	return GurobiFactory(0)(name)
}

func (g *gurobiModel) AddVar(vt VarType, lb, ub float64, name string) (Var, error) {
	var vtype int8
	switch vt {
	case Binary:
		vtype = gurobi.BINARY
	case Integer:
		vtype = gurobi.INTEGER
	default:
		vtype = gurobi.CONTINUOUS
	}
	if err := g.model.AddVar(nil, nil, 0.0, lb, ub, vtype, name); err != nil {
		return 0, err
	}
	g.cols++
	return Var(g.cols - 1), nil
}

func (g *gurobiModel) AddConstr(expr *LinExpr, sense Sense, rhs float64, name string) error {
	var (
		ind []int32
		val []float64
	)
	for _, t := range expr.Terms {
		ind = append(ind, int32(t.Var))
		val = append(val, t.Coef)
	}
	var op int8
	switch sense {
	case Equal:
		op = gurobi.EQUAL
	case GreaterEqual:
		op = gurobi.GREATER_EQUAL
	default:
		op = gurobi.LESS_EQUAL
	}
	return g.model.AddConstr(ind, val, op, rhs, name)
}

func (g *gurobiModel) SetObjective(expr *LinExpr, minimize bool) error {
	coefs := make([]float64, g.cols)
	for _, t := range expr.Terms {
		coefs[t.Var] += t.Coef
	}
	if err := g.model.SetDblAttrArray(gurobi.DBL_ATTR_OBJ, 0, coefs); err != nil {
		return err
	}
	sense := int32(gurobi.MINIMIZE)
	if !minimize {
		sense = gurobi.MAXIMIZE
	}
	return g.model.SetIntAttr(gurobi.INT_ATTR_MODELSENSE, sense)
}

func (g *gurobiModel) Optimize() (Status, error) {
	g.sol = nil
	if err := g.model.Optimize(); err != nil {
		return StatusUnknown, err
	}
	optimstatus, err := g.model.GetIntAttr(gurobi.INT_ATTR_STATUS)
	if err != nil {
		return StatusUnknown, err
	}
	switch optimstatus {
	case gurobi.OPTIMAL:
		sol, err := g.model.GetDblAttrArray(gurobi.DBL_ATTR_X, 0, int32(g.cols))
		if err != nil {
			return StatusUnknown, err
		}
		g.sol = sol
		return StatusOptimal, nil
	case gurobi.INF_OR_UNBD:
		return StatusInfeasible, nil
	case gurobi.TIME_LIMIT:
		return StatusTimeLimit, nil
	default:
		return StatusUnknown, nil
	}
}

func (g *gurobiModel) ObjVal() (float64, error) {
	return g.model.GetDblAttr(gurobi.DBL_ATTR_OBJVAL)
}

func (g *gurobiModel) Value(v Var) (float64, error) {
	if g.sol == nil {
		return 0, fmt.Errorf("kmst: no solution loaded")
	}
	if int(v) < 0 || int(v) >= len(g.sol) {
		return 0, fmt.Errorf("kmst: variable %d out of range", v)
	}
	return g.sol[v], nil
}

func (g *gurobiModel) Free() {
	g.model.Free()
	g.env.Free()
}
