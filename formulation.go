package kmst

import "fmt"

// Formulation is the closed set of supported k-MST formulations.
type Formulation int

const (
	MTZ Formulation = iota // Miller-Tucker-Zemlin sequence variables
	SCF                    // single-commodity flow
	MCF                    // multi-commodity flow
)

func (f Formulation) String() string {
	switch f {
	case MTZ:
		return "MTZ"
	case SCF:
		return "SCF"
	case MCF:
		return "MCF"
	default:
		return fmt.Sprintf("Formulation(%d)", int(f))
	}
}

// ParseFormulation maps a configuration tag to its formulation.
func ParseFormulation(tag string) (Formulation, error) {
	switch tag {
	case "MTZ":
		return MTZ, nil
	case "SCF":
		return SCF, nil
	case "MCF":
		return MCF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormulation, tag)
	}
}

// Builder declares the variables, constraints and objective of one
// formulation on a model. A builder serves exactly one instance; the three
// steps must run in order, which the Pipeline enforces.
type Builder interface {
	DefineVariables(m Model, inst *Instance) error
	DefineConstraints(m Model, inst *Instance) error
	DefineObjective(m Model, inst *Instance) error

	// ArcVars exposes the arc selection variables for solution extraction.
	ArcVars() map[Arc]Var
}

// SequenceVars is implemented by builders that carry per-vertex sequence
// variables (MTZ); the validator reports their solved values.
type SequenceVars interface {
	SeqVars() map[int]Var
}

// NewBuilder returns a fresh builder for the formulation.
func (f Formulation) NewBuilder() (Builder, error) {
	switch f {
	case MTZ:
		return &mtzBuilder{}, nil
	case SCF:
		return &scfBuilder{}, nil
	case MCF:
		return &mcfBuilder{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormulation, f)
	}
}

// selectionVars creates the vertex selection and root indicator variables
// shared by the flow formulations.
func selectionVars(m Model, inst *Instance) (y, r map[int]Var, err error) {
	y = make(map[int]Var, len(inst.Vertices))
	r = make(map[int]Var, len(inst.Vertices))
	for _, v := range inst.Vertices {
		if y[v], err = m.AddVar(Binary, 0, 1, fmt.Sprintf("y_%d", v)); err != nil {
			return nil, nil, err
		}
	}
	for _, v := range inst.Vertices {
		if r[v], err = m.AddVar(Binary, 0, 1, fmt.Sprintf("r_%d", v)); err != nil {
			return nil, nil, err
		}
	}
	return y, r, nil
}

// arcVars creates one binary selection variable per arc.
func arcVars(m Model, inst *Instance) (map[Arc]Var, error) {
	x := make(map[Arc]Var, len(inst.Arcs))
	for _, a := range inst.Arcs {
		v, err := m.AddVar(Binary, 0, 1, fmt.Sprintf("x_%d_%d", a.From, a.To))
		if err != nil {
			return nil, err
		}
		x[a] = v
	}
	return x, nil
}

// treeConstraints adds the structural constraints shared by SCF and MCF:
// edge cardinality, single orientation per edge, arcs only between selected
// vertices, k selected vertices, one model-designated root, and in-degree
// one for every selected non-root vertex.
func treeConstraints(m Model, inst *Instance, x map[Arc]Var, y, r map[int]Var) error {
	k := inst.K

	card := &LinExpr{}
	for _, e := range inst.Edges {
		card.Add(x[Arc{e.A, e.B}], 1).Add(x[Arc{e.B, e.A}], 1)
	}
	if err := m.AddConstr(card, Equal, float64(k-1), "cardinality"); err != nil {
		return err
	}

	for _, e := range inst.Edges {
		pair := &LinExpr{}
		pair.Add(x[Arc{e.A, e.B}], 1).Add(x[Arc{e.B, e.A}], 1)
		if err := m.AddConstr(pair, LessEqual, 1, fmt.Sprintf("orient_%d_%d", e.A, e.B)); err != nil {
			return err
		}
	}

	for _, a := range inst.Arcs {
		tail := &LinExpr{}
		tail.Add(x[a], 1).Add(y[a.From], -1)
		if err := m.AddConstr(tail, LessEqual, 0, fmt.Sprintf("tail_%d_%d", a.From, a.To)); err != nil {
			return err
		}
		head := &LinExpr{}
		head.Add(x[a], 1).Add(y[a.To], -1)
		if err := m.AddConstr(head, LessEqual, 0, fmt.Sprintf("head_%d_%d", a.From, a.To)); err != nil {
			return err
		}
	}

	sel := &LinExpr{}
	root := &LinExpr{}
	for _, v := range inst.Vertices {
		sel.Add(y[v], 1)
		root.Add(r[v], 1)
	}
	if err := m.AddConstr(sel, Equal, float64(k), "selection"); err != nil {
		return err
	}
	if err := m.AddConstr(root, Equal, 1, "root"); err != nil {
		return err
	}

	for _, v := range inst.Vertices {
		sub := &LinExpr{}
		sub.Add(r[v], 1).Add(y[v], -1)
		if err := m.AddConstr(sub, LessEqual, 0, fmt.Sprintf("root_sel_%d", v)); err != nil {
			return err
		}
		indeg := &LinExpr{}
		for _, a := range inst.Arcs {
			if a.To == v {
				indeg.Add(x[a], 1)
			}
		}
		indeg.Add(y[v], -1).Add(r[v], 1)
		if err := m.AddConstr(indeg, Equal, 0, fmt.Sprintf("indeg_%d", v)); err != nil {
			return err
		}
	}
	return nil
}

// weightObjective sets the common objective: minimize the total weight of
// the selected arcs.
func weightObjective(m Model, inst *Instance, x map[Arc]Var) error {
	obj := &LinExpr{}
	for _, a := range inst.Arcs {
		obj.Add(x[a], float64(inst.Weights[a]))
	}
	return m.SetObjective(obj, true)
}
