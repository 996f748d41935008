package kmst

import "fmt"

// scfBuilder is the single-commodity flow formulation. The model designates
// a root vertex, which sources k-1 units of flow; every other selected
// vertex consumes one unit. Flow may only use selected arcs, so every
// selected vertex is connected to the root, and k vertices with k-1 edges
// connected form a tree.
type scfBuilder struct {
	x map[Arc]Var
	y map[int]Var
	r map[int]Var
	f map[Arc]Var
}

func (b *scfBuilder) DefineVariables(m Model, inst *Instance) error {
	var err error
	if b.x, err = arcVars(m, inst); err != nil {
		return err
	}
	if b.y, b.r, err = selectionVars(m, inst); err != nil {
		return err
	}
	b.f = make(map[Arc]Var, len(inst.Arcs))
	flowUB := float64(inst.K - 1)
	for _, a := range inst.Arcs {
		if b.f[a], err = m.AddVar(Continuous, 0, flowUB, fmt.Sprintf("f_%d_%d", a.From, a.To)); err != nil {
			return err
		}
	}
	return nil
}

func (b *scfBuilder) DefineConstraints(m Model, inst *Instance) error {
	if err := treeConstraints(m, inst, b.x, b.y, b.r); err != nil {
		return err
	}
	k := inst.K

	// Balance: in - out = y_v - k*r_v. The root emits k-1 units net, every
	// other selected vertex absorbs one.
	for _, v := range inst.Vertices {
		bal := &LinExpr{}
		for _, a := range inst.Arcs {
			if a.To == v {
				bal.Add(b.f[a], 1)
			} else if a.From == v {
				bal.Add(b.f[a], -1)
			}
		}
		bal.Add(b.y[v], -1).Add(b.r[v], float64(k))
		if err := m.AddConstr(bal, Equal, 0, fmt.Sprintf("balance_%d", v)); err != nil {
			return err
		}
	}

	for _, a := range inst.Arcs {
		capacity := &LinExpr{}
		capacity.Add(b.f[a], 1).Add(b.x[a], -float64(k-1))
		if err := m.AddConstr(capacity, LessEqual, 0, fmt.Sprintf("cap_%d_%d", a.From, a.To)); err != nil {
			return err
		}
	}
	return nil
}

func (b *scfBuilder) DefineObjective(m Model, inst *Instance) error {
	return weightObjective(m, inst, b.x)
}

func (b *scfBuilder) ArcVars() map[Arc]Var { return b.x }
