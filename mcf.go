package kmst

import "fmt"

// mcfBuilder is the multi-commodity flow formulation: one commodity per
// vertex, a unit of which travels from the root to that vertex iff it is
// selected. The LP relaxation dominates SCF and MTZ at the cost of
// O(n * |A|) flow variables. The source term "root sends commodity c" is
// the product r_v * y_c, linearized through the binary s[c][v].
type mcfBuilder struct {
	x map[Arc]Var
	y map[int]Var
	r map[int]Var
	f map[int]map[Arc]Var // commodity -> arc -> flow
	s map[int]map[int]Var // commodity -> vertex -> source indicator
}

func (b *mcfBuilder) DefineVariables(m Model, inst *Instance) error {
	var err error
	if b.x, err = arcVars(m, inst); err != nil {
		return err
	}
	if b.y, b.r, err = selectionVars(m, inst); err != nil {
		return err
	}
	b.f = make(map[int]map[Arc]Var, len(inst.Vertices))
	b.s = make(map[int]map[int]Var, len(inst.Vertices))
	for _, c := range inst.Vertices {
		b.f[c] = make(map[Arc]Var, len(inst.Arcs))
		for _, a := range inst.Arcs {
			if b.f[c][a], err = m.AddVar(Continuous, 0, 1, fmt.Sprintf("f%d_%d_%d", c, a.From, a.To)); err != nil {
				return err
			}
		}
		b.s[c] = make(map[int]Var, len(inst.Vertices))
		for _, v := range inst.Vertices {
			if b.s[c][v], err = m.AddVar(Binary, 0, 1, fmt.Sprintf("s%d_%d", c, v)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *mcfBuilder) DefineConstraints(m Model, inst *Instance) error {
	if err := treeConstraints(m, inst, b.x, b.y, b.r); err != nil {
		return err
	}

	for _, c := range inst.Vertices {
		for _, v := range inst.Vertices {
			// s[c][v] = r_v AND y_c.
			and1 := &LinExpr{}
			and1.Add(b.s[c][v], 1).Add(b.r[v], -1)
			if err := m.AddConstr(and1, LessEqual, 0, fmt.Sprintf("src_r_%d_%d", c, v)); err != nil {
				return err
			}
			and2 := &LinExpr{}
			and2.Add(b.s[c][v], 1).Add(b.y[c], -1)
			if err := m.AddConstr(and2, LessEqual, 0, fmt.Sprintf("src_y_%d_%d", c, v)); err != nil {
				return err
			}
			and3 := &LinExpr{}
			and3.Add(b.r[v], 1).Add(b.y[c], 1).Add(b.s[c][v], -1)
			if err := m.AddConstr(and3, LessEqual, 1, fmt.Sprintf("src_and_%d_%d", c, v)); err != nil {
				return err
			}

			// Balance for commodity c at v: in - out = [v==c]*y_c - s[c][v].
			bal := &LinExpr{}
			for _, a := range inst.Arcs {
				if a.To == v {
					bal.Add(b.f[c][a], 1)
				} else if a.From == v {
					bal.Add(b.f[c][a], -1)
				}
			}
			if v == c {
				bal.Add(b.y[c], -1)
			}
			bal.Add(b.s[c][v], 1)
			if err := m.AddConstr(bal, Equal, 0, fmt.Sprintf("balance_%d_%d", c, v)); err != nil {
				return err
			}
		}

		for _, a := range inst.Arcs {
			capacity := &LinExpr{}
			capacity.Add(b.f[c][a], 1).Add(b.x[a], -1)
			if err := m.AddConstr(capacity, LessEqual, 0, fmt.Sprintf("cap_%d_%d_%d", c, a.From, a.To)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *mcfBuilder) DefineObjective(m Model, inst *Instance) error {
	return weightObjective(m, inst, b.x)
}

func (b *mcfBuilder) ArcVars() map[Arc]Var { return b.x }
