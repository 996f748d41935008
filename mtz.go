package kmst

import "fmt"

// mtzBuilder is the Miller-Tucker-Zemlin formulation. Subtours are cut off
// by per-vertex sequence variables u[v] in [1,k]: a selected arc (i,j)
// forces u[j] >= u[i] + 1, so no directed cycle can be selected. O(n) extra
// variables and O(n^2) constraints, against the exponential constraint count
// of the cutset formulation.
type mtzBuilder struct {
	x map[Arc]Var
	u map[int]Var
}

func (b *mtzBuilder) DefineVariables(m Model, inst *Instance) error {
	var err error
	if b.x, err = arcVars(m, inst); err != nil {
		return err
	}
	b.u = make(map[int]Var, len(inst.Vertices))
	for _, v := range inst.Vertices {
		if b.u[v], err = m.AddVar(Integer, 1, float64(inst.K), fmt.Sprintf("u_%d", v)); err != nil {
			return err
		}
	}
	return nil
}

func (b *mtzBuilder) DefineConstraints(m Model, inst *Instance) error {
	k := inst.K

	// Exactly k-1 edges; summing both orientations counts each undirected
	// edge once since at most one orientation may be selected.
	card := &LinExpr{}
	for _, e := range inst.Edges {
		card.Add(b.x[Arc{e.A, e.B}], 1).Add(b.x[Arc{e.B, e.A}], 1)
	}
	if err := m.AddConstr(card, Equal, float64(k-1), "cardinality"); err != nil {
		return err
	}

	for _, a := range inst.Arcs {
		pair := &LinExpr{}
		pair.Add(b.x[a], 1).Add(b.x[Arc{a.To, a.From}], 1)
		if err := m.AddConstr(pair, LessEqual, 1, fmt.Sprintf("orient_%d_%d", a.From, a.To)); err != nil {
			return err
		}

		// u_i + x_ij - u_j <= (k-1)(1 - x_ij), collected on the left:
		// u_i - u_j + k*x_ij <= k-1.
		seq := &LinExpr{}
		seq.Add(b.u[a.From], 1).Add(b.u[a.To], -1).Add(b.x[a], float64(k))
		if err := m.AddConstr(seq, LessEqual, float64(k-1), fmt.Sprintf("seq_%d_%d", a.From, a.To)); err != nil {
			return err
		}
	}
	return nil
}

func (b *mtzBuilder) DefineObjective(m Model, inst *Instance) error {
	return weightObjective(m, inst, b.x)
}

func (b *mtzBuilder) ArcVars() map[Arc]Var { return b.x }

func (b *mtzBuilder) SeqVars() map[int]Var { return b.u }
