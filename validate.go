package kmst

import "sort"

// ValidateSolution rebuilds the subgraph selected by the solved model and
// checks that it is a connected tree. The report is always returned; a
// structural defect additionally comes back as a *StructuralError so the
// caller cannot miss a broken formulation.
func ValidateSolution(m Model, b Builder, inst *Instance) (*Validation, error) {
	adj := make(map[int][]int)
	var edges []Edge
	seen := make(map[Edge]bool)
	for a, v := range b.ArcVars() {
		val, err := m.Value(v)
		if err != nil {
			return nil, err
		}
		if val < 0.5 {
			continue
		}
		e := Edge{A: a.From, B: a.To}
		if a.To < a.From {
			e = Edge{A: a.To, B: a.From}
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		edges = append(edges, e)
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}

	// A k=1 solution is a single vertex and selects no arcs at all; the
	// arc variables cannot name the vertex, so there is nothing further to
	// check.
	if len(edges) == 0 && inst.K == 1 {
		return &Validation{IsTree: true, IsConnected: true}, nil
	}

	var nodes []int
	for v := range adj {
		nodes = append(nodes, v)
	}
	sort.Ints(nodes)
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})

	report := &Validation{
		Nodes:       nodes,
		Edges:       edges,
		IsConnected: connected(nodes, adj),
	}
	report.IsTree = report.IsConnected && len(edges) == len(nodes)-1

	if sb, ok := b.(SequenceVars); ok {
		report.Seq = make(map[int]int, len(nodes))
		for _, v := range nodes {
			val, err := m.Value(sb.SeqVars()[v])
			if err != nil {
				return nil, err
			}
			report.Seq[v] = int(val + 0.5)
		}
	}

	// The verdict also covers the size: a smaller tree would satisfy the
	// edge-count identity and still be wrong for this instance.
	if !report.IsTree || !report.IsConnected || len(nodes) != inst.K {
		return report, &StructuralError{
			Instance:    inst.Name,
			K:           inst.K,
			Nodes:       len(nodes),
			Edges:       len(edges),
			IsTree:      report.IsTree,
			IsConnected: report.IsConnected,
		}
	}
	return report, nil
}

// connected reports whether the selected subgraph is connected, via a walk
// from an arbitrary selected vertex.
func connected(nodes []int, adj map[int][]int) bool {
	if len(nodes) == 0 {
		return false
	}
	visited := make(map[int]bool, len(nodes))
	queue := []int{nodes[0]}
	visited[nodes[0]] = true
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range adj[v] {
			if !visited[w] {
				visited[w] = true
				queue = append(queue, w)
			}
		}
	}
	return len(visited) == len(nodes)
}
