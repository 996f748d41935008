package kmst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSCFTriangle(t *testing.T) {
	p, m, status := solve(t, SCF, triangleInstance(2))
	require.Equal(t, StatusOptimal, status)

	obj, err := m.ObjVal()
	require.NoError(t, err)
	require.Equal(t, 1.0, obj)

	report, err := p.Validate()
	require.NoError(t, err)
	require.True(t, report.IsTree)
	require.True(t, report.IsConnected)
	require.Equal(t, []int{0, 1}, report.Nodes)
	require.Equal(t, []Edge{{A: 0, B: 1}}, report.Edges)
}

// TestSCFPathScenario mirrors the MTZ end-to-end scenario; the flow
// constraints make connectivity part of the model, so the optimum is a tree
// by construction.
func TestSCFPathScenario(t *testing.T) {
	inst := pathInstance(3)
	p, m, status := solve(t, SCF, inst)
	require.Equal(t, StatusOptimal, status)

	obj, err := m.ObjVal()
	require.NoError(t, err)
	require.Equal(t, 2.0, obj)

	report, err := p.Validate()
	require.NoError(t, err)
	require.True(t, report.IsTree)
	require.Len(t, report.Nodes, 3)
	require.Len(t, report.Edges, 2)
}

// TestSCFRejectsForest is the counterpart of the MTZ forest test: with flow
// conservation in the model, two disjoint edges admit no 3-vertex solution
// at all.
func TestSCFRejectsForest(t *testing.T) {
	inst := testInstance(3, 3, []wedge{{0, 1, 1}, {2, 3, 1}})
	_, _, status := solve(t, SCF, inst)
	require.Equal(t, StatusInfeasible, status)
}

func TestSCFMatchesMTZ(t *testing.T) {
	for _, inst := range []*Instance{triangleInstance(2), triangleInstance(3)} {
		_, mMTZ, s1 := solve(t, MTZ, inst)
		_, mSCF, s2 := solve(t, SCF, inst)
		require.Equal(t, StatusOptimal, s1)
		require.Equal(t, StatusOptimal, s2)

		o1, err := mMTZ.ObjVal()
		require.NoError(t, err)
		o2, err := mSCF.ObjVal()
		require.NoError(t, err)
		require.Equal(t, o1, o2, "instance %s", inst.Name)
	}
}
