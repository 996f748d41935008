package kmst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMCFTriangle(t *testing.T) {
	p, m, status := solve(t, MCF, triangleInstance(2))
	require.Equal(t, StatusOptimal, status)

	obj, err := m.ObjVal()
	require.NoError(t, err)
	require.Equal(t, 1.0, obj)

	report, err := p.Validate()
	require.NoError(t, err)
	require.True(t, report.IsTree)
	require.True(t, report.IsConnected)
	require.Equal(t, []int{0, 1}, report.Nodes)
}

func TestMCFSpanningTriangle(t *testing.T) {
	p, m, status := solve(t, MCF, triangleInstance(3))
	require.Equal(t, StatusOptimal, status)

	obj, err := m.ObjVal()
	require.NoError(t, err)
	require.Equal(t, 3.0, obj)

	report, err := p.Validate()
	require.NoError(t, err)
	require.True(t, report.IsTree)
	require.Len(t, report.Nodes, 3)
	require.Len(t, report.Edges, 2)
}

func TestMCFRejectsForest(t *testing.T) {
	inst := testInstance(3, 3, []wedge{{0, 1, 1}, {2, 3, 1}})
	_, _, status := solve(t, MCF, inst)
	require.Equal(t, StatusInfeasible, status)
}

func TestMCFMatchesMTZ(t *testing.T) {
	inst := triangleInstance(2)
	_, mMTZ, s1 := solve(t, MTZ, inst)
	_, mMCF, s2 := solve(t, MCF, inst)
	require.Equal(t, StatusOptimal, s1)
	require.Equal(t, StatusOptimal, s2)

	o1, err := mMTZ.ObjVal()
	require.NoError(t, err)
	o2, err := mMCF.ObjVal()
	require.NoError(t, err)
	require.Equal(t, o1, o2)
}
