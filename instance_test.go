package kmst

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDat = `5
6
0 0 1 1
1 1 2 1
2 2 3 1

3 3 4 1
4 0 4 10
`

func TestParseInstance(t *testing.T) {
	inst, err := ParseInstance(strings.NewReader(sampleDat), "instance_01")
	require.NoError(t, err)

	require.Equal(t, "instance_01", inst.Name)
	require.Equal(t, 4, inst.N)
	require.Equal(t, 5, inst.M)
	require.Equal(t, []int{0, 1, 2, 3, 4}, inst.Vertices)
	require.Len(t, inst.Edges, 5)
	require.Len(t, inst.Arcs, 2*len(inst.Edges))

	// Arcs are exactly the two orientations of every edge, each weighted.
	arcs := make(map[Arc]bool)
	for _, a := range inst.Arcs {
		arcs[a] = true
	}
	for _, e := range inst.Edges {
		require.True(t, arcs[Arc{e.A, e.B}])
		require.True(t, arcs[Arc{e.B, e.A}])
	}
	for _, a := range inst.Arcs {
		_, ok := inst.Weights[a]
		require.True(t, ok, "arc %v has no weight", a)
	}
	require.Equal(t, 10, inst.Weights[Arc{0, 4}])
	require.Equal(t, 10, inst.Weights[Arc{4, 0}])
}

func TestParseInstanceErrors(t *testing.T) {
	cases := map[string]string{
		"empty":             "",
		"header only":       "5\n",
		"bad header":        "five\n6\n",
		"short edge line":   "3\n2\n0 0 1\n",
		"bad edge token":    "3\n2\n0 0 x 1\n",
		"vertex range":      "3\n2\n0 0 7 1\n",
		"self loop":         "3\n2\n0 1 1 1\n",
		"negative weight":   "3\n2\n0 0 1 -4\n",
		"duplicate edge":    "3\n3\n0 0 1 1\n1 0 1 2\n",
		"reverse duplicate": "3\n3\n0 0 1 1\n1 1 0 2\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseInstance(strings.NewReader(data), "bad")
			require.ErrorIs(t, err, ErrDataFormat)
		})
	}
}

func TestWithKSharesGraphData(t *testing.T) {
	base, err := ParseInstance(strings.NewReader(sampleDat), "instance_01")
	require.NoError(t, err)

	s0, err := base.WithK(2)
	require.NoError(t, err)
	s1, err := base.WithK(3)
	require.NoError(t, err)

	require.Equal(t, 0, base.K, "WithK must not touch the receiver")
	require.Equal(t, 2, s0.K)
	require.Equal(t, 3, s1.K)

	// The graph collections are shared by reference, not copied.
	require.Equal(t, reflect.ValueOf(base.Weights).Pointer(), reflect.ValueOf(s0.Weights).Pointer())
	require.Equal(t, reflect.ValueOf(base.Weights).Pointer(), reflect.ValueOf(s1.Weights).Pointer())
	require.Same(t, &base.Edges[0], &s0.Edges[0])
	require.Same(t, &base.Arcs[0], &s1.Arcs[0])
}

func TestWithKRange(t *testing.T) {
	base, err := ParseInstance(strings.NewReader(sampleDat), "instance_01")
	require.NoError(t, err)

	_, err = base.WithK(0)
	require.Error(t, err)
	_, err = base.WithK(base.N + 2)
	require.Error(t, err)
	_, err = base.WithK(base.N + 1)
	require.NoError(t, err)
}

// File names and instance names must agree on id padding.
func TestInstanceFile(t *testing.T) {
	require.Equal(t, "g07.dat", InstanceFile("7"))
	require.Equal(t, "g42.dat", InstanceFile("42"))
	require.Equal(t, "g100.dat", InstanceFile("100"))
}

func writeDat(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, InstanceFile(name)), []byte(content), 0644))
}

func TestLoadVariants(t *testing.T) {
	dir := t.TempDir()
	// Path over 11 vertices: n=10, so k = ceil(10/5) = 2 and ceil(10/2) = 5.
	var sb strings.Builder
	sb.WriteString("11\n11\n")
	for v := 0; v < 10; v++ {
		fmt.Fprintf(&sb, "%d %d %d 1\n", v, v, v+1)
	}
	writeDat(t, dir, "7", sb.String())

	variants, err := LoadVariants(dir, "7")
	require.NoError(t, err)
	require.Len(t, variants, 2)
	require.Equal(t, "instance_07_0", variants[0].Name)
	require.Equal(t, "instance_07_1", variants[1].Name)
	require.Equal(t, 2, variants[0].K)
	require.Equal(t, 5, variants[1].K)
	require.NotEqual(t, variants[0].K, variants[1].K)

	// Siblings share the loaded graph data.
	require.Equal(t, reflect.ValueOf(variants[0].Weights).Pointer(), reflect.ValueOf(variants[1].Weights).Pointer())
}

func TestLoadVariantsMissingFile(t *testing.T) {
	_, err := LoadVariants(t.TempDir(), "42")
	require.ErrorIs(t, err, ErrDataFormat)
}
