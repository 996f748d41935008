package kmst

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// padID left-pads single-digit instance ids to the two-digit convention of
// the benchmark set.
func padID(name string) string {
	if len(name) < 2 {
		return "0" + name
	}
	return name
}

// InstanceFile returns the data file name for an instance id (g01.dat,
// g02.dat, ...).
func InstanceFile(name string) string {
	return fmt.Sprintf("g%s.dat", padID(name))
}

// LoadInstance reads one instance file from dataPath. The returned instance
// has K unset; use WithK to derive solvable k-variants.
func LoadInstance(dataPath, name string) (*Instance, error) {
	path := filepath.Join(dataPath, InstanceFile(name))
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrDataFormat, path, err)
	}
	defer f.Close()
	return ParseInstance(f, fmt.Sprintf("instance_%s", padID(name)))
}

// ParseInstance reads the fixed text format: line 1 holds n+1, line 2 holds
// m+1, every following non-blank line is "<id> <a> <b> <w>". Each undirected
// edge must appear exactly once (in either orientation); duplicates would
// double-count in the cardinality constraint and are rejected.
func ParseInstance(r io.Reader, name string) (*Instance, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrDataFormat, name, err)
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: %s: expected at least 2 header lines, got %d", ErrDataFormat, name, len(lines))
	}

	header := make([]int, 2)
	for i := 0; i < 2; i++ {
		v, err := strconv.Atoi(lines[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: bad header line %d: %q", ErrDataFormat, name, i+1, lines[i])
		}
		header[i] = v
	}
	n, m := header[0]-1, header[1]-1
	if n < 1 {
		return nil, fmt.Errorf("%w: %s: no vertices", ErrDataFormat, name)
	}

	inst := &Instance{
		Name:    name,
		N:       n,
		M:       m,
		Weights: make(map[Arc]int),
	}
	for v := 0; v <= n; v++ {
		inst.Vertices = append(inst.Vertices, v)
	}

	seen := make(map[Arc]bool)
	for _, line := range lines[2:] {
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: %s: expected 4 fields, got %q", ErrDataFormat, name, line)
		}
		nums := make([]int, 4)
		for i, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: bad integer %q in line %q", ErrDataFormat, name, field, line)
			}
			nums[i] = v
		}
		a, b, w := nums[1], nums[2], nums[3]
		if a < 0 || a > n || b < 0 || b > n || a == b {
			return nil, fmt.Errorf("%w: %s: invalid edge (%d,%d)", ErrDataFormat, name, a, b)
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: %s: negative weight on edge (%d,%d)", ErrDataFormat, name, a, b)
		}
		if seen[Arc{a, b}] || seen[Arc{b, a}] {
			return nil, fmt.Errorf("%w: %s: duplicate edge (%d,%d)", ErrDataFormat, name, a, b)
		}
		seen[Arc{a, b}] = true

		inst.Edges = append(inst.Edges, Edge{A: a, B: b})
		inst.Arcs = append(inst.Arcs, Arc{From: a, To: b}, Arc{From: b, To: a})
		inst.Weights[Arc{a, b}] = w
		inst.Weights[Arc{b, a}] = w
	}
	if m != len(inst.Edges) {
		log.Printf("%s: header claims %d edges, file has %d; using the edge set", name, m, len(inst.Edges))
	}
	return inst, nil
}

// WithK returns a sibling instance with the given target size. The graph data
// (vertex, edge, arc and weight collections) is shared by reference; only the
// scalar fields are copied, so setting K here never affects the receiver.
func (in *Instance) WithK(k int) (*Instance, error) {
	if k < 1 || k > in.N+1 {
		return nil, fmt.Errorf("kmst: k=%d out of range [1,%d] for %s", k, in.N+1, in.Name)
	}
	sibling := *in
	sibling.K = k
	return &sibling, nil
}

// LoadVariants loads one base graph and expands it into the two benchmark
// k-variants: "_0" with k = ceil(n/5) and "_1" with k = ceil(n/2).
func LoadVariants(dataPath, name string) ([]*Instance, error) {
	base, err := LoadInstance(dataPath, name)
	if err != nil {
		return nil, err
	}
	variants := make([]*Instance, 0, 2)
	for i, k := range []int{ceilDiv(base.N, 5), ceilDiv(base.N, 2)} {
		inst, err := base.WithK(k)
		if err != nil {
			return nil, err
		}
		inst.Name = fmt.Sprintf("%s_%d", base.Name, i)
		variants = append(variants, inst)
	}
	return variants, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
