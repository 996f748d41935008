package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.solver4all.com/azaryc2s/kmst"
)

var nodes kmst.ArrayIntFlags

func main() {
	flag.Var(&nodes, "n", "List of vertex counts (excluding vertex 0) to generate")
	count := flag.Int("count", 1, "Number of instances per vertex count")
	density := flag.Float64("density", 0.3, "Fraction of the remaining vertex pairs to connect beyond the spanning tree")
	wMax := flag.Int("wmax", 100, "Maximum edge weight")
	outDir := flag.String("out", "data", "Output directory for the .dat files")
	start := flag.Int("start", 1, "First instance id")
	seed := flag.Int64("seed", 0, "Random seed. 0 uses the current time")

	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rand.Seed(*seed)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Printf("At %s: %s\n", *outDir, err.Error())
		return
	}

	id := *start
	for _, n := range nodes {
		for l := 0; l < *count; l++ {
			edges := randomConnected(n, *density)
			path := filepath.Join(*outDir, kmst.InstanceFile(fmt.Sprintf("%d", id)))
			if err := writeInstance(path, n, edges, *wMax); err != nil {
				log.Printf("At %s: %s\n", path, err.Error())
				return
			}
			log.Printf("Wrote %s: %d vertices, %d edges\n", path, n+1, len(edges))
			id++
		}
	}
}

// randomConnected builds a random spanning tree over the vertices 0..n and
// then adds extra random edges until the requested density is reached.
func randomConnected(n int, density float64) []kmst.Edge {
	var edges []kmst.Edge
	used := make(map[kmst.Edge]bool)
	add := func(a, b int) {
		if b < a {
			a, b = b, a
		}
		e := kmst.Edge{A: a, B: b}
		if !used[e] {
			used[e] = true
			edges = append(edges, e)
		}
	}
	for v := 1; v <= n; v++ {
		add(v, rand.Intn(v))
	}
	extra := int(density * float64((n+1)*n/2-n))
	for i := 0; i < extra; i++ {
		a := rand.Intn(n + 1)
		b := rand.Intn(n + 1)
		if a != b {
			add(a, b)
		}
	}
	return edges
}

func writeInstance(path string, n int, edges []kmst.Edge, wMax int) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n%d\n", n+1, len(edges)+1)
	for i, e := range edges {
		fmt.Fprintf(&sb, "%d %d %d %d\n", i, e.A, e.B, 1+rand.Intn(wMax))
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}
