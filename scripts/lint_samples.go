package main

import (
	"fmt"
	"log"

	"github.com/swtya/meshlint/internal/mesh"
	"github.com/swtya/meshlint/internal/service/lint"
)

// Offline sanity run: analyze a handful of sample meshes with every check
// enabled and print the per-check counts.
func main() {
	registry := lint.Builtin()
	analyzer := lint.NewAnalyzer(registry)

	allOn := make(map[string]bool)
	for _, c := range registry.Checks() {
		allOn[c.Symbol] = true
	}

	samples := []struct {
		name string
		m    *mesh.Mesh
	}{
		{"cube", mesh.Cube()},
		{"plane", mesh.Plane()},
		{"glued tetrahedra", gluedTetrahedra()},
		{"triangulated quad", triangulatedQuad()},
	}

	for _, sample := range samples {
		analysis := analyzer.Analyze(sample.m, allOn)
		fmt.Printf("%s  (verts=%d edges=%d faces=%d)\n",
			sample.name, sample.m.VertCount(), sample.m.EdgeCount(), sample.m.FaceCount())
		for _, report := range analysis.Reports {
			fmt.Printf("  %-22s %d\n", report.Check.Label, report.Count)
		}
		fmt.Printf("  total: %d\n\n", analysis.TotalProblems)
	}
}

// gluedTetrahedra shares one triangle between two tetrahedra; the shared
// face is interior and its edges are nonmanifold.
func gluedTetrahedra() *mesh.Mesh {
	positions := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {0.5, 1, 0}, {0.5, 0.5, 1}, {0.5, 0.5, -1},
	}
	faces := [][]int{
		{0, 1, 2}, // shared
		{0, 1, 3}, {1, 2, 3}, {0, 2, 3},
		{0, 1, 4}, {1, 2, 4}, {0, 2, 4},
	}
	m, err := mesh.Build(positions, faces, nil)
	if err != nil {
		log.Fatal(err)
	}
	return m
}

func triangulatedQuad() *mesh.Mesh {
	positions := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	}
	m, err := mesh.Build(positions, [][]int{{0, 1, 2}, {0, 2, 3}}, nil)
	if err != nil {
		log.Fatal(err)
	}
	return m
}
