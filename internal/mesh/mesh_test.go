package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swtya/meshlint/internal/mesh"
	"github.com/swtya/meshlint/internal/service/lint"
)

// gluedTetrahedra builds two tetrahedra sharing one triangle. The shared
// face (index 0) is interior and its three edges carry three faces each.
func gluedTetrahedra(t *testing.T) *mesh.Mesh {
	t.Helper()
	positions := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {0.5, 1, 0}, {0.5, 0.5, 1}, {0.5, 0.5, -1},
	}
	faces := [][]int{
		{0, 1, 2},
		{0, 1, 3}, {1, 2, 3}, {0, 2, 3},
		{0, 1, 4}, {1, 2, 4}, {0, 2, 4},
	}
	m, err := mesh.Build(positions, faces, nil)
	require.NoError(t, err)
	return m
}

func TestBuild_Cube(t *testing.T) {
	m := mesh.Cube()

	assert.Equal(t, 8, m.VertCount())
	assert.Equal(t, 12, m.EdgeCount())
	assert.Equal(t, 6, m.FaceCount())
	assert.NotEmpty(t, m.DataID())

	for v := 0; v < m.VertCount(); v++ {
		assert.Equal(t, 3, m.VertEdgeCount(v), "vertex %d", v)
		assert.True(t, m.VertIsManifold(v), "vertex %d", v)
	}
	for e := 0; e < m.EdgeCount(); e++ {
		assert.Equal(t, 2, m.EdgeFaceCount(e), "edge %d", e)
		assert.True(t, m.EdgeIsManifold(e), "edge %d", e)
	}
	for f := 0; f < m.FaceCount(); f++ {
		assert.Len(t, m.FaceEdges(f), 4, "face %d", f)
	}
}

func TestBuild_DistinctDataIDs(t *testing.T) {
	assert.NotEqual(t, mesh.Cube().DataID(), mesh.Cube().DataID())
}

func TestBuild_Errors(t *testing.T) {
	_, err := mesh.Build([][3]float64{{0, 0, 0}}, [][]int{{0, 1, 2}}, nil)
	assert.ErrorIs(t, err, mesh.ErrVertexOutOfRange)

	_, err = mesh.Build([][3]float64{{0, 0, 0}, {1, 0, 0}}, [][]int{{0, 1}}, nil)
	assert.ErrorIs(t, err, mesh.ErrDegenerateFace)

	_, err = mesh.Build(
		[][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[][]int{{0, 1, 1}}, nil)
	assert.ErrorIs(t, err, mesh.ErrRepeatedVertex)

	_, err = mesh.Build([][3]float64{{0, 0, 0}}, nil, [][2]int{{0, 4}})
	assert.ErrorIs(t, err, mesh.ErrVertexOutOfRange)
}

func TestManifold_PlaneBoundary(t *testing.T) {
	m := mesh.Plane()

	// every corner has two boundary edges and one face: manifold
	for v := 0; v < m.VertCount(); v++ {
		assert.True(t, m.VertIsManifold(v), "vertex %d", v)
	}
	// boundary edges have one face: not manifold
	for e := 0; e < m.EdgeCount(); e++ {
		assert.False(t, m.EdgeIsManifold(e), "edge %d", e)
	}
}

func TestManifold_WireAndIsolatedVerts(t *testing.T) {
	positions := [][3]float64{
		{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0},
		{2, 2, 0}, // attached only by a wire edge
		{5, 5, 5}, // isolated
	}
	m, err := mesh.Build(positions, [][]int{{0, 1, 2, 3}}, [][2]int{{2, 4}})
	require.NoError(t, err)

	assert.False(t, m.VertIsManifold(2), "vertex carrying a wire edge")
	assert.False(t, m.VertIsManifold(4), "wire-only vertex")
	assert.False(t, m.VertIsManifold(5), "isolated vertex")
	assert.True(t, m.VertIsManifold(0))
}

func TestManifold_OverloadedEdge(t *testing.T) {
	m := gluedTetrahedra(t)

	// shared triangle's edges carry three faces
	for _, e := range m.FaceEdges(0) {
		assert.Equal(t, 3, m.EdgeFaceCount(e))
		assert.False(t, m.EdgeIsManifold(e))
	}
	// verts on the shared triangle touch overloaded edges
	for _, v := range []int{0, 1, 2} {
		assert.False(t, m.VertIsManifold(v), "vertex %d", v)
	}
	// apex verts see clean two-face fans
	for _, v := range []int{3, 4} {
		assert.True(t, m.VertIsManifold(v), "vertex %d", v)
	}
}

func TestCube_CleanUnderDefaultChecks(t *testing.T) {
	registry := lint.Builtin()
	analyzer := lint.NewAnalyzer(registry)

	analysis := analyzer.Analyze(mesh.Cube(), registry.DefaultEnabled())

	assert.Equal(t, 0, analysis.TotalProblems)
	assert.True(t, analysis.Clean())
	for _, report := range analysis.Reports {
		switch report.Check.Symbol {
		case "three_poles", "five_poles":
			assert.Equal(t, lint.StatusDisabled, report.Status, report.Check.Symbol)
		default:
			assert.Equal(t, lint.StatusClean, report.Status, report.Check.Symbol)
		}
	}
}

func TestCube_EveryVertexIsAThreePole(t *testing.T) {
	registry := lint.Builtin()
	analyzer := lint.NewAnalyzer(registry)

	analysis := analyzer.Analyze(mesh.Cube(), map[string]bool{"three_poles": true})

	assert.Equal(t, 8, analysis.TotalProblems)
}

func TestGluedTetrahedra_FullAnalysis(t *testing.T) {
	registry := lint.Builtin()
	analyzer := lint.NewAnalyzer(registry)
	enabled := make(map[string]bool)
	for _, c := range registry.Checks() {
		enabled[c.Symbol] = true
	}

	analysis := analyzer.Analyze(gluedTetrahedra(t), enabled)

	counts := make(map[string]int)
	elems := make(map[string]lint.BadElements)
	for _, report := range analysis.Reports {
		counts[report.Check.Symbol] = report.Count
		elems[report.Check.Symbol] = report.Elems
	}

	assert.Equal(t, 7, counts["tris"])
	assert.Equal(t, 0, counts["ngons"])
	assert.Equal(t, 6, counts["nonmanifold"]) // verts 0,1,2 + the 3 shared edges
	assert.Equal(t, 1, counts["interior_faces"])
	assert.Equal(t, []int{0}, elems["interior_faces"][lint.KindFaces])
	assert.Equal(t, 2, counts["three_poles"]) // the two apexes
	assert.Equal(t, 0, counts["five_poles"])
	assert.Equal(t, 0, counts["sixplus_poles"])
	assert.Equal(t, 16, analysis.TotalProblems)
}
