// Package selector drives element selection from an analysis: the flagged
// index sets become the mesh selection so the modeller can see and fix the
// offending geometry.
package selector

import (
	"github.com/swtya/meshlint/internal/mesh"
	"github.com/swtya/meshlint/internal/service/lint"
)

// Result summarizes one examine pass over a mesh.
type Result struct {
	Analysis      lint.Analysis `json:"analysis"`
	Clean         bool          `json:"clean"`
	SelectedVerts int           `json:"selected_verts"`
	SelectedEdges int           `json:"selected_edges"`
	SelectedFaces int           `json:"selected_faces"`
}

// Examine analyzes m with the given toggles, replaces the mesh selection
// with the flagged elements and reports what it selected. The mesh geometry
// itself is never touched.
func Examine(a *lint.Analyzer, m *mesh.Mesh, enabled map[string]bool) Result {
	m.DeselectAll()
	analysis := a.Analyze(m, enabled)
	Apply(m, analysis)
	verts, edges, faces := m.SelectionCounts()
	return Result{
		Analysis:      analysis,
		Clean:         analysis.Clean(),
		SelectedVerts: verts,
		SelectedEdges: edges,
		SelectedFaces: faces,
	}
}

// Apply selects every element flagged by the analysis. Face selection
// cascades to bounding edges and their verts, edge selection to its verts,
// matching the host's selection semantics.
func Apply(m *mesh.Mesh, analysis lint.Analysis) {
	for _, report := range analysis.Reports {
		if report.Status == lint.StatusDisabled {
			continue
		}
		for _, v := range report.Elems[lint.KindVerts] {
			m.SelectVert(v)
		}
		for _, e := range report.Elems[lint.KindEdges] {
			m.SelectEdge(e)
		}
		for _, f := range report.Elems[lint.KindFaces] {
			m.SelectFace(f)
		}
	}
}
