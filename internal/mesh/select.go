package mesh

// Selection mirrors the host's cascade: selecting a face selects its edges
// and their verts, selecting an edge selects its verts.

func (m *Mesh) DeselectAll() {
	for i := range m.verts {
		m.verts[i].Selected = false
	}
	for i := range m.edges {
		m.edges[i].Selected = false
	}
	for i := range m.faces {
		m.faces[i].Selected = false
	}
}

func (m *Mesh) SelectVert(v int) {
	m.verts[v].Selected = true
}

func (m *Mesh) SelectEdge(e int) {
	m.edges[e].Selected = true
	for _, v := range m.edges[e].Verts {
		m.SelectVert(v)
	}
}

func (m *Mesh) SelectFace(f int) {
	m.faces[f].Selected = true
	for _, e := range m.faces[f].Edges {
		m.SelectEdge(e)
	}
}

func (m *Mesh) VertSelected(v int) bool { return m.verts[v].Selected }
func (m *Mesh) EdgeSelected(e int) bool { return m.edges[e].Selected }
func (m *Mesh) FaceSelected(f int) bool { return m.faces[f].Selected }

// SelectionCounts returns how many verts, edges and faces are selected.
func (m *Mesh) SelectionCounts() (verts, edges, faces int) {
	for i := range m.verts {
		if m.verts[i].Selected {
			verts++
		}
	}
	for i := range m.edges {
		if m.edges[i].Selected {
			edges++
		}
	}
	for i := range m.faces {
		if m.faces[i].Selected {
			faces++
		}
	}
	return
}
