// Package mesh holds the in-memory editable mesh the checks run against:
// dense vertex/edge/face indices, adjacency queries, manifold predicates and
// per-element selection flags. Edges are derived from face loops, so two
// faces sharing a vertex pair share one edge.
package mesh

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrVertexOutOfRange = errors.New("vertex index out of range")
	ErrDegenerateFace   = errors.New("face needs at least 3 vertices")
	ErrRepeatedVertex   = errors.New("face repeats a vertex")
)

type Vert struct {
	Position [3]float64
	Edges    []int
	Selected bool
}

type Edge struct {
	Verts    [2]int
	Faces    []int
	Selected bool
}

type Face struct {
	Verts    []int
	Edges    []int
	Selected bool
}

// Mesh is one editable mesh object. The data id identifies the underlying
// mesh data across snapshots; replacing a session's geometry produces a new
// id, editing in place keeps it.
type Mesh struct {
	dataID string
	verts  []Vert
	edges  []Edge
	faces  []Face
}

// Build constructs a mesh from vertex positions, face vertex loops and
// optional wire edges (edges bounding no face). Face loops may be any
// length >= 3; edges are deduplicated by their vertex pair.
func Build(positions [][3]float64, faceLoops [][]int, wireEdges [][2]int) (*Mesh, error) {
	m := &Mesh{
		dataID: uuid.NewString(),
		verts:  make([]Vert, len(positions)),
	}
	for i, p := range positions {
		m.verts[i].Position = p
	}

	edgeIndex := make(map[[2]int]int)
	addEdge := func(a, b int) (int, error) {
		if a < 0 || a >= len(m.verts) || b < 0 || b >= len(m.verts) {
			return 0, fmt.Errorf("%w: (%d, %d)", ErrVertexOutOfRange, a, b)
		}
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if e, ok := edgeIndex[key]; ok {
			return e, nil
		}
		e := len(m.edges)
		edgeIndex[key] = e
		m.edges = append(m.edges, Edge{Verts: key})
		m.verts[a].Edges = append(m.verts[a].Edges, e)
		m.verts[b].Edges = append(m.verts[b].Edges, e)
		return e, nil
	}

	for fi, loop := range faceLoops {
		if len(loop) < 3 {
			return nil, fmt.Errorf("%w: face %d has %d", ErrDegenerateFace, fi, len(loop))
		}
		seen := make(map[int]struct{}, len(loop))
		face := Face{Verts: append([]int(nil), loop...)}
		for i, v := range loop {
			if _, dup := seen[v]; dup {
				return nil, fmt.Errorf("%w: face %d vertex %d", ErrRepeatedVertex, fi, v)
			}
			seen[v] = struct{}{}
			e, err := addEdge(v, loop[(i+1)%len(loop)])
			if err != nil {
				return nil, err
			}
			face.Edges = append(face.Edges, e)
			m.edges[e].Faces = append(m.edges[e].Faces, fi)
		}
		m.faces = append(m.faces, face)
	}

	for _, w := range wireEdges {
		if _, err := addEdge(w[0], w[1]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Mesh) DataID() string { return m.dataID }

func (m *Mesh) VertCount() int { return len(m.verts) }
func (m *Mesh) EdgeCount() int { return len(m.edges) }
func (m *Mesh) FaceCount() int { return len(m.faces) }

func (m *Mesh) VertEdgeCount(v int) int { return len(m.verts[v].Edges) }
func (m *Mesh) EdgeFaceCount(e int) int { return len(m.edges[e].Faces) }
func (m *Mesh) FaceEdges(f int) []int   { return m.faces[f].Edges }

// EdgeIsManifold reports whether edge e has exactly two incident faces.
func (m *Mesh) EdgeIsManifold(e int) bool {
	return len(m.edges[e].Faces) == 2
}

// VertIsManifold reports whether the faces around vertex v form a single
// consistent fan: no wire or overloaded incident edges, zero or two boundary
// edges, and all incident faces connected through the vertex's own edges.
// Isolated vertices are nonmanifold.
func (m *Mesh) VertIsManifold(v int) bool {
	incident := m.verts[v].Edges
	if len(incident) == 0 {
		return false
	}
	boundary := 0
	for _, e := range incident {
		switch fc := len(m.edges[e].Faces); {
		case fc == 0 || fc > 2:
			return false
		case fc == 1:
			boundary++
		}
	}
	if boundary != 0 && boundary != 2 {
		return false
	}
	return m.fanConnected(v)
}

// fanConnected walks faces around v through shared incident edges and
// checks that a single walk reaches them all.
func (m *Mesh) fanConnected(v int) bool {
	faces := make(map[int]struct{})
	faceEdges := make(map[int][]int) // face -> incident edges of v it uses
	for _, e := range m.verts[v].Edges {
		for _, f := range m.edges[e].Faces {
			faces[f] = struct{}{}
			faceEdges[f] = append(faceEdges[f], e)
		}
	}
	if len(faces) == 0 {
		return false
	}

	start := -1
	for f := range faces {
		start = f
		break
	}
	visited := map[int]struct{}{start: {}}
	queue := []int{start}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		for _, e := range faceEdges[f] {
			for _, next := range m.edges[e].Faces {
				if _, seen := visited[next]; seen {
					continue
				}
				if _, ok := faces[next]; !ok {
					continue
				}
				visited[next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}
	return len(visited) == len(faces)
}
