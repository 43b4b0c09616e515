// Package meshio decodes mesh payloads pushed by clients into editable
// meshes. Two formats: the JSON verts/faces/edges arrays used by the API,
// and Wavefront OBJ text for file uploads.
package meshio

import (
	"errors"
	"fmt"

	"github.com/swtya/meshlint/internal/mesh"
)

var (
	ErrEmptyPayload = errors.New("mesh payload has no geometry")
)

// Payload is the JSON mesh representation accepted by the API. Edges lists
// only wire edges; edges bounding faces are derived.
type Payload struct {
	Verts [][3]float64 `json:"verts"`
	Faces [][]int      `json:"faces"`
	Edges [][2]int     `json:"edges,omitempty"`
	OBJ   string       `json:"obj,omitempty"`
}

// Build turns a payload into a mesh. When the OBJ field is set it wins and
// the array fields are ignored.
func (p *Payload) Build() (*mesh.Mesh, error) {
	if p.OBJ != "" {
		return ParseOBJ(p.OBJ)
	}
	if len(p.Verts) == 0 && len(p.Faces) == 0 && len(p.Edges) == 0 {
		return nil, ErrEmptyPayload
	}
	m, err := mesh.Build(p.Verts, p.Faces, p.Edges)
	if err != nil {
		return nil, fmt.Errorf("build mesh: %w", err)
	}
	return m, nil
}
