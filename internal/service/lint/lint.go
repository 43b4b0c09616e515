// Package lint implements the topology checks, the analyzer that runs them
// against a mesh, and the differ that turns two analyses into an
// announcement string for the continuous checker.
package lint

// ElemKind names one of the three element collections of a mesh. The string
// values appear verbatim in reports and announcements ("4 verts"), so they
// stay lower-case plurals.
type ElemKind string

const (
	KindVerts ElemKind = "verts"
	KindEdges ElemKind = "edges"
	KindFaces ElemKind = "faces"
)

// ElemKinds is the fixed iteration order for element kinds within a report.
var ElemKinds = [...]ElemKind{KindVerts, KindEdges, KindFaces}

// BadElements maps an element kind to the indices flagged by one check.
// An absent kind means no elements of that kind were flagged.
type BadElements map[ElemKind][]int

// Count sums cardinalities across all kinds.
func (b BadElements) Count() int {
	n := 0
	for _, indices := range b {
		n += len(indices)
	}
	return n
}

// Mesh is the read-only accessor the checks run against. Indices are dense
// and stable for the lifetime of one analysis pass.
type Mesh interface {
	// DataID identifies the underlying mesh data object; two snapshots of
	// the same editable mesh share it.
	DataID() string

	VertCount() int
	EdgeCount() int
	FaceCount() int

	// VertEdgeCount returns the number of edges incident to vertex v.
	VertEdgeCount(v int) int
	// EdgeFaceCount returns the number of faces incident to edge e.
	EdgeFaceCount(e int) int
	// FaceEdges returns the indices of the edges bounding face f.
	FaceEdges(f int) []int

	VertIsManifold(v int) bool
	EdgeIsManifold(e int) bool
}
