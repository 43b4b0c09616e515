package meshio

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/swtya/meshlint/internal/mesh"
)

var (
	ErrBadVertex = errors.New("malformed vertex line")
	ErrBadFace   = errors.New("malformed face line")
	ErrBadLine   = errors.New("malformed polyline statement")
	ErrBadIndex  = errors.New("vertex index out of range")
)

// ParseOBJ reads the subset of Wavefront OBJ this tool cares about: v, f
// and l statements. Normals, texture coordinates, groups and materials are
// skipped. Face vertex references may carry the usual /vt/vn suffixes;
// negative (relative) indices are resolved against the verts read so far.
func ParseOBJ(src string) (*mesh.Mesh, error) {
	var (
		positions [][3]float64
		faces     [][]int
		wires     [][2]int
	)

	sc := bufio.NewScanner(strings.NewReader(src))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d", ErrBadVertex, lineNo)
			}
			var p [3]float64
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrBadVertex, lineNo, err)
				}
				p[i] = f
			}
			positions = append(positions, p)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d needs at least 3 vertices", ErrBadFace, lineNo)
			}
			loop := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				idx, err := resolveIndex(ref, len(positions))
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrBadFace, lineNo, err)
				}
				loop = append(loop, idx)
			}
			faces = append(faces, loop)

		case "l":
			if len(fields) < 3 {
				continue
			}
			prev := -1
			for _, ref := range fields[1:] {
				idx, err := resolveIndex(ref, len(positions))
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrBadLine, lineNo, err)
				}
				if prev >= 0 {
					wires = append(wires, [2]int{prev, idx})
				}
				prev = idx
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	if len(positions) == 0 {
		return nil, ErrEmptyPayload
	}

	m, err := mesh.Build(positions, faces, wires)
	if err != nil {
		return nil, fmt.Errorf("build mesh from obj: %w", err)
	}
	return m, nil
}

// resolveIndex converts an OBJ vertex reference ("7", "7/1/3", "-2") into a
// zero-based index against the verts read so far.
func resolveIndex(ref string, vertCount int) (int, error) {
	if i := strings.IndexByte(ref, '/'); i >= 0 {
		ref = ref[:i]
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return 0, err
	}
	switch {
	case n > 0 && n <= vertCount:
		return n - 1, nil
	case n < 0 && -n <= vertCount:
		return vertCount + n, nil
	default:
		return 0, fmt.Errorf("%w: %d of %d", ErrBadIndex, n, vertCount)
	}
}
