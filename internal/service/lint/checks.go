package lint

// Builtin returns a fresh registry holding the built-in topology checks in
// their canonical order. Built once at process start.
func Builtin() *Registry {
	r := NewRegistry()
	builtins := []Check{
		{
			Symbol: "tris",
			Label:  "Tris",
			Definition: "A face with 3 edges. Often bad for modelling because it stops " +
				"edge loops and does not deform well around bent areas. A mesh might " +
				"look good until you animate, so beware!",
			DefaultEnabled: true,
			Classify:       checkTris,
		},
		{
			Symbol:         "ngons",
			Label:          "Ngons",
			Definition:     "A face with >4 edges. Is generally bad in exactly the same ways as Tris.",
			DefaultEnabled: true,
			Classify:       checkNgons,
		},
		{
			Symbol: "nonmanifold",
			Label:  "Nonmanifold Elements",
			Definition: "Simply, shapes that won't hold water. Nonmanifold edges are those " +
				"that do not have exactly 2 faces attached to them (either more or less). " +
				"Nonmanifold verts have a more involved boundary-consistency definition.",
			DefaultEnabled: true,
			Classify:       checkNonmanifold,
		},
		{
			Symbol: "interior_faces",
			Label:  "Interior Faces",
			Definition: "This confuses people. It is very specific: a face whose edges ALL " +
				"have >2 faces attached.",
			DefaultEnabled: true,
			Classify:       checkInteriorFaces,
		},
		{
			Symbol:         "three_poles",
			Label:          "3-edge Poles",
			Definition:     "A vertex with 3 edges connected to it. Also known as an N-Pole.",
			DefaultEnabled: false,
			Classify:       checkThreePoles,
		},
		{
			Symbol:         "five_poles",
			Label:          "5-edge Poles",
			Definition:     "A vertex with 5 edges connected to it. Also known as an E-Pole.",
			DefaultEnabled: false,
			Classify:       checkFivePoles,
		},
		{
			Symbol: "sixplus_poles",
			Label:  "6+-edge Poles",
			Definition: "A vertex with 6 or more edges connected to it. Some extrusions " +
				"legitimately cause such poles, but if you don't know for sure that you " +
				"want them, it is good to enable this.",
			DefaultEnabled: true,
			Classify:       checkSixPlusPoles,
		},
	}
	for _, c := range builtins {
		if err := r.Register(c); err != nil {
			// Built-in symbols are unique by construction.
			panic(err)
		}
	}
	return r
}

func checkTris(m Mesh) BadElements {
	bad := BadElements{KindFaces: []int{}}
	for f := 0; f < m.FaceCount(); f++ {
		if len(m.FaceEdges(f)) == 3 {
			bad[KindFaces] = append(bad[KindFaces], f)
		}
	}
	return bad
}

func checkNgons(m Mesh) BadElements {
	bad := BadElements{KindFaces: []int{}}
	for f := 0; f < m.FaceCount(); f++ {
		if len(m.FaceEdges(f)) > 4 {
			bad[KindFaces] = append(bad[KindFaces], f)
		}
	}
	return bad
}

// checkNonmanifold flags verts and edges failing the manifold predicate.
// Face manifoldness is not a thing this check looks at.
func checkNonmanifold(m Mesh) BadElements {
	bad := BadElements{KindVerts: []int{}, KindEdges: []int{}}
	for v := 0; v < m.VertCount(); v++ {
		if !m.VertIsManifold(v) {
			bad[KindVerts] = append(bad[KindVerts], v)
		}
	}
	for e := 0; e < m.EdgeCount(); e++ {
		if !m.EdgeIsManifold(e) {
			bad[KindEdges] = append(bad[KindEdges], e)
		}
	}
	return bad
}

// checkInteriorFaces flags faces where every bounding edge has more than two
// incident faces, meaning no edge of the face sits on a clean two-face seam.
func checkInteriorFaces(m Mesh) BadElements {
	bad := BadElements{KindFaces: []int{}}
	for f := 0; f < m.FaceCount(); f++ {
		interior := true
		for _, e := range m.FaceEdges(f) {
			if m.EdgeFaceCount(e) < 3 {
				interior = false
				break
			}
		}
		if interior {
			bad[KindFaces] = append(bad[KindFaces], f)
		}
	}
	return bad
}

func checkThreePoles(m Mesh) BadElements {
	return checkPoles(m, func(n int) bool { return n == 3 })
}

func checkFivePoles(m Mesh) BadElements {
	return checkPoles(m, func(n int) bool { return n == 5 })
}

func checkSixPlusPoles(m Mesh) BadElements {
	return checkPoles(m, func(n int) bool { return n > 5 })
}

func checkPoles(m Mesh, isPole func(edgeCount int) bool) BadElements {
	bad := BadElements{KindVerts: []int{}}
	for v := 0; v < m.VertCount(); v++ {
		if isPole(m.VertEdgeCount(v)) {
			bad[KindVerts] = append(bad[KindVerts], v)
		}
	}
	return bad
}
