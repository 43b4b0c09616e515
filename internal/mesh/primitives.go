package mesh

// Cube returns the default cube: 8 verts, 12 edges, 6 quad faces. Every
// vertex is a 3-edge pole; everything else about it is clean.
func Cube() *Mesh {
	positions := [][3]float64{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	faces := [][]int{
		{0, 1, 2, 3},
		{4, 7, 6, 5},
		{0, 4, 5, 1},
		{1, 5, 6, 2},
		{2, 6, 7, 3},
		{3, 7, 4, 0},
	}
	m, err := Build(positions, faces, nil)
	if err != nil {
		panic(err)
	}
	return m
}

// Plane returns a single quad face.
func Plane() *Mesh {
	positions := [][3]float64{
		{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0},
	}
	m, err := Build(positions, [][]int{{0, 1, 2, 3}}, nil)
	if err != nil {
		panic(err)
	}
	return m
}
