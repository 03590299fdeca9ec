package renderer

// Towel quad: position, texture coordinate, color. The texture coordinate
// comes second so the towel shares attribute locations with the grass.
var (
	towelLayout = []int32{3, 2, 3}
	towelVerts  = []float32{
		1, 0.5, 0, 1, 1, 1, 0, 0,
		1, -0.5, 0, 1, 0, 0, 1, 0,
		-1, -0.5, 0, 0, 0, 0, 0, 1,
		-1, 0.5, 0, 0, 1, 1, 1, 0,
	}
	towelIndices = []uint32{
		0, 1, 3,
		1, 2, 3,
	}
)

// Grass sprite: position, texture coordinate. The quad's left edge sits on
// the origin so sprites stand on their placement point.
var (
	grassLayout = []int32{3, 2}
	grassVerts  = []float32{
		0, 0.5, 0, 0, 1,
		0, -0.5, 0, 0, 0,
		1, -0.5, 0, 1, 0,

		0, 0.5, 0, 0, 1,
		1, -0.5, 0, 1, 0,
		1, 0.5, 0, 1, 1,
	}
)

// Floor plane in world space: position, normal, texture coordinate.
// Coordinates above 1 repeat the sand texture ten times.
var (
	planeLayout = []int32{3, 3, 2}
	planeVerts  = []float32{
		5, -0.25, 5, 0, 1, 0, 10, 0,
		-5, -0.25, 5, 0, 1, 0, 0, 0,
		-5, -0.25, -5, 0, 1, 0, 0, 10,

		5, -0.25, 5, 0, 1, 0, 10, 0,
		-5, -0.25, -5, 0, 1, 0, 0, 10,
		5, -0.25, -5, 0, 1, 0, 10, 10,
	}
)

// Light marker cube: position, normal, texture coordinate.
var (
	cubeLayout = []int32{3, 3, 2}
	cubeVerts  = []float32{
		-0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
		0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
		0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
		0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
		-0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
		-0.5, -0.5, -0.5, 0, 0, -1, 0, 0,

		-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
		0.5, -0.5, 0.5, 0, 0, 1, 1, 0,
		0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
		0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
		-0.5, 0.5, 0.5, 0, 0, 1, 0, 1,
		-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,

		-0.5, 0.5, 0.5, -1, 0, 0, 1, 0,
		-0.5, 0.5, -0.5, -1, 0, 0, 1, 1,
		-0.5, -0.5, -0.5, -1, 0, 0, 0, 1,
		-0.5, -0.5, -0.5, -1, 0, 0, 0, 1,
		-0.5, -0.5, 0.5, -1, 0, 0, 0, 0,
		-0.5, 0.5, 0.5, -1, 0, 0, 1, 0,

		0.5, 0.5, 0.5, 1, 0, 0, 1, 0,
		0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
		0.5, -0.5, -0.5, 1, 0, 0, 0, 1,
		0.5, -0.5, -0.5, 1, 0, 0, 0, 1,
		0.5, -0.5, 0.5, 1, 0, 0, 0, 0,
		0.5, 0.5, 0.5, 1, 0, 0, 1, 0,

		-0.5, -0.5, -0.5, 0, -1, 0, 0, 1,
		0.5, -0.5, -0.5, 0, -1, 0, 1, 1,
		0.5, -0.5, 0.5, 0, -1, 0, 1, 0,
		0.5, -0.5, 0.5, 0, -1, 0, 1, 0,
		-0.5, -0.5, 0.5, 0, -1, 0, 0, 0,
		-0.5, -0.5, -0.5, 0, -1, 0, 0, 1,

		-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
		0.5, 0.5, -0.5, 0, 1, 0, 1, 1,
		0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
		0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
		-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,
		-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
	}
)
