package formats

// BuildFaces derives the implicit face list of an MDL model from its vertex
// counts. Triangles use consecutive vertex triples in order. Quads follow
// and are stored in strip order, so each one is emitted as (i, i+2, i+3, i+1).
//
// Only whole faces are emitted: tri/3 triangles and quad/4 quads. Indices
// are not checked against any geometry.
func BuildFaces(triVertexCount, quadVertexCount uint32) []Face {
	tris := int(triVertexCount / 3)
	quads := int(quadVertexCount / 4)
	faces := make([]Face, 0, tris+quads)

	// All faces slice into one backing array.
	indices := make([]int32, 0, tris*3+quads*4)

	for f := 0; f < tris; f++ {
		i := int32(f * 3)
		start := len(indices)
		indices = append(indices, i, i+1, i+2)
		faces = append(faces, Face(indices[start:len(indices):len(indices)]))
	}

	base := int32(triVertexCount)
	for f := 0; f < quads; f++ {
		i := base + int32(f*4)
		start := len(indices)
		indices = append(indices, i, i+2, i+3, i+1)
		faces = append(faces, Face(indices[start:len(indices):len(indices)]))
	}

	return faces
}
