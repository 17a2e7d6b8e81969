// PLY (Polygon File Format) binary little-endian encoder.
package formats

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultPLYComment is written to the header when no comment is given.
const DefaultPLYComment = "mdl to ply converter"

// PLY vertex record: x, y, z, s, t as float32 and four color bytes.
const plyVertexSize = 5*4 + 4

// PLYHeader returns the ASCII header for a mesh with the given counts.
// Newlines in comment are replaced so the header stays well formed.
func PLYHeader(vertexCount, faceCount int, comment string) string {
	if comment == "" {
		comment = DefaultPLYComment
	}
	comment = strings.NewReplacer("\r", " ", "\n", " ").Replace(comment)

	var sb strings.Builder
	sb.WriteString("ply\n")
	sb.WriteString("format binary_little_endian 1.0\n")
	sb.WriteString("comment " + comment + "\n")
	sb.WriteString("element vertex " + strconv.Itoa(vertexCount) + "\n")
	sb.WriteString("property float x\n")
	sb.WriteString("property float y\n")
	sb.WriteString("property float z\n")
	sb.WriteString("property float s\n")
	sb.WriteString("property float t\n")
	sb.WriteString("property uchar red\n")
	sb.WriteString("property uchar green\n")
	sb.WriteString("property uchar blue\n")
	sb.WriteString("property uchar alpha\n")
	sb.WriteString("element face " + strconv.Itoa(faceCount) + "\n")
	sb.WriteString("property list uchar int vertex_index\n")
	sb.WriteString("end_header\n")
	return sb.String()
}

// EncodePLY serializes a mesh as a binary little-endian PLY file.
func EncodePLY(m *Mesh, comment string) ([]byte, error) {
	if len(m.Texels) != len(m.Positions) {
		return nil, fmt.Errorf("mesh has %d positions but %d texels", len(m.Positions), len(m.Texels))
	}

	header := PLYHeader(len(m.Positions), len(m.Faces), comment)

	size := len(header) + len(m.Positions)*plyVertexSize
	for _, f := range m.Faces {
		size += 1 + 4*len(f)
	}

	w := NewWriter(size)
	w.WriteString(header)

	for i, p := range m.Positions {
		tc := m.Texels[i]
		w.WriteF32(p[0])
		w.WriteF32(p[1])
		w.WriteF32(p[2])
		w.WriteF32(tc.S)
		w.WriteF32(tc.T)
		r, g, b, a := tc.RGBA()
		w.WriteU8(r)
		w.WriteU8(g)
		w.WriteU8(b)
		w.WriteU8(a)
	}

	for i, f := range m.Faces {
		if len(f) > 255 {
			return nil, fmt.Errorf("face %d has %d indices", i, len(f))
		}
		w.WriteU8(uint8(len(f)))
		for _, idx := range f {
			w.WriteI32(idx)
		}
	}

	return w.Bytes(), nil
}

// WritePLY encodes m and writes it to w.
func WritePLY(w io.Writer, m *Mesh, comment string) error {
	data, err := EncodePLY(m, comment)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
