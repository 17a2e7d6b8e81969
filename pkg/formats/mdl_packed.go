package formats

import (
	"fmt"
	"os"
)

// ParsePackedMDL decodes a packed MDL file holding ModelCount meshes.
//
// The file length must equal the size predicted by the header; nothing is
// decoded otherwise. All meshes share one texel array and one face list.
func ParsePackedMDL(data []byte) (*MDL, error) {
	header, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	expected, ok := header.PackedSize()
	if !ok {
		return nil, &SizeMismatchError{Actual: uint64(len(data)), Overflow: true}
	}
	if expected != uint64(len(data)) {
		return nil, &SizeMismatchError{Expected: expected, Actual: uint64(len(data))}
	}

	count := int(header.VertexCount())
	models := int(header.ModelCount)
	c := NewCursor(data)

	texels := make([]TexelColor, count)
	for i := 0; i < count; i++ {
		c.Seek(MDLHeaderSize + PackedTexelSize*i)
		if err := readPackedTexel(c, &texels[i]); err != nil {
			return nil, fmt.Errorf("parsing texel %d: %w", i, err)
		}
	}

	faces := BuildFaces(header.TriVertexCount, header.QuadVertexCount)

	// Models without vertices are indistinguishable; keep one.
	if count == 0 && models > 0 {
		return &MDL{
			Kind:   MDLPacked,
			Header: header,
			Meshes: []*Mesh{{Positions: [][3]float32{}, Texels: texels, Faces: faces}},
		}, nil
	}

	positionBase := MDLHeaderSize + PackedTexelSize*count

	meshes := make([]*Mesh, models)
	for m := 0; m < models; m++ {
		positions := make([][3]float32, count)
		blockBase := positionBase + PackedPositionSize*count*m
		for i := 0; i < count; i++ {
			c.Seek(blockBase + PackedPositionSize*i)
			if err := readPackedPosition(c, &positions[i]); err != nil {
				return nil, fmt.Errorf("parsing model %d vertex %d: %w", m, i, err)
			}
		}
		meshes[m] = &Mesh{
			Positions: positions,
			Texels:    texels,
			Faces:     faces,
		}
	}

	return &MDL{
		Kind:   MDLPacked,
		Header: header,
		Meshes: meshes,
	}, nil
}

func readPackedTexel(c *Cursor, tc *TexelColor) error {
	u, err := c.ReadF32()
	if err != nil {
		return err
	}
	v, err := c.ReadF32()
	if err != nil {
		return err
	}
	color, err := c.ReadU32()
	if err != nil {
		return err
	}
	tc.S = u
	tc.T = 1.0 - v
	tc.Color = color
	return nil
}

func readPackedPosition(c *Cursor, pos *[3]float32) error {
	var raw [3]int16
	for i := range raw {
		v, err := c.ReadI16()
		if err != nil {
			return err
		}
		raw[i] = v
	}
	pos[0] = float32(raw[0]) * PackedPositionScale
	pos[1] = float32(raw[1]) * PackedPositionScale * -1.0
	pos[2] = float32(raw[2]) * PackedPositionScale
	return nil
}

// ParsePackedMDLFile parses a packed MDL file from disk.
func ParsePackedMDLFile(path string) (*MDL, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading MDL file: %w", err)
	}
	return ParsePackedMDL(data)
}
