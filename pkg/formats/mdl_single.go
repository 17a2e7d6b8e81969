package formats

import (
	"fmt"
	"os"
)

// ParseSingleMDL decodes a single-model MDL file.
//
// Records are read at absolute offsets so trailing bytes after the last
// vertex are ignored. Y and T are flipped to a bottom-left origin.
func ParseSingleMDL(data []byte) (*MDL, error) {
	if len(data) < 4 || string(data[0:4]) != MDLMagic {
		return nil, ErrInvalidMDLMagic
	}

	header, err := readHeader(data)
	if err != nil {
		return nil, err
	}
	header.ModelCount = 1

	need := header.SingleSize()
	if uint64(len(data)) < need {
		return nil, fmt.Errorf("%w: need %d bytes for %d vertices, have %d",
			ErrTruncatedMDLData, need, header.VertexCount(), len(data))
	}

	count := int(header.VertexCount())
	mesh := &Mesh{
		Positions: make([][3]float32, count),
		Texels:    make([]TexelColor, count),
		Faces:     BuildFaces(header.TriVertexCount, header.QuadVertexCount),
	}

	c := NewCursor(data)
	for i := 0; i < count; i++ {
		c.Seek(MDLHeaderSize + SingleVertexSize*i)
		if err := readSingleVertex(c, &mesh.Positions[i], &mesh.Texels[i]); err != nil {
			return nil, fmt.Errorf("parsing vertex %d: %w", i, err)
		}
	}

	return &MDL{
		Kind:   MDLSingle,
		Header: header,
		Meshes: []*Mesh{mesh},
	}, nil
}

func readSingleVertex(c *Cursor, pos *[3]float32, tc *TexelColor) error {
	var raw [5]float32
	for i := range raw {
		v, err := c.ReadF32()
		if err != nil {
			return err
		}
		raw[i] = v
	}

	var rgba [4]uint8
	for i := range rgba {
		v, err := c.ReadU8()
		if err != nil {
			return err
		}
		rgba[i] = v
	}

	pos[0] = raw[0]
	pos[1] = 1.0 - raw[1]
	pos[2] = raw[2]
	tc.S = raw[3]
	tc.T = 1.0 - raw[4]
	tc.Color = PackRGBA(rgba[0], rgba[1], rgba[2], rgba[3])
	return nil
}

// ParseSingleMDLFile parses a single-model MDL file from disk.
func ParseSingleMDLFile(path string) (*MDL, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading MDL file: %w", err)
	}
	return ParseSingleMDL(data)
}
