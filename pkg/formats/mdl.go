// Package formats provides parsers for MDL model files and a PLY encoder.
// MDL header, detection and shared mesh types.
package formats

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/chewxy/math32"
)

// MDL format errors.
var (
	ErrUnrecognizedFormat = errors.New("unrecognized MDL format: no 'MDL@' magic and size does not match a packed header")
	ErrInvalidMDLMagic    = errors.New("invalid MDL magic: expected 'MDL@'")
	ErrSizeMismatch       = errors.New("packed MDL size mismatch")
	ErrTruncatedMDLData   = errors.New("truncated MDL data")
)

// Layout constants.
const (
	MDLMagic = "MDL@"

	MDLHeaderSize       = 12
	SingleVertexSize    = 24 // x, y, z, s, t as float32 + RGBA bytes
	PackedTexelSize     = 12 // u, v as float32 + packed color
	PackedPositionSize  = 6  // x, y, z as int16
	PackedPositionScale = float32(0.01)
)

// MDLKind identifies the on-disk MDL variant.
type MDLKind int

const (
	MDLUnknown MDLKind = iota
	MDLSingle          // one mesh with magic and float positions
	MDLPacked          // N meshes sharing UV/color, int16 positions, no magic
)

// String returns a human-readable kind name.
func (k MDLKind) String() string {
	switch k {
	case MDLSingle:
		return "Single"
	case MDLPacked:
		return "Packed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// SizeMismatchError reports a packed file whose length disagrees with its header.
// Overflow is set when the header predicts more than 2^64-1 bytes; Expected
// is then meaningless.
type SizeMismatchError struct {
	Expected uint64
	Actual   uint64
	Overflow bool
}

func (e *SizeMismatchError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("%v: header predicts more than %d bytes, got %d", ErrSizeMismatch, uint64(1<<64-1), e.Actual)
	}
	return fmt.Sprintf("%v: expected %d bytes, got %d", ErrSizeMismatch, e.Expected, e.Actual)
}

// Is lets errors.Is match ErrSizeMismatch.
func (e *SizeMismatchError) Is(target error) bool {
	return target == ErrSizeMismatch
}

// MDLHeader holds the vertex counts shared by both variants.
// ModelCount is always 1 for single files.
type MDLHeader struct {
	ModelCount      uint32
	TriVertexCount  uint32
	QuadVertexCount uint32
}

// VertexCount returns the total number of vertices per model.
func (h MDLHeader) VertexCount() uint64 {
	return uint64(h.TriVertexCount) + uint64(h.QuadVertexCount)
}

// TriFaceCount returns the number of triangles.
func (h MDLHeader) TriFaceCount() uint64 {
	return uint64(h.TriVertexCount / 3)
}

// QuadFaceCount returns the number of quads.
func (h MDLHeader) QuadFaceCount() uint64 {
	return uint64(h.QuadVertexCount / 4)
}

// FaceCount returns the total number of faces.
func (h MDLHeader) FaceCount() uint64 {
	return h.TriFaceCount() + h.QuadFaceCount()
}

// Aligned reports whether the vertex counts are whole multiples of the face degrees.
func (h MDLHeader) Aligned() bool {
	return h.TriVertexCount%3 == 0 && h.QuadVertexCount%4 == 0
}

// PackedSize returns the exact byte length a packed file with this header
// must have. ok is false when the size does not fit in a uint64.
func (h MDLHeader) PackedSize() (size uint64, ok bool) {
	vc := h.VertexCount() // at most 2^33, so the texel block cannot overflow
	texels := vc * PackedTexelSize

	hi, block := bits.Mul64(vc, PackedPositionSize)
	if hi != 0 {
		return 0, false
	}
	hi, positions := bits.Mul64(block, uint64(h.ModelCount))
	if hi != 0 {
		return 0, false
	}

	size, carry := bits.Add64(MDLHeaderSize+texels, positions, 0)
	if carry != 0 {
		return 0, false
	}
	return size, true
}

// SingleSize returns the minimum byte length of a single file with this header.
func (h MDLHeader) SingleSize() uint64 {
	return MDLHeaderSize + h.VertexCount()*SingleVertexSize
}

// TexelColor is the per-vertex texture coordinate and packed RGBA.
// Color keeps the source bytes in little-endian order: R is the low byte.
type TexelColor struct {
	S, T  float32
	Color uint32
}

// RGBA splits Color into its channels in source order.
func (tc TexelColor) RGBA() (r, g, b, a uint8) {
	return uint8(tc.Color), uint8(tc.Color >> 8), uint8(tc.Color >> 16), uint8(tc.Color >> 24)
}

// PackRGBA builds a packed color from channel bytes.
func PackRGBA(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// Face is an ordered list of vertex indices, degree 3 or 4.
type Face []int32

// Mesh is one decoded model. Packed meshes from the same file share
// Texels and Faces; only Positions differ.
type Mesh struct {
	Positions [][3]float32
	Texels    []TexelColor
	Faces     []Face
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Bounds returns the axis-aligned bounding box of the mesh positions.
// An empty mesh returns zero vectors.
func (m *Mesh) Bounds() (min, max [3]float32) {
	if len(m.Positions) == 0 {
		return min, max
	}
	min = [3]float32{math32.Inf(1), math32.Inf(1), math32.Inf(1)}
	max = [3]float32{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)}
	for _, p := range m.Positions {
		for i := 0; i < 3; i++ {
			min[i] = math32.Min(min[i], p[i])
			max[i] = math32.Max(max[i], p[i])
		}
	}
	return min, max
}

// MDL is a decoded MDL file of either variant.
//
// Meshes holds one mesh per model, except for packed files without
// vertices: every model is then the same empty mesh and Meshes holds it
// once. Use Models and Model to walk all models.
type MDL struct {
	Kind   MDLKind
	Header MDLHeader
	Meshes []*Mesh
}

// Models returns the number of models in the file.
func (m *MDL) Models() int {
	if m.Kind == MDLSingle {
		return len(m.Meshes)
	}
	return int(m.Header.ModelCount)
}

// Model returns the mesh of model i.
func (m *MDL) Model(i int) *Mesh {
	if i < len(m.Meshes) {
		return m.Meshes[i]
	}
	return m.Meshes[0]
}

// DetectMDL classifies data as a single or packed MDL file.
// size is the input file size in bytes.
//
// Packed files carry no magic; they are recognised only by the header
// predicting the file size exactly.
func DetectMDL(data []byte, size int64) (MDLKind, MDLHeader, error) {
	if len(data) >= 4 && string(data[0:4]) == MDLMagic {
		h, err := readHeader(data)
		if err != nil {
			return MDLUnknown, MDLHeader{}, err
		}
		h.ModelCount = 1
		return MDLSingle, h, nil
	}

	h, err := readHeader(data)
	if err != nil || size < 0 {
		return MDLUnknown, MDLHeader{}, ErrUnrecognizedFormat
	}
	if expected, ok := h.PackedSize(); !ok || expected != uint64(size) {
		return MDLUnknown, MDLHeader{}, ErrUnrecognizedFormat
	}
	return MDLPacked, h, nil
}

// readHeader reads the three leading u32 fields. For single files the
// first field is the magic and is returned as ModelCount.
func readHeader(data []byte) (MDLHeader, error) {
	c := NewCursor(data)
	var h MDLHeader
	var err error
	if h.ModelCount, err = c.ReadU32(); err != nil {
		return MDLHeader{}, fmt.Errorf("%w: reading header", ErrTruncatedMDLData)
	}
	if h.TriVertexCount, err = c.ReadU32(); err != nil {
		return MDLHeader{}, fmt.Errorf("%w: reading tri vertex count", ErrTruncatedMDLData)
	}
	if h.QuadVertexCount, err = c.ReadU32(); err != nil {
		return MDLHeader{}, fmt.Errorf("%w: reading quad vertex count", ErrTruncatedMDLData)
	}
	return h, nil
}

// ParseMDL detects the variant of data and decodes it.
func ParseMDL(data []byte) (*MDL, error) {
	kind, _, err := DetectMDL(data, int64(len(data)))
	if err != nil {
		return nil, err
	}
	switch kind {
	case MDLSingle:
		return ParseSingleMDL(data)
	default:
		return ParsePackedMDL(data)
	}
}
