package convert

import (
	"fmt"
	"os"

	"github.com/SymphoniaLauren/MDL-Ply-Converter/pkg/formats"
)

// MeshInfo summarizes one decoded mesh.
type MeshInfo struct {
	Vertices int
	Faces    int
	Min, Max [3]float32
}

// Report summarizes an MDL file without writing anything.
type Report struct {
	Kind         formats.MDLKind
	Header       formats.MDLHeader
	ActualSize   int
	ExpectedSize uint64 // single: minimum size; packed: exact size
	Meshes       []MeshInfo
}

// InspectFile reads and decodes an MDL file from disk.
func InspectFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrIOFailure, path, err)
	}
	return Inspect(data)
}

// Inspect decodes data and reports header counts and per-mesh bounds.
// Models sharing one empty mesh are reported once.
func Inspect(data []byte) (*Report, error) {
	mdl, err := formats.ParseMDL(data)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Kind:       mdl.Kind,
		Header:     mdl.Header,
		ActualSize: len(data),
		Meshes:     make([]MeshInfo, len(mdl.Meshes)),
	}
	if mdl.Kind == formats.MDLPacked {
		report.ExpectedSize, _ = mdl.Header.PackedSize()
	} else {
		report.ExpectedSize = mdl.Header.SingleSize()
	}

	for i, mesh := range mdl.Meshes {
		min, max := mesh.Bounds()
		report.Meshes[i] = MeshInfo{
			Vertices: mesh.VertexCount(),
			Faces:    mesh.FaceCount(),
			Min:      min,
			Max:      max,
		}
	}

	return report, nil
}
