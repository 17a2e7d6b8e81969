// Package convert turns MDL files into PLY files.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/SymphoniaLauren/MDL-Ply-Converter/internal/logger"
	"github.com/SymphoniaLauren/MDL-Ply-Converter/pkg/formats"
)

// ErrIOFailure wraps open, read, write and rename errors from the filesystem.
var ErrIOFailure = errors.New("I/O failure")

// OutputSpec describes where converted meshes go.
type OutputSpec struct {
	// Path is the exact output path for single files and the template for
	// packed files; packed outputs get the model index inserted before the
	// extension (see PackedOutputPath).
	Path string

	Comment string // PLY header comment; empty uses formats.DefaultPLYComment
	Workers int    // Parallel packed writes; 0 uses GOMAXPROCS
}

// WrittenFile describes one PLY file produced by a conversion.
type WrittenFile struct {
	Path     string
	Model    int
	Vertices int
	Faces    int
	Bytes    int
}

// ConvertFile reads an MDL file from disk and converts it.
func ConvertFile(ctx context.Context, inputPath string, out OutputSpec) ([]WrittenFile, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrIOFailure, inputPath, err)
	}
	return Convert(ctx, data, out)
}

// Convert detects the MDL variant of data, decodes it and writes one PLY
// file per mesh. The first failing write cancels the writes not yet started.
func Convert(ctx context.Context, data []byte, out OutputSpec) ([]WrittenFile, error) {
	if out.Path == "" {
		return nil, errors.New("output path is required")
	}

	log := logger.Run()
	start := time.Now()

	mdl, err := decode(log, data)
	if err != nil {
		log.Error("Conversion failed", zap.Error(err))
		return nil, err
	}

	if mdl.Models() == 0 {
		log.Warn("Packed file holds no models, nothing written")
		return []WrittenFile{}, nil
	}

	written, err := writeAll(ctx, log, mdl, out)
	if err != nil {
		log.Error("Conversion failed", zap.Error(err))
		return nil, err
	}

	log.Info("Models exported successfully",
		zap.Int("files", len(written)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return written, nil
}

// decode runs detection and the matching decoder, logging header details.
func decode(log *zap.Logger, data []byte) (*formats.MDL, error) {
	kind, header, err := formats.DetectMDL(data, int64(len(data)))
	if err != nil {
		return nil, err
	}

	log.Debug("Detected MDL", zap.Stringer("kind", kind), zap.Int("bytes", len(data)))

	var mdl *formats.MDL
	switch kind {
	case formats.MDLSingle:
		mdl, err = formats.ParseSingleMDL(data)
	case formats.MDLPacked:
		expected, _ := header.PackedSize()
		log.Debug("Packed size check",
			zap.Uint64("expected", expected),
			zap.Int("actual", len(data)),
		)
		mdl, err = formats.ParsePackedMDL(data)
	}
	if err != nil {
		return nil, err
	}

	h := mdl.Header
	log.Info("Decoded MDL",
		zap.Stringer("kind", mdl.Kind),
		zap.Uint32("models", h.ModelCount),
		zap.Uint32("tri_vertices", h.TriVertexCount),
		zap.Uint32("quad_vertices", h.QuadVertexCount),
		zap.Uint64("triangles", h.TriFaceCount()),
		zap.Uint64("quads", h.QuadFaceCount()),
		zap.Uint64("vertices", h.VertexCount()),
		zap.Uint64("faces", h.FaceCount()),
	)
	if !h.Aligned() {
		log.Warn("Vertex counts are not whole faces, trailing vertices ignored",
			zap.Uint32("tri_remainder", h.TriVertexCount%3),
			zap.Uint32("quad_remainder", h.QuadVertexCount%4),
		)
	}

	return mdl, nil
}

type writeJob struct {
	model int
	path  string
	mesh  *formats.Mesh
}

func newWriteJob(mdl *formats.MDL, model int, out OutputSpec) writeJob {
	path := out.Path
	if mdl.Kind == formats.MDLPacked {
		path = PackedOutputPath(out.Path, model)
	}
	return writeJob{model: model, path: path, mesh: mdl.Model(model)}
}

// writeAll writes every model of mdl, in parallel up to out.Workers.
// Jobs are built as workers free up, and results are returned in model order.
func writeAll(ctx context.Context, log *zap.Logger, mdl *formats.MDL, out OutputSpec) ([]WrittenFile, error) {
	workers := out.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		mu      sync.Mutex
		results []WrittenFile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < mdl.Models(); i++ {
		if gctx.Err() != nil {
			break
		}
		job := newWriteJob(mdl, i, out)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			data, err := formats.EncodePLY(job.mesh, out.Comment)
			if err != nil {
				return fmt.Errorf("encoding model %d: %w", job.model, err)
			}
			if err := writeFileAtomic(job.path, data); err != nil {
				return err
			}

			mu.Lock()
			results = append(results, WrittenFile{
				Path:     job.path,
				Model:    job.model,
				Vertices: job.mesh.VertexCount(),
				Faces:    job.mesh.FaceCount(),
				Bytes:    len(data),
			})
			mu.Unlock()
			log.Info("Model exported",
				zap.Int("model", job.model),
				zap.String("path", job.path),
				zap.Int("bytes", len(data)),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(a, b int) bool { return results[a].Model < results[b].Model })
	return results, nil
}
