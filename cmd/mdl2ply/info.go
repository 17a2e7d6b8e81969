package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/SymphoniaLauren/MDL-Ply-Converter/internal/convert"
	"github.com/SymphoniaLauren/MDL-Ply-Converter/pkg/formats"
)

var infoCmd = &cobra.Command{
	Use:   "info <input>",
	Short: "Show MDL header and mesh statistics without converting",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	report, err := convert.InspectFile(args[0])
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), args[0], report)
	return nil
}

func printReport(w io.Writer, path string, r *convert.Report) {
	h := r.Header

	out.Fprintf(w, "File: %s\n", path)
	out.Fprintf(w, "Format: %s MDL\n", r.Kind)
	if r.Kind == formats.MDLPacked {
		out.Fprintf(w, "Expected file size: %d\n", r.ExpectedSize)
		out.Fprintf(w, "Actual file size:   %d\n", r.ActualSize)
	}
	out.Fprintf(w, "Model count: %d\n", h.ModelCount)
	out.Fprintf(w, "Tri vertices: %d\n", h.TriVertexCount)
	out.Fprintf(w, "Quad vertices: %d\n", h.QuadVertexCount)
	out.Fprintf(w, "Triangle count: %d\n", h.TriFaceCount())
	out.Fprintf(w, "Quad count: %d\n", h.QuadFaceCount())
	out.Fprintf(w, "Total vertices: %d\n", h.VertexCount())
	out.Fprintf(w, "Total faces: %d\n", h.FaceCount())

	for i, m := range r.Meshes {
		out.Fprintf(w, "\nModel %d:\n", i)
		out.Fprintf(w, "  Min: (%.4f, %.4f, %.4f)\n", m.Min[0], m.Min[1], m.Min[2])
		out.Fprintf(w, "  Max: (%.4f, %.4f, %.4f)\n", m.Max[0], m.Max[1], m.Max[2])
	}
}
