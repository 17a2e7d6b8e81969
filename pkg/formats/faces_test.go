package formats

import (
	"reflect"
	"testing"
)

func TestBuildFaces_Counts(t *testing.T) {
	tests := []struct {
		tri, quad uint32
		tris      int
		quads     int
	}{
		{0, 0, 0, 0},
		{3, 0, 1, 0},
		{0, 4, 0, 1},
		{3, 4, 1, 1},
		{12, 8, 4, 2},
		{300, 400, 100, 100},
	}

	for _, tc := range tests {
		faces := BuildFaces(tc.tri, tc.quad)
		if len(faces) != tc.tris+tc.quads {
			t.Errorf("BuildFaces(%d, %d): expected %d faces, got %d", tc.tri, tc.quad, tc.tris+tc.quads, len(faces))
			continue
		}

		vertexCount := int32(tc.tri + tc.quad)
		entries := 0
		for i, f := range faces {
			wantDegree := 3
			if i >= tc.tris {
				wantDegree = 4
			}
			if len(f) != wantDegree {
				t.Errorf("BuildFaces(%d, %d): face %d has degree %d, expected %d", tc.tri, tc.quad, i, len(f), wantDegree)
			}
			for _, idx := range f {
				if idx < 0 || idx >= vertexCount {
					t.Errorf("BuildFaces(%d, %d): face %d index %d out of range", tc.tri, tc.quad, i, idx)
				}
			}
			entries += len(f)
		}
		if entries != 3*tc.tris+4*tc.quads {
			t.Errorf("BuildFaces(%d, %d): expected %d index entries, got %d", tc.tri, tc.quad, 3*tc.tris+4*tc.quads, entries)
		}
	}
}

func TestBuildFaces_Order(t *testing.T) {
	faces := BuildFaces(6, 8)

	expected := []Face{
		{0, 1, 2},
		{3, 4, 5},
		{6, 8, 9, 7},
		{10, 12, 13, 11},
	}

	if !reflect.DeepEqual(faces, expected) {
		t.Errorf("expected %v, got %v", expected, faces)
	}
}

func TestBuildFaces_QuadRewinding(t *testing.T) {
	faces := BuildFaces(0, 4)
	if len(faces) != 1 {
		t.Fatalf("expected 1 face, got %d", len(faces))
	}

	naive := Face{0, 1, 2, 3}
	if reflect.DeepEqual(faces[0], naive) {
		t.Error("quad must not use naive winding")
	}
	if !reflect.DeepEqual(faces[0], Face{0, 2, 3, 1}) {
		t.Errorf("expected (0, 2, 3, 1), got %v", faces[0])
	}
}

func TestBuildFaces_PartialFacesDropped(t *testing.T) {
	// 4 tri vertices hold one triangle plus a stray vertex; quads start after it.
	faces := BuildFaces(4, 6)

	expected := []Face{
		{0, 1, 2},
		{4, 6, 7, 5},
	}
	if !reflect.DeepEqual(faces, expected) {
		t.Errorf("expected %v, got %v", expected, faces)
	}
}

func TestBuildFaces_FacesDoNotAlias(t *testing.T) {
	faces := BuildFaces(6, 0)
	faces[0] = append(faces[0], 99)
	if faces[1][0] != 3 {
		t.Errorf("appending to one face changed the next: %v", faces[1])
	}
}
