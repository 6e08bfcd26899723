package wot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"path/filepath"
	"testing"
)

// sampleGraph builds a small graph exercising both relations and duplicate
// edges between the same pair.
func sampleGraph(t *testing.T) *Graph {
	t.Helper()
	return buildGraph(t, 4, []testEdge{
		{0, 1, Follow},
		{1, 2, Follow},
		{2, 3, Mute},
		{0, 1, Mute},
	})
}

// assertSameGraph checks observational identity: ids, labels, edges and
// enumeration order.
func assertSameGraph(t *testing.T, want, got *Graph) {
	t.Helper()
	if got.NodeCount() != want.NodeCount() {
		t.Fatalf("got %d nodes, want %d", got.NodeCount(), want.NodeCount())
	}
	if got.EdgeCount() != want.EdgeCount() {
		t.Fatalf("got %d edges, want %d", got.EdgeCount(), want.EdgeCount())
	}
	for i := 0; i < want.NodeCount(); i++ {
		w, _ := want.Node(NodeID(i))
		g, ok := got.Node(NodeID(i))
		if !ok || g != w {
			t.Errorf("node %d: got %+v (found=%v), want %+v", i, g, ok, w)
		}
	}
	for i := 0; i < want.EdgeCount(); i++ {
		w, _ := want.Edge(EdgeID(i))
		g, ok := got.Edge(EdgeID(i))
		if !ok || g != w {
			t.Errorf("edge %d: got %+v (found=%v), want %+v", i, g, ok, w)
		}
	}
	for i := 0; i < want.NodeCount(); i++ {
		w := want.Outgoing(NodeID(i))
		g := got.Outgoing(NodeID(i))
		if len(w) != len(g) {
			t.Errorf("node %d: got %d outgoing edges, want %d", i, len(g), len(w))
			continue
		}
		for j := range w {
			if w[j] != g[j] {
				t.Errorf("node %d outgoing %d: got %+v, want %+v", i, j, g[j], w[j])
			}
		}
	}
}

func TestRoundTrip_Empty(t *testing.T) {
	data, err := New().ExportBytes()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(data) != 8 {
		t.Errorf("empty graph should export 8 header bytes, got %d", len(data))
	}
	g, err := ImportBytes(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("got %d nodes, %d edges, want empty", g.NodeCount(), g.EdgeCount())
	}
}

func TestRoundTrip(t *testing.T) {
	want := sampleGraph(t)
	data, err := want.ExportBytes()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	got, err := ImportBytes(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	assertSameGraph(t, want, got)
}

func TestRoundTrip_Gzip(t *testing.T) {
	want := sampleGraph(t)
	data, err := want.ExportGzipBytes()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	got, err := ImportGzipBytes(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	assertSameGraph(t, want, got)

	raw, err := want.ExportBytes()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if bytes.Equal(data, raw) {
		t.Error("gzip export should differ from raw export")
	}
}

func TestRoundTrip_Files(t *testing.T) {
	want := sampleGraph(t)
	dir := t.TempDir()

	plain := filepath.Join(dir, "wot.graph")
	if err := want.ExportToFile(plain); err != nil {
		t.Fatalf("export: %v", err)
	}
	got, err := ImportFromFile(plain)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	assertSameGraph(t, want, got)

	zipped := filepath.Join(dir, "wot.graph.gz")
	if err := want.ExportToFileGzip(zipped); err != nil {
		t.Fatalf("export gzip: %v", err)
	}
	got, err = ImportFromFileGzip(zipped)
	if err != nil {
		t.Fatalf("import gzip: %v", err)
	}
	assertSameGraph(t, want, got)
}

func TestImportFromFile_Missing(t *testing.T) {
	if _, err := ImportFromFile(filepath.Join(t.TempDir(), "nope.graph")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImport_Truncated(t *testing.T) {
	data, err := sampleGraph(t).ExportBytes()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	cuts := []struct {
		name string
		n    int
	}{
		{"empty input", 0},
		{"inside header", 3},
		{"inside node record", 4 + 5},
		{"inside edge record", len(data) - 5},
	}
	for _, tc := range cuts {
		if _, err := ImportBytes(data[:tc.n]); !errors.Is(err, ErrTruncated) {
			t.Errorf("%s: got %v, want ErrTruncated", tc.name, err)
		}
	}
}

func TestImport_InvalidRelation(t *testing.T) {
	data, err := sampleGraph(t).ExportBytes()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	// The relation discriminant is the final byte of the last edge record
	data[len(data)-1] = 2

	if _, err := ImportBytes(data); !errors.Is(err, ErrInvalidRelation) {
		t.Errorf("got %v, want ErrInvalidRelation", err)
	}
}

func TestImport_InvalidEdgeRef(t *testing.T) {
	// One node (id 0), one edge pointing at the nonexistent node 5
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(1))
	binary.Write(&buf, binary.LittleEndian, uint32(0)) // node id
	buf.Write(make([]byte, 8))                         // label
	binary.Write(&buf, binary.LittleEndian, uint32(1))
	binary.Write(&buf, binary.LittleEndian, uint32(0)) // edge id
	binary.Write(&buf, binary.LittleEndian, uint32(0)) // source
	binary.Write(&buf, binary.LittleEndian, uint32(5)) // target
	buf.WriteByte(byte(Follow))

	if _, err := ImportBytes(buf.Bytes()); !errors.Is(err, ErrInvalidEdgeRef) {
		t.Errorf("got %v, want ErrInvalidEdgeRef", err)
	}
}

func TestImportGzip_Corrupt(t *testing.T) {
	junk := bytes.Repeat([]byte{7}, 60)
	_, err := ImportGzipBytes(junk)
	if err == nil {
		t.Fatal("expected error for corrupt gzip stream")
	}
	// Decompression failure is distinct from codec decode failures
	if errors.Is(err, ErrTruncated) || errors.Is(err, ErrInvalidRelation) || errors.Is(err, ErrInvalidEdgeRef) {
		t.Errorf("gzip corruption should not map to a codec error, got %v", err)
	}
}

func TestImport_AllocatorAdvance(t *testing.T) {
	data, err := sampleGraph(t).ExportBytes()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	g, err := ImportBytes(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if id := g.AddNode(lbl(9)); id != 4 {
		t.Errorf("node allocator: got id %d, want 4", id)
	}
	id, err := g.AddEdge(0, 3, Follow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 4 {
		t.Errorf("edge allocator: got id %d, want 4", id)
	}
}
