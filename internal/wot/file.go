package wot

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

// gzipLevel matches the moderate compression the exported graphs have always
// used; graphs are mostly incompressible hashes, so higher levels buy little.
const gzipLevel = 4

// ExportGzip writes the graph gzip-compressed. The payload is exactly what
// Export produces.
func (g *Graph) ExportGzip(w io.Writer) error {
	zw, err := gzip.NewWriterLevel(w, gzipLevel)
	if err != nil {
		return fmt.Errorf("compressing graph: %w", err)
	}
	if err := g.Export(zw); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compressing graph: %w", err)
	}
	return nil
}

// ExportGzipBytes returns the gzip-compressed graph as a byte slice.
func (g *Graph) ExportGzipBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := g.ExportGzip(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ImportGzip reconstructs a graph from a gzip-compressed stream produced by
// ExportGzip. A corrupt compressed stream surfaces as a gzip error, distinct
// from the codec's own decode errors.
func ImportGzip(r io.Reader) (*Graph, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decompressing graph: %w", err)
	}
	defer zr.Close()
	return Import(zr)
}

// ImportGzipBytes reconstructs a graph from gzip-compressed bytes.
func ImportGzipBytes(data []byte) (*Graph, error) {
	return ImportGzip(bytes.NewReader(data))
}

// ExportToFile writes the uncompressed graph to path.
func (g *Graph) ExportToFile(path string) error {
	return writeFile(path, g.Export)
}

// ExportToFileGzip writes the gzip-compressed graph to path.
func (g *Graph) ExportToFileGzip(path string) error {
	return writeFile(path, g.ExportGzip)
}

// ImportFromFile reads an uncompressed graph from path.
func ImportFromFile(path string) (*Graph, error) {
	return readFile(path, Import)
}

// ImportFromFileGzip reads a gzip-compressed graph from path.
func ImportFromFileGzip(path string) (*Graph, error) {
	return readFile(path, ImportGzip)
}

func writeFile(path string, export func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := export(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func readFile(path string, imp func(io.Reader) (*Graph, error)) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return imp(bufio.NewReader(f))
}
