package wot

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Binary layout, all integers little-endian:
//   4 bytes: node count
//   N * 12 bytes: node records (4-byte id, 8-byte label)
//   4 bytes: edge count
//   E * 13 bytes: edge records (4-byte id, 4-byte source, 4-byte target,
//                 1-byte relation discriminant: 0 follow, 1 mute)
const (
	nodeRecordSize = 12
	edgeRecordSize = 13
)

// Export writes the graph as a self-describing byte stream. Re-importing the
// stream reconstructs an observationally identical graph: same ids, labels,
// edges and enumeration order.
func (g *Graph) Export(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, uint32(g.nodeCount)); err != nil {
		return fmt.Errorf("writing node count: %w", err)
	}
	var nrec [nodeRecordSize]byte
	for _, n := range g.nodes {
		if n == nil {
			continue
		}
		binary.LittleEndian.PutUint32(nrec[0:4], uint32(n.ID))
		copy(nrec[4:12], n.Label[:])
		if _, err := bw.Write(nrec[:]); err != nil {
			return fmt.Errorf("writing node %d: %w", n.ID, err)
		}
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(g.edgeCount)); err != nil {
		return fmt.Errorf("writing edge count: %w", err)
	}
	var erec [edgeRecordSize]byte
	for _, e := range g.edges {
		if e == nil {
			continue
		}
		binary.LittleEndian.PutUint32(erec[0:4], uint32(e.ID))
		binary.LittleEndian.PutUint32(erec[4:8], uint32(e.Source))
		binary.LittleEndian.PutUint32(erec[8:12], uint32(e.Target))
		erec[12] = byte(e.Relation)
		if _, err := bw.Write(erec[:]); err != nil {
			return fmt.Errorf("writing edge %d: %w", e.ID, err)
		}
	}

	return bw.Flush()
}

// ExportBytes returns the graph as a freshly allocated byte slice.
func (g *Graph) ExportBytes() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(8 + g.nodeCount*nodeRecordSize + g.edgeCount*edgeRecordSize)
	if err := g.Export(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Import reads a byte stream produced by Export and reconstructs the graph.
// Record ids are restored verbatim, and the id allocators are advanced past
// the highest ids seen so later insertions never collide. Malformed input is
// rejected wholesale: nothing is returned on error.
func Import(r io.Reader) (*Graph, error) {
	br := bufio.NewReader(r)

	nodeCount, err := readCount(br)
	if err != nil {
		return nil, fmt.Errorf("reading node count: %w", err)
	}
	g := NewWithCapacity(clampPrealloc(nodeCount), 0)

	var nrec [nodeRecordSize]byte
	for i := uint32(0); i < nodeCount; i++ {
		if err := readRecord(br, nrec[:]); err != nil {
			return nil, fmt.Errorf("reading node record %d: %w", i, err)
		}
		var n Node
		n.ID = NodeID(binary.LittleEndian.Uint32(nrec[0:4]))
		copy(n.Label[:], nrec[4:12])
		g.putNode(n)
	}

	edgeCount, err := readCount(br)
	if err != nil {
		return nil, fmt.Errorf("reading edge count: %w", err)
	}

	var erec [edgeRecordSize]byte
	for i := uint32(0); i < edgeCount; i++ {
		if err := readRecord(br, erec[:]); err != nil {
			return nil, fmt.Errorf("reading edge record %d: %w", i, err)
		}
		e := Edge{
			ID:     EdgeID(binary.LittleEndian.Uint32(erec[0:4])),
			Source: NodeID(binary.LittleEndian.Uint32(erec[4:8])),
			Target: NodeID(binary.LittleEndian.Uint32(erec[8:12])),
		}
		switch erec[12] {
		case byte(Follow), byte(Mute):
			e.Relation = Relation(erec[12])
		default:
			return nil, fmt.Errorf("edge %d has discriminant %d: %w", e.ID, erec[12], ErrInvalidRelation)
		}
		if !g.hasNode(e.Source) {
			return nil, fmt.Errorf("edge %d source %d: %w", e.ID, e.Source, ErrInvalidEdgeRef)
		}
		if !g.hasNode(e.Target) {
			return nil, fmt.Errorf("edge %d target %d: %w", e.ID, e.Target, ErrInvalidEdgeRef)
		}
		g.putEdge(e)
	}

	return g, nil
}

// ImportBytes reconstructs a graph from an in-memory byte slice.
func ImportBytes(data []byte) (*Graph, error) {
	return Import(bytes.NewReader(data))
}

func readCount(r io.Reader) (uint32, error) {
	var buf [4]byte
	if err := readRecord(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// readRecord fills buf, mapping end-of-stream onto ErrTruncated. Other read
// failures (I/O, decompression) pass through untouched.
func readRecord(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncated
		}
		return err
	}
	return nil
}

// clampPrealloc bounds the capacity taken from an untrusted header so a
// corrupt count cannot force a huge allocation up front.
func clampPrealloc(count uint32) int {
	const max = 1 << 20
	if count > max {
		return max
	}
	return int(count)
}
