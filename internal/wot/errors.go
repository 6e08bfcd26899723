package wot

import "errors"

var (
	// ErrUnknownNode is returned when an edge references a node id that is
	// not in the graph.
	ErrUnknownNode = errors.New("unknown node id")

	// ErrTruncated is returned when an imported byte stream ends before its
	// declared records do.
	ErrTruncated = errors.New("truncated graph data")

	// ErrInvalidRelation is returned when an edge record carries a relation
	// discriminant other than 0 (follow) or 1 (mute).
	ErrInvalidRelation = errors.New("invalid relation discriminant")

	// ErrInvalidEdgeRef is returned when an imported edge references a node
	// id absent from the imported node set.
	ErrInvalidEdgeRef = errors.New("edge references missing node")
)
