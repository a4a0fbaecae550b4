// Package flow: shared types, sentinel errors, and solver options.
package flow

import "errors"

// Sentinel errors for graph construction and solving.
var (
	// ErrSelfLoop is returned by AddEdge when source and sink coincide.
	ErrSelfLoop = errors.New("flow: edge source and sink must differ")

	// ErrNegativeCapacity is returned by AddEdge for a capacity below zero.
	ErrNegativeCapacity = errors.New("flow: edge capacity must be non-negative")

	// ErrEdgeNotFound is returned when an EdgeID was not issued by this graph.
	ErrEdgeNotFound = errors.New("flow: edge not found")

	// ErrGraphNil is returned if a nil graph pointer is passed to MaxFlow.
	ErrGraphNil = errors.New("flow: graph is nil")
)

// EdgeID identifies one directed edge within the Graph that issued it.
// IDs are dense and stable: the k-th AddEdge call issues 2k for the forward
// edge and 2k+1 for its reverse residual edge.
type EdgeID int

// Residual returns the ID of this edge's residual counterpart.
// Forward and reverse edges of a pair are each other's residual.
func (id EdgeID) Residual() EdgeID { return id ^ 1 }

// Edge is a read-only snapshot of one directed edge at the moment of lookup.
//
// Forward edges carry the capacity given to AddEdge; reverse residual edges
// carry capacity 0. Flow on a reverse edge is the negation of the flow on its
// forward counterpart, so ResidualCapacity on a reverse edge equals the flow
// already pushed forward — the amount that future augmentations may undo.
type Edge[N comparable] struct {
	// ID identifies the edge within its Graph.
	ID EdgeID

	// From is the node this edge leaves.
	From N

	// To is the node this edge enters.
	To N

	// Capacity is the maximum flow this edge admits.
	Capacity int64

	// Flow is the amount currently routed through this edge.
	Flow int64
}

// ResidualCapacity reports how much additional flow this edge admits.
func (e Edge[N]) ResidualCapacity() int64 { return e.Capacity - e.Flow }

// Option configures MaxFlow via functional arguments.
type Option[N comparable] func(*Options[N])

// Options holds solver callbacks. The zero value is not ready for use;
// obtain a populated value via DefaultOptions.
type Options[N comparable] struct {
	// OnAugment is called once per augmentation, after the push, with the
	// augmenting path (source→sink order, post-push snapshots) and the
	// bottleneck amount that was moved. It runs synchronously on the
	// solving goroutine.
	OnAugment func(path []Edge[N], bottleneck int64)
}

// DefaultOptions returns Options with no-op callbacks.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		OnAugment: func([]Edge[N], int64) {},
	}
}

// WithOnAugment registers a callback observing every augmentation.
// A nil fn is ignored.
func WithOnAugment[N comparable](fn func(path []Edge[N], bottleneck int64)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}
