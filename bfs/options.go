package bfs

import (
	"context"
	"fmt"
)

// Option tunes a Search or BFS call. A bad value (negative depth) is held
// back and reported as ErrOptionViolation once the call starts.
type Option func(*BFSOptions)

// BFSOptions is the resolved configuration of one Search or BFS call.
type BFSOptions struct {
	// Ctx is polled once per dequeue.
	Ctx context.Context

	// OnEnqueue fires when a state joins the frontier, with its hop depth.
	OnEnqueue func(id string, depth int)

	// OnDequeue fires when a state leaves the frontier.
	OnDequeue func(id string, depth int)

	// OnVisit fires when a state is expanded. A non-nil error stops the
	// run and is returned wrapped.
	OnVisit func(id string, depth int) error

	// MaxDepth bounds the hop depth of generated states; 0 means unbounded.
	MaxDepth int

	// FilterNeighbor drops the edge curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions: background context, no depth bound, every edge allowed,
// hooks that do nothing.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

func buildOptions(opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithContext makes the run stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue installs the enqueue hook.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue installs the dequeue hook.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit installs the visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth keeps every generated state within d hops of the start
// (inclusive). d == 0 lifts the bound; d < 0 is rejected.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth %d is negative", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor restricts which edges the run may follow.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
