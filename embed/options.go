package embed

import "github.com/sirupsen/logrus"

// Options configures a single Embed call. The zero value runs silently
// (nil logger) with no post-embed integrity pass.
type Options struct {
	Logger         *logrus.Logger
	ArcSlack       int
	IntegrityCheck bool
}

// Option mutates Options, matching builder.Option style.
type Option func(*Options)

// WithLogger attaches a *logrus.Logger; the driver emits one Trace entry
// per step-I iteration (fields i, blocked) and one Debug entry per blocked
// iteration (fields i, recovered), never inside Walkdown's own hot loop,
// preserving the O(N+E)
// bound. A nil logger (the default) is a silent no-op.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithArcSlack raises the arc-capacity slack EnsureEdgeCapacity is given
// beyond the graph's already-added edges, letting a mode that adds a small,
// bounded number of extra bookkeeping arcs during the embed (none of the
// modes in this package currently do) avoid a mid-embed reallocation.
func WithArcSlack(n int) Option {
	return func(o *Options) { o.ArcSlack = n }
}

// WithIntegrityCheck runs TestEmbedResultIntegrity against a duplicate of
// the input graph taken before the embed mutates it, folding any failure
// into the returned error.
func WithIntegrityCheck() Option {
	return func(o *Options) { o.IntegrityCheck = true }
}

func newOptions(opts []Option) Options {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
