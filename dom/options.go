package dom

// DefaultMaxDepth bounds tag nesting when [Options.MaxDepth] is zero.
const DefaultMaxDepth = 256

// Options configures a parse. The zero value parses with no lookup indices
// and the default depth bound.
type Options struct {
	// TrackIDs builds a map from id attribute to node handle while parsing,
	// making [Document.GetElementByID] a constant-time lookup. It adds a
	// small per-tag cost, which is why it is opt-in.
	TrackIDs bool

	// TrackClasses builds a map from each class token to the handles of the
	// tags carrying it, making [Document.GetElementsByClassName] a
	// constant-time lookup.
	TrackClasses bool

	// MaxDepth bounds the open-tag stack. Tags opened past this depth are
	// treated as childless: the parse continues, but descent stops, so
	// pathological inputs like thousands of nested tags cannot exhaust
	// memory or the stack. Zero means [DefaultMaxDepth].
	MaxDepth int
}

// WithTrackIDs returns a copy with id tracking enabled.
func (o Options) WithTrackIDs() Options {
	o.TrackIDs = true
	return o
}

// WithTrackClasses returns a copy with class tracking enabled.
func (o Options) WithTrackClasses() Options {
	o.TrackClasses = true
	return o
}

// WithMaxDepth returns a copy with the given depth bound.
func (o Options) WithMaxDepth(depth int) Options {
	o.MaxDepth = depth
	return o
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}
