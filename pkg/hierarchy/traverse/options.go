package traverse

// Order selects the visitation order of a traversal.
type Order int

// Traversal orders.
const (
	// BreadthFirst visits all nodes at one depth before descending.
	// This is the default.
	BreadthFirst Order = iota

	// DepthFirst exhausts an entire subtree before moving to the next
	// sibling. Children are pushed onto the frontier stack in declared
	// order, so by default they are visited back-to-front; combine with
	// WithReverse for left-to-right document order.
	DepthFirst
)

// String returns the order name.
func (o Order) String() string {
	switch o {
	case DepthFirst:
		return "depth-first"
	default:
		return "breadth-first"
	}
}

// options holds configuration for a single traversal call.
type options struct {
	order        Order
	reverse      bool
	detectCycles bool
	includeSelf  bool
}

// defaultOptions returns the default traversal configuration:
// breadth-first, forward sibling order, cycle detection off, roots included.
func defaultOptions() options {
	return options{
		order:       BreadthFirst,
		includeSelf: true,
	}
}

// Option configures a traversal.
type Option func(*options)

// buildOptions applies opts on top of the defaults.
func buildOptions(opts []Option) options {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithOrder sets the traversal order.
// Default: BreadthFirst.
func WithOrder(order Order) Option {
	return func(o *options) {
		o.order = order
	}
}

// WithDepthFirst is shorthand for WithOrder(DepthFirst).
func WithDepthFirst() Option {
	return WithOrder(DepthFirst)
}

// WithReverse inverts the relative visitation order of each node's
// children. Cross-branch ordering is unaffected.
func WithReverse() Option {
	return func(o *options) {
		o.reverse = true
	}
}

// WithCycleDetection enables identity-based deduplication of visited nodes.
// Each distinct node instance is visited at most once, guaranteeing
// termination on cyclic graphs. Two distinct instances holding equal item
// values are NOT considered duplicates.
//
// Default: off. Traversing a genuine cycle without cycle detection never
// terminates; avoiding that is the caller's responsibility.
func WithCycleDetection() Option {
	return func(o *options) {
		o.detectCycles = true
	}
}

// WithoutSelf excludes the given roots from the output. The frontier is
// seeded with whatever the callback enqueues for each root instead of the
// roots themselves, so traversal still descends into their children.
func WithoutSelf() Option {
	return func(o *options) {
		o.includeSelf = false
	}
}
