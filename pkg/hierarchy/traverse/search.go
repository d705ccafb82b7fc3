package traverse

// Find returns the first node in visitation order for which pred is true.
// It short-circuits as soon as a match is found, abandoning the remaining
// frontier. The boolean reports whether a match was found.
func Find[N comparable](roots []N, children ChildFunc[N], pred func(N) bool, opts ...Option) (N, bool) {
	return FindFunc(roots, autoAdvance(children), pred, opts...)
}

// FindFunc is the fine-grained variant of Find, driven by a raw signal
// callback instead of a child function.
func FindFunc[N comparable](roots []N, visit VisitFunc[N], pred func(N) bool, opts ...Option) (N, bool) {
	for node := range TraverseFunc(roots, visit, opts...) {
		if pred(node) {
			return node, true
		}
	}
	var zero N
	return zero, false
}

// FindAll returns every node for which pred is true, in visitation order.
// The traversal is exhaustive.
func FindAll[N comparable](roots []N, children ChildFunc[N], pred func(N) bool, opts ...Option) []N {
	return FindAllFunc(roots, autoAdvance(children), pred, opts...)
}

// FindAllFunc is the fine-grained variant of FindAll.
func FindAllFunc[N comparable](roots []N, visit VisitFunc[N], pred func(N) bool, opts ...Option) []N {
	var out []N
	for node := range TraverseFunc(roots, visit, opts...) {
		if pred(node) {
			out = append(out, node)
		}
	}
	return out
}
