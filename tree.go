package neighborjoin

// Edge connects a node to one of its children with a branch length.
// Lengths estimate the dissimilarity between the adjacent nodes and may be
// negative for non-additive input distances (see Build).
type Edge[F Float] struct {
	Child  *Node[F]
	Length F
}

// Node is a vertex of the result tree: either an original taxon (leaf,
// carrying its label) or an internal node synthesized by a merge step.
// Leaf IDs are 0..N-1 in input order; internal IDs continue from N in
// creation order. Internal nodes own the edges to their children.
type Node[F Float] struct {
	ID       int
	Label    string // empty for internal nodes
	Children []Edge[F]
}

// IsLeaf reports whether the node is an original taxon.
func (nd *Node[F]) IsLeaf() bool { return len(nd.Children) == 0 }

// Tree is the completed neighbor-joining tree. It is unrooted in the
// biological sense; Root is the arbitrary placement at the final join
// (the last internal node created, carrying the terminal edge as a third
// child).
type Tree[F Float] struct {
	root      *Node[F]
	leaves    map[string]*Node[F]
	leafOrder []*Node[F]
}

// Root returns the node at the final join.
func (t *Tree[F]) Root() *Node[F] { return t.root }

// Leaf returns the leaf node for the given taxon label, or nil if the label
// was not among the input taxa.
func (t *Tree[F]) Leaf(label string) *Node[F] { return t.leaves[label] }

// Leaves returns the leaf nodes in input order.
func (t *Tree[F]) Leaves() []*Node[F] {
	out := make([]*Node[F], len(t.leafOrder))
	copy(out, t.leafOrder)
	return out
}

// LeafLabels returns the taxon labels in input order.
func (t *Tree[F]) LeafLabels() []string {
	out := make([]string, len(t.leafOrder))
	for i, nd := range t.leafOrder {
		out[i] = nd.Label
	}
	return out
}

// Walk visits every edge of the tree in preorder, calling fn with the
// parent node and the edge to one of its children. Traversal order is
// deterministic: children are visited in the order they were attached.
func (t *Tree[F]) Walk(fn func(parent *Node[F], edge Edge[F])) {
	var rec func(nd *Node[F])
	rec = func(nd *Node[F]) {
		for _, e := range nd.Children {
			fn(nd, e)
			rec(e.Child)
		}
	}
	rec(t.root)
}

// EdgeCount returns the number of edges in the tree; 2N−3 for N taxa.
func (t *Tree[F]) EdgeCount() int {
	count := 0
	t.Walk(func(*Node[F], Edge[F]) { count++ })
	return count
}

// InternalCount returns the number of internal nodes; N−2 for N taxa.
func (t *Tree[F]) InternalCount() int {
	count := 0
	if !t.root.IsLeaf() {
		count++
	}
	t.Walk(func(_ *Node[F], e Edge[F]) {
		if !e.Child.IsLeaf() {
			count++
		}
	})
	return count
}
