package neighborjoin

// builder holds the mutable state of one tree construction: a working copy
// of the distance matrix, the row-sum vector, and the forest of subtrees,
// one per active slot. The matrix keeps its original stride for the whole
// build; the logical dimension n shrinks by one per merge via physical
// compaction (the merged pair's lower slot is reused for the new node, and
// the last active row/column is swapped into the higher slot).
//
// Invariants between steps: the active n×n prefix is symmetric with a zero
// diagonal, sums[k] equals the row sum of the active prefix for every
// active k, and the number of disjoint subtrees in nodes[:n] equals n.
type builder[F Float] struct {
	dm        []F        // working matrix, stride×stride, active prefix n×n
	sums      []F        // row sums over the active prefix
	nodes     []*Node[F] // slot → root of that slot's subtree
	leafOrder []*Node[F] // leaves in input order
	last      *Node[F]   // most recently created internal node
	stride    int
	n         int // active count
	nextID    int
	workers   int
}

// newBuilder copies the input matrix, computes the initial row sums, and
// creates one leaf per taxon. The input slice is never aliased; the caller
// keeps full ownership of dm.
func newBuilder[F Float](dm []F, n int, labels []string, cfg Config) *builder[F] {
	work := make([]F, n*n)
	copy(work, dm[:n*n])

	sums := make([]F, n)
	for i := 0; i < n; i++ {
		var s F
		for _, v := range work[i*n : (i+1)*n] {
			s += v
		}
		sums[i] = s
	}

	nodes := make([]*Node[F], n)
	order := make([]*Node[F], n)
	for i, label := range labels {
		leaf := &Node[F]{ID: i, Label: label}
		nodes[i] = leaf
		order[i] = leaf
	}

	return &builder[F]{
		dm:        work,
		sums:      sums,
		nodes:     nodes,
		leafOrder: order,
		stride:    n,
		n:         n,
		nextID:    n,
		workers:   cfg.Workers,
	}
}

// step performs one merge: find the Q-minimizing pair, join it under a new
// internal node with least-squares branch lengths, fold the pair's rows
// into a row for the new node, and update the row sums in O(n).
func (b *builder[F]) step() {
	n, s := b.n, b.stride

	var i, j int
	if b.workers > 1 && n >= parallelMinDim {
		i, j = findMinQParallel(b.dm, b.sums, n, s, b.workers)
	} else {
		i, j = findMinQ(b.dm, b.sums, n, s)
	}

	dij := b.dm[i*s+j]

	// Least-squares branch length estimates. These may come out negative
	// for non-additive inputs; they are passed through unchanged.
	li := 0.5*dij + (b.sums[i]-b.sums[j])/(2*F(n-2))
	lj := dij - li

	u := &Node[F]{
		ID: b.nextID,
		Children: []Edge[F]{
			{Child: b.nodes[i], Length: li},
			{Child: b.nodes[j], Length: lj},
		},
	}
	b.nextID++
	b.last = u

	// Reduce distances: d(u,k) = (d(i,k) + d(j,k) - d(i,j)) / 2, written
	// into slot i, which becomes u's slot. Each remaining sum is adjusted
	// by the delta against the two removed contributions, and u's sum is
	// accumulated in the same pass.
	var sumU F
	for k := 0; k < n; k++ {
		if k == i || k == j {
			continue
		}
		dik := b.dm[i*s+k]
		djk := b.dm[j*s+k]
		duk := 0.5 * (dik + djk - dij)
		b.sums[k] += duk - dik - djk
		b.dm[i*s+k] = duk
		b.dm[k*s+i] = duk
		sumU += duk
	}
	b.sums[i] = sumU
	b.dm[i*s+i] = 0
	b.nodes[i] = u

	// Retire slot j by swapping the last active slot into it.
	m := n - 1
	if j != m {
		for k := 0; k < m; k++ {
			if k == j {
				continue
			}
			b.dm[j*s+k] = b.dm[m*s+k]
			b.dm[k*s+j] = b.dm[k*s+m]
		}
		b.dm[j*s+j] = 0
		b.sums[j] = b.sums[m]
		b.nodes[j] = b.nodes[m]
	}
	b.n = m
}

// finalize connects the two remaining subtrees with the terminal edge,
// whose length is their entire residual distance. The edge is attached as
// a third child of the most recently created internal node (always one of
// the two survivors), which becomes the arbitrary root of the unrooted
// result.
func (b *builder[F]) finalize() *Tree[F] {
	root, other := b.nodes[0], b.nodes[1]
	if other == b.last {
		root, other = other, root
	}
	root.Children = append(root.Children, Edge[F]{Child: other, Length: b.dm[1]})

	leaves := make(map[string]*Node[F], len(b.leafOrder))
	for _, leaf := range b.leafOrder {
		leaves[leaf.Label] = leaf
	}
	return &Tree[F]{root: root, leaves: leaves, leafOrder: b.leafOrder}
}
