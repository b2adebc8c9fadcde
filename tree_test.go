package neighborjoin

import "testing"

func buildFiveTaxaTree(t *testing.T) *Tree[float64] {
	t.Helper()
	dm := []float64{
		0, 5, 9, 9, 8,
		5, 0, 10, 10, 9,
		9, 10, 0, 8, 7,
		9, 10, 8, 0, 3,
		8, 9, 7, 3, 0,
	}
	tree, err := Build(dm, 5, []string{"a", "b", "c", "d", "e"}, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tree
}

func TestTreeCounts(t *testing.T) {
	tree := buildFiveTaxaTree(t)
	if got := tree.EdgeCount(); got != 7 {
		t.Errorf("EdgeCount = %d, want 7", got)
	}
	if got := tree.InternalCount(); got != 3 {
		t.Errorf("InternalCount = %d, want 3", got)
	}
	if got := len(tree.Leaves()); got != 5 {
		t.Errorf("Leaves = %d, want 5", got)
	}
}

func TestTreeLeafOrder(t *testing.T) {
	tree := buildFiveTaxaTree(t)
	want := []string{"a", "b", "c", "d", "e"}
	got := tree.LeafLabels()
	if len(got) != len(want) {
		t.Fatalf("LeafLabels length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LeafLabels[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	for i, leaf := range tree.Leaves() {
		if leaf.ID != i {
			t.Errorf("leaf %q has ID %d, want %d (input order)", leaf.Label, leaf.ID, i)
		}
	}
}

func TestTreeWalkVisitsEachNodeOnce(t *testing.T) {
	tree := buildFiveTaxaTree(t)

	visits := make(map[*Node[float64]]int)
	tree.Walk(func(_ *Node[float64], e Edge[float64]) {
		visits[e.Child]++
	})

	// Every node except the root appears as a child exactly once.
	for nd, count := range visits {
		if count != 1 {
			t.Errorf("node %d visited %d times as a child", nd.ID, count)
		}
	}
	if _, rootVisited := visits[tree.Root()]; rootVisited {
		t.Error("root appeared as a child")
	}
	if got := len(visits); got != 7 {
		t.Errorf("visited %d nodes as children, want 7", got)
	}
}

func TestTreeNodeIDs(t *testing.T) {
	tree := buildFiveTaxaTree(t)

	seen := make(map[int]bool)
	check := func(nd *Node[float64]) {
		if seen[nd.ID] {
			t.Errorf("duplicate node ID %d", nd.ID)
		}
		seen[nd.ID] = true
		if nd.IsLeaf() {
			if nd.ID < 0 || nd.ID >= 5 {
				t.Errorf("leaf %q has ID %d outside [0,5)", nd.Label, nd.ID)
			}
			if nd.Label == "" {
				t.Errorf("leaf %d has no label", nd.ID)
			}
		} else {
			if nd.ID < 5 {
				t.Errorf("internal node has leaf-range ID %d", nd.ID)
			}
			if nd.Label != "" {
				t.Errorf("internal node %d carries label %q", nd.ID, nd.Label)
			}
		}
	}
	check(tree.Root())
	tree.Walk(func(_ *Node[float64], e Edge[float64]) { check(e.Child) })
}
