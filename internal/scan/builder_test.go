package scan

import "testing"

// assignCorner fully pins slot's three positions to piece's colors under
// the given orientation, without propagating.
func assignCorner(b *CubieBuilder, slot, piece, ori int) {
	for pos := 0; pos < 3; pos++ {
		col := cornerGeometry.Cols[piece][(pos+ori)%3]
		b.AssignColor(slot, pos, col)
	}
}

func assignEdge(b *CubieBuilder, slot, piece, ori int) {
	for pos := 0; pos < 2; pos++ {
		col := edgeGeometry.Cols[piece][(pos+ori)%2]
		b.AssignColor(slot, pos, col)
	}
}

func TestCubieBuilderIdentitySolves(t *testing.T) {
	b := NewCornersBuilder()
	for s := 0; s < 8; s++ {
		assignCorner(b, s, s, 0)
	}
	if !b.Propagate() {
		t.Fatal("identity corner assignment should propagate successfully")
	}
	for s := 0; s < 8; s++ {
		if b.perm[s] != s {
			t.Errorf("perm[%d] = %d, want %d", s, b.perm[s], s)
		}
		if b.oris[s] != 0 {
			t.Errorf("oris[%d] = %d, want 0", s, b.oris[s])
		}
	}
	if b.Parity() != 0 {
		t.Errorf("identity permutation parity = %d, want 0", b.Parity())
	}
}

// TestOrientationClosure covers spec scenario 4: with 7 corner
// orientations pinned directly, the 8th must be deduced by the
// orientation-sum invariant rather than by direct color evidence.
func TestOrientationClosure(t *testing.T) {
	b := NewCornersBuilder()
	for s := 0; s < 7; s++ {
		assignCorner(b, s, s, 1)
	}
	if !b.Propagate() {
		t.Fatal("propagation should succeed with one corner left undetermined")
	}

	want := (3 - (7 % 3)) % 3
	if b.oris[7] != want {
		t.Errorf("oris[7] = %d, want %d (closure from orientation sum)", b.oris[7], want)
	}
	if b.perm[7] != 7 {
		t.Errorf("perm[7] = %d, want 7 (deduced by piece-uniqueness elimination)", b.perm[7])
	}
}

// TestPermutationClosureByParity covers the two-slots-left branch: once
// parity is known and only two pieces remain unplaced, the pairing is
// resolved without further color evidence.
func TestPermutationClosureByParity(t *testing.T) {
	b := NewCornersBuilder()
	// Place 6 of the 8 corners as an even permutation (identity on the
	// first six), leaving slots 6 and 7 to receive pieces 6 and 7 in
	// some order.
	for s := 0; s < 6; s++ {
		assignCorner(b, s, s, 0)
	}
	b.SetParity(0) // even: the only way 6 and 7 can land is identity
	if !b.Propagate() {
		t.Fatal("propagation should succeed")
	}
	if b.perm[6] != 6 || b.perm[7] != 7 {
		t.Errorf("perm[6:8] = [%d %d], want [6 7] (even parity forces identity)", b.perm[6], b.perm[7])
	}
}

func TestParityEqualityHandoff(t *testing.T) {
	corners := NewCornersBuilder()
	edges := NewEdgesBuilder()

	for s := 0; s < 8; s++ {
		assignCorner(corners, s, s, 0)
	}
	if !corners.Propagate() {
		t.Fatal("corners should resolve to the identity permutation")
	}
	if corners.Parity() == -1 {
		t.Fatal("corners parity should be determined once all 8 pieces are placed")
	}

	if edges.Parity() != -1 {
		t.Fatal("edges parity should start undetermined")
	}
	edges.SetParity(corners.Parity())
	if !edges.Propagate() {
		t.Fatal("edges propagation after parity handoff should succeed")
	}
	if edges.Parity() != corners.Parity() {
		t.Errorf("edges parity = %d, want %d (equal to corners)", edges.Parity(), corners.Parity())
	}
}

func TestCubieBuilderContradictionFails(t *testing.T) {
	b := NewCornersBuilder()
	// Two different slots can never legally claim the same piece; force
	// exactly that by pinning the same three colors onto two slots.
	assignCorner(b, 0, 0, 0)
	assignCorner(b, 1, 0, 0)
	if b.Propagate() {
		t.Fatal("assigning the same piece to two slots must fail propagation")
	}
}

func TestCubieBuilderSnapshotRestore(t *testing.T) {
	b := NewCornersBuilder()
	assignCorner(b, 0, 0, 0)
	if !b.Propagate() {
		t.Fatal("initial propagation should succeed")
	}
	snap := *b

	assignCorner(b, 1, 1, 0)
	if !b.Propagate() {
		t.Fatal("second propagation should succeed")
	}
	if *b == snap {
		t.Fatal("state should differ after a second assignment")
	}

	*b = snap
	if *b != snap {
		t.Fatal("restoring from snapshot should reproduce the prior state exactly")
	}
}

// TestPropagateRejectsParityMismatch ensures a piece group that resolves
// a permutation disagreeing with an already-handed-off parity fails
// propagation outright, rather than silently overwriting the locked
// parity with whatever this group computed.
func TestPropagateRejectsParityMismatch(t *testing.T) {
	b := NewCornersBuilder()
	for s := 0; s < 6; s++ {
		assignCorner(b, s, s, 0)
	}
	// Lock parity to odd before the last two pieces are placed, then
	// directly hand the builder unambiguous evidence for the identity
	// completion (even). The two disagree, so propagation must fail.
	b.SetParity(1)
	assignCorner(b, 6, 6, 0)
	assignCorner(b, 7, 7, 0)
	if b.Propagate() {
		t.Fatal("propagation must fail when the realized permutation's parity disagrees with the handed-off parity")
	}
}

func TestPropagateIsIdempotent(t *testing.T) {
	b := NewCornersBuilder()
	for s := 0; s < 5; s++ {
		assignCorner(b, s, s, 0)
	}
	if !b.Propagate() {
		t.Fatal("propagation should succeed")
	}
	snap := *b
	if !b.Propagate() {
		t.Fatal("a second propagation with no new assignment should still succeed")
	}
	if *b != snap {
		t.Error("a second propagation with no intervening assignment should not change state")
	}
}
