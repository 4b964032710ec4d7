package scan

import (
	"container/heap"
	"errors"
)

// ErrUnrecoverable signals that a scan could not be resolved: some
// facelet exhausted every color its confidence row offered without ever
// producing a consistent cube state.
var ErrUnrecoverable = errors.New("scan: unrecoverable facelet conflict")

// confItem is one candidate (confidence, facelet, color) entry in the
// priority search. Ties break by facelet ascending, then color
// ascending, so Match is deterministic given identical inputs.
type confItem struct {
	confidence int
	facelet    int
	color      Color
}

type confHeap []confItem

func (h confHeap) Len() int { return len(h) }

func (h confHeap) Less(i, j int) bool {
	if h[i].confidence != h[j].confidence {
		return h[i].confidence > h[j].confidence
	}
	if h[i].facelet != h[j].facelet {
		return h[i].facelet < h[j].facelet
	}
	return h[i].color < h[j].color
}

func (h confHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *confHeap) Push(x any) {
	*h = append(*h, x.(confItem))
}

func (h *confHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Matcher runs the confidence-driven priority search over one scoring
// table. It owns its two builders and their snapshot buffers, so a
// single Matcher should not be shared across concurrently running
// Match calls; callers serving concurrent requests construct one
// Matcher per request (or per worker) over a shared, read-only
// ScoreTable.
type Matcher struct {
	table *ScoreTable

	corners     *CubieBuilder
	edges       *CubieBuilder
	cornersSnap CubieBuilder
	edgesSnap   CubieBuilder
}

// NewMatcher returns a Matcher over table, with its builders
// pre-allocated and ready for repeated Match calls.
func NewMatcher(table *ScoreTable) *Matcher {
	return &Matcher{
		table:   table,
		corners: NewCornersBuilder(),
		edges:   NewEdgesBuilder(),
	}
}

// argmax returns the index of the largest value in row, and the value
// itself. Ties resolve to the lowest index, matching std::max_element.
func argmax(row [NumColors]int) (int, int) {
	best := 0
	for c := 1; c < NumColors; c++ {
		if row[c] > row[best] {
			best = c
		}
	}
	return best, row[best]
}

// Match runs the best-first, backtracking color assignment over the 54
// BGR samples (in canonical facelet order U0..U8, R0..R8, F0..F8, D0..D8,
// L0..L8, B0..B8) and returns the 54-character facelet string, or the
// empty string if the scan is unrecoverable.
func (m *Matcher) Match(samples [NumFacelets][3]byte) string {
	m.corners.Init(&cornerGeometry)
	m.edges.Init(&edgeGeometry)

	var conf [NumFacelets][NumColors]int
	for f := 0; f < NumFacelets; f++ {
		bgr := PackBGR(samples[f][0], samples[f][1], samples[f][2])
		scores := m.table.Score(bgr)
		for c := 0; c < NumColors; c++ {
			conf[f][c] = int(scores[c])
		}
	}

	var facecube [NumFacelets]Color

	h := make(confHeap, 0, NumFacelets)
	for f := 0; f < NumFacelets; f++ {
		if IsCenter(f) {
			facecube[f] = Color(f / 9)
			continue
		}
		col, best := argmax(conf[f])
		heap.Push(&h, confItem{confidence: best, facelet: f, color: Color(col)})
		conf[f][col] = -1
	}

	for h.Len() > 0 {
		item := heap.Pop(&h).(confItem)
		f := item.facelet
		color := item.color

		var builder, counterpart *CubieBuilder
		var slot, pos int
		if IsCornerFacelet(f) {
			builder, counterpart = m.corners, m.edges
			slot, pos = cornerSlotAt[f], orientationPos[f]
		} else {
			builder, counterpart = m.edges, m.corners
			slot, pos = edgeSlotAt[f], orientationPos[f]
		}

		m.snapshotInto(builder)
		builder.AssignColor(slot, pos, color)
		success := builder.Propagate()

		counterpartTouched := false
		if success && builder.Parity() != -1 && counterpart.Parity() == -1 {
			m.snapshotInto(counterpart)
			counterpartTouched = true
			counterpart.SetParity(builder.Parity())
			if !counterpart.Propagate() {
				success = false
			}
		}

		if !success {
			m.restoreFrom(builder)
			if counterpartTouched {
				m.restoreFrom(counterpart)
			}

			next, val := argmax(conf[f])
			if val == -1 {
				return ""
			}
			heap.Push(&h, confItem{confidence: val, facelet: f, color: Color(next)})
			conf[f][next] = -1
			continue
		}

		facecube[f] = color
	}

	out := make([]byte, NumFacelets)
	for i, c := range facecube {
		out[i] = colorLetters[c]
	}
	return string(out)
}

// snapshotInto copies b's current state into its scratch buffer.
func (m *Matcher) snapshotInto(b *CubieBuilder) {
	switch b {
	case m.corners:
		m.cornersSnap = *b
	case m.edges:
		m.edgesSnap = *b
	}
}

// restoreFrom restores b from its scratch buffer, i.e. to the state the
// most recent snapshotInto(b) saved. Match only calls it for builders it
// snapshotted in the current round.
func (m *Matcher) restoreFrom(b *CubieBuilder) {
	switch b {
	case m.corners:
		*b = m.cornersSnap
	case m.edges:
		*b = m.edgesSnap
	}
}

// MatchOrError is Match with the empty-string failure signal turned into
// ErrUnrecoverable, for callers (CLI, HTTP handlers) that want ordinary
// Go error semantics at their boundary.
func MatchOrError(m *Matcher, samples [NumFacelets][3]byte) (string, error) {
	s := m.Match(samples)
	if s == "" {
		return "", ErrUnrecoverable
	}
	return s, nil
}
