package scan

import "testing"

// refSwatches gives each color a single, widely separated reference BGR
// triple so BuildNearestReferenceTable produces an unambiguous table: any
// sample closer to one swatch than all others scores it highest.
func refSwatches() map[Color][][3]byte {
	return map[Color][][3]byte{
		ColorU: {{0, 0, 0}},
		ColorR: {{40, 0, 0}},
		ColorF: {{80, 0, 0}},
		ColorD: {{120, 0, 0}},
		ColorL: {{160, 0, 0}},
		ColorB: {{200, 0, 0}},
	}
}

// identitySamples returns the 54 BGR samples of a solved cube: facelet f
// carries color f/9's reference swatch.
func identitySamples(swatches map[Color][][3]byte) [NumFacelets][3]byte {
	var samples [NumFacelets][3]byte
	for f := 0; f < NumFacelets; f++ {
		samples[f] = swatches[Color(f/9)][0]
	}
	return samples
}

func solvedString() string {
	out := make([]byte, NumFacelets)
	for f := 0; f < NumFacelets; f++ {
		out[f] = colorLetters[f/9]
	}
	return string(out)
}

func TestMatchIdentityCube(t *testing.T) {
	table := BuildNearestReferenceTable(refSwatches())
	m := NewMatcher(table)

	samples := identitySamples(refSwatches())
	got := m.Match(samples)
	want := solvedString()
	if got != want {
		t.Fatalf("Match(identity) = %q, want %q", got, want)
	}
}

// TestMatchRecoversFromSingleFaceletNoise covers spec scenario 2: one
// facelet's raw sample drifts toward the wrong color, but since that
// color is already taken at another position of the same cubie,
// constraint propagation rejects it and the search falls back to the
// facelet's second-best (and geometrically correct) color.
func TestMatchRecoversFromSingleFaceletNoise(t *testing.T) {
	swatches := refSwatches()
	table := BuildNearestReferenceTable(swatches)
	m := NewMatcher(table)

	samples := identitySamples(swatches)

	// Facelet 20 is F-face index 2, the URF corner's third position
	// (true color F). Drift its sample toward R's swatch (40,0,0) but not
	// all the way, so R scores highest and F scores second: R is
	// distance^2 100 away (50-40), F is distance^2 900 (80-50), so R
	// beats F but F still clearly beats every other color.
	samples[20] = [3]byte{50, 0, 0}

	got := m.Match(samples)
	want := solvedString()
	if got != want {
		t.Fatalf("Match(single noisy facelet) = %q, want %q (should self-correct via propagation)", got, want)
	}
}

// TestMatchUnrecoverableReturnsEmpty covers spec scenario 6. Facelet 2
// is the UBR corner's first position (true color U); its sample is
// corrupted to R's swatch exactly, at the same top confidence as every
// genuine facelet. Ties break by facelet index, so the claim is tried
// before almost all other evidence, and UBR's slot accepts it (several
// corners can show R in that position under some orientation). A
// facelet's successful assignment is never revisited, so the wrong R
// stays committed, and a later facelet runs out of candidate colors:
// every one of them contradicts the state built so far.
func TestMatchUnrecoverableReturnsEmpty(t *testing.T) {
	swatches := refSwatches()
	table := BuildNearestReferenceTable(swatches)
	m := NewMatcher(table)

	samples := identitySamples(swatches)
	samples[2] = swatches[ColorR][0]

	got := m.Match(samples)
	if got != "" {
		t.Fatalf("Match(unrecoverable) = %q, want \"\" (ErrUnrecoverable case)", got)
	}
}

func TestMatchOrErrorWrapsUnrecoverable(t *testing.T) {
	swatches := refSwatches()
	table := BuildNearestReferenceTable(swatches)
	m := NewMatcher(table)

	samples := identitySamples(swatches)
	samples[2] = swatches[ColorR][0]

	_, err := MatchOrError(m, samples)
	if err != ErrUnrecoverable {
		t.Fatalf("MatchOrError error = %v, want ErrUnrecoverable", err)
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	swatches := refSwatches()
	table := BuildNearestReferenceTable(swatches)
	samples := identitySamples(swatches)
	samples[20] = [3]byte{50, 0, 0}

	m1 := NewMatcher(table)
	m2 := NewMatcher(table)

	got1 := m1.Match(samples)
	got2 := m2.Match(samples)
	if got1 != got2 {
		t.Fatalf("Match is nondeterministic: %q vs %q", got1, got2)
	}
}
