package scan

import (
	"encoding/binary"
	"fmt"
	"io"
)

// NumBGRValues is the size of the packed-BGR address space: 2^24, one
// entry per possible 8-bit (blue, green, red) triple.
const NumBGRValues = 1 << 24

// ScoreTable maps a packed 24-bit BGR value to six non-negative
// per-color confidence scores. The matcher treats it as an opaque,
// read-only input; it is shareable across concurrently running Matchers
// without synchronization.
type ScoreTable [NumBGRValues][NumColors]uint16

// PackBGR packs an 8-bit (blue, green, red) triple into a table index,
// matching the layout a scan training pipeline would emit.
func PackBGR(b, g, r byte) int {
	return 256*(256*int(b)+int(g)) + int(r)
}

// Score returns the six per-color confidence scores for a packed BGR
// value.
func (t *ScoreTable) Score(bgr int) [NumColors]uint16 {
	return t[bgr]
}

// BuildNearestReferenceTable synthesizes a ScoreTable from a handful of
// labeled BGR reference swatches, standing in for the offline-trained
// table this package otherwise treats as opaque input. Every packed BGR
// value scores each color by inverse squared distance (in BGR space) to
// that color's nearest reference swatch, so closer swatches dominate and
// a color with no reference swatches scores zero everywhere.
func BuildNearestReferenceTable(refs map[Color][][3]byte) *ScoreTable {
	table := &ScoreTable{}
	for b := 0; b < 256; b++ {
		for g := 0; g < 256; g++ {
			for r := 0; r < 256; r++ {
				idx := PackBGR(byte(b), byte(g), byte(r))
				for c := Color(0); c < NumColors; c++ {
					table[idx][c] = nearestReferenceScore(refs[c], b, g, r)
				}
			}
		}
	}
	return table
}

func nearestReferenceScore(swatches [][3]byte, b, g, r int) uint16 {
	if len(swatches) == 0 {
		return 0
	}

	best := -1
	for _, sw := range swatches {
		db := b - int(sw[0])
		dg := g - int(sw[1])
		dr := r - int(sw[2])
		d2 := db*db + dg*dg + dr*dr
		if best == -1 || d2 < best {
			best = d2
		}
	}

	// 1/(1+d^2) scaled to fit uint16, so an exact match scores highest.
	const scale = 65535
	score := scale / (1 + best)
	if score > scale {
		score = scale
	}
	return uint16(score)
}

// WriteTo serializes the table as NumBGRValues*NumColors little-endian
// uint16 values.
func (t *ScoreTable) WriteTo(w io.Writer) error {
	buf := make([]byte, NumColors*2)
	for i := range t {
		for c := 0; c < NumColors; c++ {
			binary.LittleEndian.PutUint16(buf[c*2:], t[i][c])
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("write score table entry %d: %w", i, err)
		}
	}
	return nil
}

// ReadScoreTable deserializes a table written by WriteTo.
func ReadScoreTable(r io.Reader) (*ScoreTable, error) {
	table := &ScoreTable{}
	buf := make([]byte, NumColors*2)
	for i := range table {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("read score table entry %d: %w", i, err)
		}
		for c := 0; c < NumColors; c++ {
			table[i][c] = binary.LittleEndian.Uint16(buf[c*2:])
		}
	}
	return table, nil
}
