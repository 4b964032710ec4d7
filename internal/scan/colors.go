// Package scan implements the color-matching core of a Rubik's-cube
// scanner: it turns 54 raw BGR samples plus a BGR-to-confidence lookup
// table into the 54-character facelet string of a physically realizable
// cube.
package scan

// Color identifies one of the six sticker colors by the face it's
// canonically associated with.
type Color int

const (
	ColorU Color = iota
	ColorR
	ColorF
	ColorD
	ColorL
	ColorB
)

// NumColors is the size of a color set's universe.
const NumColors = 6

var colorLetters = [NumColors]byte{'U', 'R', 'F', 'D', 'L', 'B'}

func (c Color) String() string {
	return string(colorLetters[c])
}

// ColorSet is a 6-bit mask over Color, bit i set iff color i is present.
type ColorSet uint8

func (s ColorSet) Has(c Color) bool {
	return s&(1<<uint(c)) != 0
}

func (s ColorSet) With(c Color) ColorSet {
	return s | 1<<uint(c)
}

// NumFacelets is the number of stickers on a 3x3x3 cube.
const NumFacelets = 54

// maxSlots bounds the per-group slot count: 12 edges is the larger group,
// 8 corners the smaller. A single array size lets CubieBuilder stay one
// fixed-size struct for both groups, copyable by value for snapshotting.
const maxSlots = 12

// Corner slot IDs, in the order spec's cubie_cols table enumerates them.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge slot IDs.
const (
	UR = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// PieceGeometry is the static color table for one piece group (corners or
// edges): for piece p, Cols[p][0:NumOris] is its colors in canonical
// rotation order.
type PieceGeometry struct {
	NumPieces int
	NumOris   int
	Cols      [maxSlots][3]Color
}

var cornerGeometry = PieceGeometry{
	NumPieces: 8,
	NumOris:   3,
	Cols: [maxSlots][3]Color{
		URF: {ColorU, ColorR, ColorF},
		UFL: {ColorU, ColorF, ColorL},
		ULB: {ColorU, ColorL, ColorB},
		UBR: {ColorU, ColorB, ColorR},
		DFR: {ColorD, ColorF, ColorR},
		DLF: {ColorD, ColorL, ColorF},
		DBL: {ColorD, ColorB, ColorL},
		DRB: {ColorD, ColorR, ColorB},
	},
}

var edgeGeometry = PieceGeometry{
	NumPieces: 12,
	NumOris:   2,
	Cols: [maxSlots][3]Color{
		UR: {ColorU, ColorR},
		UF: {ColorU, ColorF},
		UL: {ColorU, ColorL},
		UB: {ColorU, ColorB},
		DR: {ColorD, ColorR},
		DF: {ColorD, ColorF},
		DL: {ColorD, ColorL},
		DB: {ColorD, ColorB},
		FR: {ColorF, ColorR},
		FL: {ColorF, ColorL},
		BL: {ColorB, ColorL},
		BR: {ColorB, ColorR},
	},
}

// facelet -> corner slot (-1 if the facelet isn't on a corner cubie),
// facelet -> edge slot (-1 if the facelet isn't on an edge cubie), and
// facelet -> orientation position within whichever slot it belongs to
// (-1 on centers). Faces appear in order U, R, F, D, L, B, each 0..8 in
// reading order; index 4 of each face is its fixed center.
var cornerSlotAt = [NumFacelets]int{
	// U
	ULB, -1, UBR, -1, -1, -1, UFL, -1, URF,
	// R
	URF, -1, UBR, -1, -1, -1, DFR, -1, DRB,
	// F
	UFL, -1, URF, -1, -1, -1, DLF, -1, DFR,
	// D
	DLF, -1, DFR, -1, -1, -1, DBL, -1, DRB,
	// L
	ULB, -1, UFL, -1, -1, -1, DBL, -1, DLF,
	// B
	UBR, -1, ULB, -1, -1, -1, DRB, -1, DBL,
}

var edgeSlotAt = [NumFacelets]int{
	// U
	-1, UB, -1, UL, -1, UR, -1, UF, -1,
	// R
	-1, UR, -1, FR, -1, BR, -1, DR, -1,
	// F
	-1, UF, -1, FL, -1, FR, -1, DF, -1,
	// D
	-1, DF, -1, DL, -1, DR, -1, DB, -1,
	// L
	-1, UL, -1, BL, -1, FL, -1, DL, -1,
	// B
	-1, UB, -1, BR, -1, BL, -1, DB, -1,
}

var orientationPos = [NumFacelets]int{
	// U
	0, 0, 0, 0, -1, 0, 0, 0, 0,
	// R
	1, 1, 2, 1, -1, 1, 2, 1, 1,
	// F
	1, 1, 2, 0, -1, 0, 2, 1, 1,
	// D
	0, 0, 0, 0, -1, 0, 0, 0, 0,
	// L
	1, 1, 2, 1, -1, 1, 2, 1, 1,
	// B
	1, 1, 2, 0, -1, 0, 2, 1, 1,
}

// IsCenter reports whether facelet f is a fixed center sticker.
func IsCenter(f int) bool {
	return f%9 == 4
}

// IsCornerFacelet reports whether facelet f belongs to a corner cubie.
func IsCornerFacelet(f int) bool {
	return cornerSlotAt[f] != -1
}
