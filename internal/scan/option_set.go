package scan

// maxOpts bounds a slot's candidate count: n_pieces * n_oris, maximized
// by edges (12*2=24) and corners (8*3=24) alike.
const maxOpts = 24

// option is one candidate (piece, orientation) pairing for a slot. cols
// holds the piece's colors as they'd land at each of the slot's
// orientation positions under this orientation.
type option struct {
	cols     [3]Color
	colorSet ColorSet
	ori      int
	piece    int
}

// OptionSet holds the still-possible (piece, orientation) candidates for
// one cubie slot. It is a plain fixed-size struct: copying it by value
// (`dst = src`) is a correct snapshot.
type OptionSet struct {
	geometry *PieceGeometry
	opts     [maxOpts]option
	rem      int

	forcedColorSet ColorSet
	forcedOri      int // -1 until all remaining options agree
	forcedPiece    int // -1 until all remaining options agree
}

func (o *OptionSet) init(g *PieceGeometry) {
	o.geometry = g
	i := 0
	for piece := 0; piece < g.NumPieces; piece++ {
		for ori := 0; ori < g.NumOris; ori++ {
			opt := option{piece: piece, ori: ori}
			for j := 0; j < g.NumOris; j++ {
				col := g.Cols[piece][(j+ori)%g.NumOris]
				opt.cols[j] = col
				opt.colorSet = opt.colorSet.With(col)
			}
			o.opts[i] = opt
			i++
		}
	}
	o.rem = g.NumPieces * g.NumOris
	o.forcedColorSet = 0
	o.forcedOri = -1
	o.forcedPiece = -1
}

// Empty reports whether no candidates remain: the branch is infeasible.
func (o *OptionSet) Empty() bool {
	return o.rem == 0
}

// ForcedColorSet returns the colors every remaining option agrees on.
func (o *OptionSet) ForcedColorSet() ColorSet {
	return o.forcedColorSet
}

// ForcedOrientation returns the common orientation of all remaining
// options, or -1 if they disagree. Once resolved it latches: further
// reduction never un-resolves it.
func (o *OptionSet) ForcedOrientation() int {
	return o.forcedOri
}

// ForcedPiece returns the common piece of all remaining options, or -1.
// Latches the same way as ForcedOrientation.
func (o *OptionSet) ForcedPiece() int {
	return o.forcedPiece
}

// recompute refreshes the derived facts after a strict reduction in rem.
// forcedOri/forcedPiece only ever move from -1 to a value, never back.
func (o *OptionSet) recompute() {
	if o.rem == 0 {
		return
	}

	cs := o.opts[0].colorSet
	for i := 1; i < o.rem; i++ {
		cs &= o.opts[i].colorSet
	}
	o.forcedColorSet = cs

	if o.forcedOri == -1 {
		ori := o.opts[0].ori
		for i := 1; i < o.rem; i++ {
			if o.opts[i].ori != ori {
				ori = -1
				break
			}
		}
		if ori != -1 {
			o.forcedOri = ori
		}
	}

	if o.forcedPiece == -1 {
		piece := o.opts[0].piece
		for i := 1; i < o.rem; i++ {
			if o.opts[i].piece != piece {
				piece = -1
				break
			}
		}
		if piece != -1 {
			o.forcedPiece = piece
		}
	}
}

// filter keeps only options for which keep returns true, recomputing
// derived facts only when the filter strictly shrank the candidate set.
func (o *OptionSet) filter(keep func(option) bool) {
	kept := 0
	for i := 0; i < o.rem; i++ {
		if keep(o.opts[i]) {
			o.opts[kept] = o.opts[i]
			kept++
		}
	}
	if kept != o.rem {
		o.rem = kept
		o.recompute()
	} else {
		o.rem = kept
	}
}

// RestrictHasColorAt keeps only options whose color at pos equals color.
func (o *OptionSet) RestrictHasColorAt(pos int, color Color) {
	o.filter(func(opt option) bool { return opt.cols[pos] == color })
}

// RestrictExcludesColor keeps only options whose color set omits color.
func (o *OptionSet) RestrictExcludesColor(color Color) {
	o.filter(func(opt option) bool { return !opt.colorSet.Has(color) })
}

// RestrictOrientation keeps only options with the given orientation.
func (o *OptionSet) RestrictOrientation(ori int) {
	o.filter(func(opt option) bool { return opt.ori == ori })
}

// RestrictNotPiece removes every option for the given piece.
func (o *OptionSet) RestrictNotPiece(piece int) {
	o.filter(func(opt option) bool { return opt.piece != piece })
}
