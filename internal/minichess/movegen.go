package minichess

type step struct{ dr, dc int }

// Offsets are listed in generation order; results follow the same order.
var (
	kingSteps = [8]step{
		{-1, -1}, {-1, 0}, {-1, +1},
		{0, -1}, {0, +1},
		{+1, -1}, {+1, 0}, {+1, +1},
	}
	knightJumps = [8]step{
		{-2, -1}, {-2, +1},
		{-1, -2}, {-1, +2},
		{+1, -2}, {+1, +2},
		{+2, -1}, {+2, +1},
	}
	bishopRays = [4]step{
		{-1, -1}, {-1, +1},
		{+1, -1}, {+1, +1},
	}
)

// pawnMoves: push first, then the captures on col+1 and col-1.
func pawnMoves(b *Board, p Piece, from Cell) []Cell {
	dir := p.Direction()
	var res []Cell

	push := from.offset(dir, 0)
	if IsValidCell(push) && b.at(push).IsEmpty() {
		res = append(res, push)
	}

	for _, dc := range [2]int{+1, -1} {
		to := from.offset(dir, dc)
		if !IsValidCell(to) {
			continue
		}
		target := b.at(to)
		if target.IsEmpty() || SameColor(p.Color, target.Color) {
			continue
		}
		res = append(res, to)
	}
	return res
}

// stepMoves handles single-step movers (king, knight): any on-board target not held by an own piece.
func stepMoves(b *Board, p Piece, from Cell, steps []step) []Cell {
	var res []Cell
	for _, s := range steps {
		to := from.offset(s.dr, s.dc)
		if !IsValidCell(to) {
			continue
		}
		target := b.at(to)
		if !target.IsEmpty() && SameColor(p.Color, target.Color) {
			continue
		}
		res = append(res, to)
	}
	return res
}

// rayMoves slides along each ray until the edge or the first occupied cell, which is included only when it is an enemy.
func rayMoves(b *Board, p Piece, from Cell, rays []step) []Cell {
	var res []Cell
	for _, r := range rays {
		to := from.offset(r.dr, r.dc)
		for IsValidCell(to) {
			target := b.at(to)
			if target.IsEmpty() {
				res = append(res, to)
				to = to.offset(r.dr, r.dc)
				continue
			}
			if !SameColor(p.Color, target.Color) {
				res = append(res, to)
			}
			break
		}
	}
	return res
}
