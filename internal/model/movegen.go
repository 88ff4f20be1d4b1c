package model

import "fmt"

type pieceRule struct {
	directions []Direction
	maxSteps   int
}

// Pawns are generated separately; their moves depend on color and occupancy.
var pieceRules = [...]pieceRule{
	Queen:  {rayDirections, BoardSize - 1},
	Rook:   {orthogonalDirections, BoardSize - 1},
	Bishop: {diagonalDirections, BoardSize - 1},
	Knight: {knightDirections, 1},
	King:   {rayDirections, 1},
}

// PseudoLegalMoves lists every move c could make if its own king's safety did
// not matter. King steps onto attacked squares are already left out.
// The board is used as scratch space and is unchanged on return.
func PseudoLegalMoves(b *Board, c Color) []Move {
	moves := make([]Move, 0, 48)
	for i := range b {
		if b[i].IsEmpty() || b[i].Color != c {
			continue
		}
		moves = appendPieceMoves(moves, b, i, false)
	}
	return moves
}

// LegalMoves narrows PseudoLegalMoves to the moves that do not leave c's king attacked.
func LegalMoves(b *Board, c Color) []Move {
	pseudo := PseudoLegalMoves(b, c)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if !exposesKing(b, m, c) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsKingInCheck reports whether c's king is attacked. A board without that king is never in check.
func IsKingInCheck(b *Board, c Color) bool {
	king := b.KingIndex(c)
	return king >= 0 && IsSquareThreatened(b, king, c.Opponent())
}

// IsSquareThreatened reports whether a piece of color by could capture a piece
// standing on index. Only the first piece along each ray and each knight leap
// can be an attacker, so those are the only pieces whose moves get generated.
func IsSquareThreatened(b *Board, index int, by Color) bool {
	for _, d := range rayDirections {
		attacker := firstPieceFrom(b, index, d)
		if attacker >= 0 && b[attacker].Color == by && reaches(b, attacker, index) {
			return true
		}
	}
	for _, d := range knightDirections {
		if SquaresToEdge(index, d) == 0 {
			continue
		}
		attacker := index + DirectionOffset(d)
		if !b[attacker].IsEmpty() && b[attacker].Color == by && reaches(b, attacker, index) {
			return true
		}
	}
	return false
}

func firstPieceFrom(b *Board, index int, d Direction) int {
	offset := DirectionOffset(d)
	i := index
	for n := SquaresToEdge(index, d); n > 0; n-- {
		i += offset
		if !b[i].IsEmpty() {
			return i
		}
	}
	return -1
}

func reaches(b *Board, from, target int) bool {
	for _, m := range appendPieceMoves(nil, b, from, true) {
		if m.To == target {
			return true
		}
	}
	return false
}

// appendPieceMoves generates the moves of the piece on from. With unrestricted
// set the king is neither probed for safety nor allowed to castle, which is
// the attack pattern the threat probe needs.
func appendPieceMoves(moves []Move, b *Board, from int, unrestricted bool) []Move {
	kind := b[from].Kind
	switch kind {
	case Pawn:
		return appendPawnMoves(moves, b, from)
	case Queen, Rook, Bishop, Knight:
		return appendRayMoves(moves, b, from, pieceRules[kind])
	case King:
		if unrestricted {
			return appendRayMoves(moves, b, from, pieceRules[King])
		}
		return appendKingMoves(moves, b, from)
	}
	panic(fmt.Sprintf("unknown piece kind %d on %s", uint8(kind), SquareName(from)))
}

func appendRayMoves(moves []Move, b *Board, from int, rule pieceRule) []Move {
	mover := b[from].Color
	for _, d := range rule.directions {
		offset := DirectionOffset(d)
		steps := min(SquaresToEdge(from, d), rule.maxSteps)
		to := from
		for n := 0; n < steps; n++ {
			to += offset
			target := b[to]
			if target.IsEmpty() {
				moves = append(moves, Move{From: from, To: to})
				continue
			}
			if target.Color != mover {
				moves = append(moves, Move{From: from, To: to})
			}
			break
		}
	}
	return moves
}

func appendPawnMoves(moves []Move, b *Board, from int) []Move {
	pawn := b[from]
	forward := pawn.Color.forward()
	offset := DirectionOffset(forward)

	steps := 2
	if pawn.HasMoved {
		steps = 1
	}
	steps = min(steps, SquaresToEdge(from, forward))
	to := from
	for n := 1; n <= steps; n++ {
		to += offset
		if !b[to].IsEmpty() {
			break
		}
		moves = append(moves, Move{From: from, To: to, IsDoubleMovement: n == 2})
	}

	for _, side := range [...]Direction{Left, Right} {
		diagonal := pawnCaptureDirection(forward, side)
		if SquaresToEdge(from, diagonal) == 0 {
			continue
		}
		target := from + DirectionOffset(diagonal)
		if b[target].isEnemyOf(pawn.Color) {
			moves = append(moves, Move{From: from, To: target})
		}
		beside := b[from+DirectionOffset(side)]
		if beside.Kind == Pawn && beside.IsEnPassantable && beside.isEnemyOf(pawn.Color) && b[target].IsEmpty() {
			moves = append(moves, Move{From: from, To: target, IsEnPassant: true})
		}
	}
	return moves
}

func pawnCaptureDirection(forward, side Direction) Direction {
	switch {
	case forward == Up && side == Left:
		return UpLeft
	case forward == Up && side == Right:
		return UpRight
	case forward == Down && side == Left:
		return DownLeft
	case forward == Down && side == Right:
		return DownRight
	}
	panic(fmt.Sprintf("no pawn capture for directions %d/%d", uint8(forward), uint8(side)))
}

func appendKingMoves(moves []Move, b *Board, from int) []Move {
	for _, m := range appendRayMoves(nil, b, from, pieceRules[King]) {
		if kingSafeOn(b, from, m.To) {
			moves = append(moves, m)
		}
	}
	return appendCastlingMoves(moves, b, from)
}

// kingSafeOn places the king from `from` on `to` and probes it there.
func kingSafeOn(b *Board, from, to int) bool {
	king := b[from]
	saved := b[to]
	b[from] = Square{}
	b[to] = king
	safe := !IsSquareThreatened(b, to, king.Color.Opponent())
	b[to] = saved
	b[from] = king
	return safe
}

func appendCastlingMoves(moves []Move, b *Board, from int) []Move {
	king := b[from]
	if king.HasMoved || IsSquareThreatened(b, from, king.Color.Opponent()) {
		return moves
	}
	for _, d := range [...]Direction{Left, Right} {
		offset := DirectionOffset(d)
		i := from
		for n := 1; n <= SquaresToEdge(from, d); n++ {
			i += offset
			s := b[i]
			if s.IsEmpty() {
				continue
			}
			// The king travels two squares, so the rook must sit beyond them.
			if n >= 3 && s.Kind == Rook && s.Color == king.Color && !s.HasMoved &&
				kingSafeOn(b, from, from+offset) && kingSafeOn(b, from, from+2*offset) {
				moves = append(moves, Move{From: from, To: from + 2*offset, IsCastling: true})
			}
			break
		}
	}
	return moves
}

// exposesKing plays m on the board, probes c's king and takes m back.
func exposesKing(b *Board, m Move, c Color) bool {
	mover := b[m.From]
	captured := b[m.To]

	victim := -1
	var victimSquare Square
	if m.IsEnPassant {
		victim = m.To - DirectionOffset(c.forward())
		victimSquare = b[victim]
		b[victim] = Square{}
	}
	b[m.From] = Square{}
	b[m.To] = mover

	exposed := IsKingInCheck(b, c)

	b[m.To] = captured
	b[m.From] = mover
	if victim >= 0 {
		b[victim] = victimSquare
	}
	return exposed
}
