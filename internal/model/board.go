package model

import "fmt"

const (
	BoardSize   = 8
	SquareCount = BoardSize * BoardSize
)

type PieceKind uint8

const (
	NoPiece PieceKind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	King
)

func (k PieceKind) String() string {
	switch k {
	case NoPiece:
		return ""
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	case King:
		return "king"
	}
	panic(fmt.Sprintf("unknown piece kind %d", uint8(k)))
}

func (k PieceKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type Color uint8

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return ""
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Opponent returns the other side. NoColor has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// forward is the direction a pawn of this color advances in.
func (c Color) forward() Direction {
	if c == White {
		return Up
	}
	return Down
}

// promotionRow is the far rank for pawns of this color.
func (c Color) promotionRow() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// Square is the content of one board cell. The zero value is an empty square.
type Square struct {
	Kind            PieceKind `json:"kind"`
	Color           Color     `json:"color"`
	HasMoved        bool      `json:"hasMoved"`
	IsEnPassantable bool      `json:"isEnPassantable"`
}

func (s Square) IsEmpty() bool {
	return s.Kind == NoPiece
}

func (s Square) isEnemyOf(c Color) bool {
	return !s.IsEmpty() && s.Color != c
}

// Board holds 64 squares in row-major order. Row 0 is Black's back rank.
type Board [SquareCount]Square

func (b *Board) At(index int) Square {
	return b[index]
}

func (b *Board) Set(index int, s Square) {
	b[index] = s
}

// KingIndex returns the square of the given side's king, or -1 if it is not on the board.
func (b *Board) KingIndex(c Color) int {
	for i := range b {
		if b[i].Kind == King && b[i].Color == c {
			return i
		}
	}
	return -1
}

func Row(index int) int {
	return index / BoardSize
}

func Column(index int) int {
	return index % BoardSize
}

func Index(row, column int) int {
	return row*BoardSize + column
}

func ValidIndex(index int) bool {
	return index >= 0 && index < SquareCount
}

// SquareName renders an index as an algebraic square label, e.g. 52 -> "e2".
func SquareName(index int) string {
	if !ValidIndex(index) {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+Column(index), BoardSize-Row(index))
}

// SquareAtPixel maps a screen position on a board drawn with squares of
// squarePixels size to the square under it. Positions outside the board clamp
// to the nearest edge square.
func SquareAtPixel(x, y, squarePixels int) int {
	if squarePixels <= 0 {
		panic(fmt.Sprintf("invalid square size %d", squarePixels))
	}
	return Index(clamp(y/squarePixels, 0, BoardSize-1), clamp(x/squarePixels, 0, BoardSize-1))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingBoard returns the standard initial position.
func StartingBoard() Board {
	var b Board
	for column, kind := range backRank {
		b[Index(0, column)] = Square{Kind: kind, Color: Black}
		b[Index(1, column)] = Square{Kind: Pawn, Color: Black}
		b[Index(6, column)] = Square{Kind: Pawn, Color: White}
		b[Index(7, column)] = Square{Kind: kind, Color: White}
	}
	return b
}
