package model

import "fmt"

// Move is a candidate move. It is only known to be safe for the mover's king
// once it has come out of LegalMoves.
type Move struct {
	From             int  `json:"from"`
	To               int  `json:"to"`
	IsCastling       bool `json:"isCastling"`
	IsEnPassant      bool `json:"isEnPassant"`
	IsDoubleMovement bool `json:"isDoubleMovement"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s%s", SquareName(m.From), SquareName(m.To))
}

// SimpleMove is the from/to pair the renderer highlights.
type SimpleMove struct {
	From int `json:"from"`
	To   int `json:"to"`
}
