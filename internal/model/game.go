package model

import "fmt"

type Phase uint8

const (
	InProgress Phase = iota
	Check
	Checkmate
	Stalemate
)

func (p Phase) String() string {
	switch p {
	case InProgress:
		return "inProgress"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	panic(fmt.Sprintf("unknown phase %d", uint8(p)))
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p Phase) IsTerminal() bool {
	return p == Checkmate || p == Stalemate
}

// Game owns one board and the turn state around it. It is not safe for
// concurrent use.
type Game struct {
	board            Board
	sideToMove       Color
	legalMoves       []Move
	isKingUnderCheck bool
	isKingUnderMate  bool
	isKingUnderDraw  bool
	history          []Move
}

// GameState is a copy of everything a renderer needs to draw the game.
type GameState struct {
	Board            Board       `json:"board"`
	SideToMove       Color       `json:"sideToMove"`
	Phase            Phase       `json:"phase"`
	Winner           Color       `json:"winner"`
	IsKingUnderCheck bool        `json:"isKingUnderCheck"`
	IsKingUnderMate  bool        `json:"isKingUnderMate"`
	IsKingUnderDraw  bool        `json:"isKingUnderDraw"`
	LegalMoves       []Move      `json:"legalMoves"`
	MoveHistory      []Move      `json:"moveHistory"`
	LastMove         *SimpleMove `json:"lastMove"`
}

func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// NewGameFromBoard starts a game from an arbitrary position with side to move.
// Check, legal moves and terminal flags are computed immediately.
func NewGameFromBoard(b Board, side Color) *Game {
	g := &Game{board: b, sideToMove: side, history: make([]Move, 0)}
	g.refresh()
	return g
}

// Reset puts the pieces back on their starting squares with White to move.
func (g *Game) Reset() {
	g.board = StartingBoard()
	g.sideToMove = White
	g.history = make([]Move, 0)
	g.refresh()
}

// SelectPiece returns the legal moves starting on index. The result is empty
// for an empty square, an enemy piece, or a piece with nowhere to go.
func (g *Game) SelectPiece(index int) []Move {
	moves := make([]Move, 0, 8)
	for _, m := range g.legalMoves {
		if m.From == index {
			moves = append(moves, m)
		}
	}
	return moves
}

// AttemptMove plays from->to if it is one of the current legal moves.
// A move that is not legal leaves the game untouched and returns false.
func (g *Game) AttemptMove(from, to int) bool {
	for _, m := range g.legalMoves {
		if m.From == from && m.To == to {
			g.applyMove(m)
			return true
		}
	}
	return false
}

func (g *Game) Square(index int) Square {
	if !ValidIndex(index) {
		return Square{}
	}
	return g.board[index]
}

func (g *Game) SideToMove() Color      { return g.sideToMove }
func (g *Game) IsKingUnderCheck() bool { return g.isKingUnderCheck }
func (g *Game) IsKingUnderMate() bool  { return g.isKingUnderMate }
func (g *Game) IsKingUnderDraw() bool  { return g.isKingUnderDraw }

func (g *Game) Phase() Phase {
	switch {
	case g.isKingUnderMate:
		return Checkmate
	case g.isKingUnderDraw:
		return Stalemate
	case g.isKingUnderCheck:
		return Check
	}
	return InProgress
}

// Winner is the side that delivered checkmate, or NoColor.
func (g *Game) Winner() Color {
	if g.isKingUnderMate {
		return g.sideToMove.Opponent()
	}
	return NoColor
}

func (g *Game) LastMove() (Move, bool) {
	if len(g.history) == 0 {
		return Move{}, false
	}
	return g.history[len(g.history)-1], true
}

func (g *Game) LegalMoves() []Move {
	return append([]Move(nil), g.legalMoves...)
}

func (g *Game) History() []Move {
	return append([]Move(nil), g.history...)
}

func (g *Game) Snapshot() GameState {
	state := GameState{
		Board:            g.board,
		SideToMove:       g.sideToMove,
		Phase:            g.Phase(),
		Winner:           g.Winner(),
		IsKingUnderCheck: g.isKingUnderCheck,
		IsKingUnderMate:  g.isKingUnderMate,
		IsKingUnderDraw:  g.isKingUnderDraw,
		LegalMoves:       append(make([]Move, 0, len(g.legalMoves)), g.legalMoves...),
		MoveHistory:      append(make([]Move, 0, len(g.history)), g.history...),
	}
	if last, ok := g.LastMove(); ok {
		state.LastMove = &SimpleMove{From: last.From, To: last.To}
	}
	return state
}

func (g *Game) applyMove(m Move) {
	mover := g.sideToMove

	// A pawn is only capturable en passant on the reply right after its double step.
	for i := range g.board {
		if g.board[i].Color == mover {
			g.board[i].IsEnPassantable = false
		}
	}

	piece := g.board[m.From]
	piece.HasMoved = true
	if piece.Kind == Pawn && Row(m.To) == mover.promotionRow() {
		piece.Kind = Queen
	}
	g.board[m.From] = Square{}
	g.board[m.To] = piece

	if m.IsCastling {
		g.moveCastlingRook(m)
	}
	if m.IsEnPassant {
		g.board[m.To-DirectionOffset(mover.forward())] = Square{}
	}
	if m.IsDoubleMovement && g.hasEnemyPawnBeside(m.To, mover) {
		g.board[m.To].IsEnPassantable = true
	}
	g.history = append(g.history, m)

	g.isKingUnderCheck = IsKingInCheck(&g.board, mover.Opponent())
	g.sideToMove = mover.Opponent()
	g.legalMoves = LegalMoves(&g.board, g.sideToMove)
	g.updateTerminal()
}

// refresh recomputes everything derived from the board for the side to move.
func (g *Game) refresh() {
	g.isKingUnderCheck = IsKingInCheck(&g.board, g.sideToMove)
	g.legalMoves = LegalMoves(&g.board, g.sideToMove)
	g.updateTerminal()
}

func (g *Game) updateTerminal() {
	noMoves := len(g.legalMoves) == 0
	g.isKingUnderMate = noMoves && g.isKingUnderCheck
	g.isKingUnderDraw = noMoves && !g.isKingUnderCheck
}

// moveCastlingRook brings the rook from the castling side onto the square the king crossed.
func (g *Game) moveCastlingRook(m Move) {
	d := Right
	if m.To < m.From {
		d = Left
	}
	offset := DirectionOffset(d)
	i := m.To
	for n := SquaresToEdge(m.To, d); n > 0; n-- {
		i += offset
		rook := g.board[i]
		if rook.Kind != Rook || rook.Color != g.sideToMove {
			continue
		}
		rook.HasMoved = true
		g.board[i] = Square{}
		g.board[m.To-offset] = rook
		return
	}
	panic(fmt.Sprintf("castling %s without a rook", m))
}

func (g *Game) hasEnemyPawnBeside(index int, mover Color) bool {
	for _, side := range [...]Direction{Left, Right} {
		if SquaresToEdge(index, side) == 0 {
			continue
		}
		s := g.board[index+DirectionOffset(side)]
		if s.Kind == Pawn && s.Color == mover.Opponent() {
			return true
		}
	}
	return false
}
