package model

import (
	"fmt"
	"sort"
	"testing"
)

// sq parses an algebraic square label such as "e4".
func sq(name string) int {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		panic(fmt.Sprintf("bad square %q", name))
	}
	return Index(BoardSize-int(name[1]-'0'), int(name[0]-'a'))
}

func white(k PieceKind) Square { return Square{Kind: k, Color: White, HasMoved: true} }
func black(k PieceKind) Square { return Square{Kind: k, Color: Black, HasMoved: true} }

func unmoved(s Square) Square {
	s.HasMoved = false
	return s
}

// position builds a board from square labels.
func position(pieces map[string]Square) Board {
	var b Board
	for name, s := range pieces {
		b[sq(name)] = s
	}
	return b
}

// play applies moves written as "e2e4" and fails the test on the first rejection.
func play(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if !g.AttemptMove(sq(m[:2]), sq(m[2:4])) {
			t.Fatalf("AttemptMove(%s) = false; want true (legal: %v)", m, names(g.LegalMoves()))
		}
	}
}

// names renders moves as sorted "e2e4" labels.
func names(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func hasMove(moves []Move, from, to string) bool {
	for _, m := range moves {
		if m.From == sq(from) && m.To == sq(to) {
			return true
		}
	}
	return false
}
