package model

import "fmt"

// Direction is one of the eight rays or one of the eight knight leaps.
// Up points toward row 0.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight

	UpUpLeft
	UpUpRight
	UpLeftLeft
	UpRightRight
	DownDownLeft
	DownDownRight
	DownLeftLeft
	DownRightRight

	directionCount
)

var (
	orthogonalDirections = []Direction{Up, Down, Left, Right}
	diagonalDirections   = []Direction{UpLeft, UpRight, DownLeft, DownRight}
	rayDirections        = []Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}
	knightDirections     = []Direction{
		UpUpLeft, UpUpRight, UpLeftLeft, UpRightRight,
		DownDownLeft, DownDownRight, DownLeftLeft, DownRightRight,
	}
)

func (d Direction) isKnightLeap() bool {
	return d >= UpUpLeft && d < directionCount
}

// DirectionOffset is the index delta of one step in d. It is only meaningful
// together with SquaresToEdge, which rules out wrapping across a file edge.
func DirectionOffset(d Direction) int {
	switch d {
	case Up:
		return -8
	case Down:
		return 8
	case Left:
		return -1
	case Right:
		return 1
	case UpLeft:
		return -9
	case UpRight:
		return -7
	case DownLeft:
		return 7
	case DownRight:
		return 9
	case UpUpLeft:
		return -17
	case UpUpRight:
		return -15
	case UpLeftLeft:
		return -10
	case UpRightRight:
		return -6
	case DownDownLeft:
		return 15
	case DownDownRight:
		return 17
	case DownLeftLeft:
		return 6
	case DownRightRight:
		return 10
	}
	panic(fmt.Sprintf("unknown direction %d", uint8(d)))
}

var edgeTable = buildEdgeTable()

func buildEdgeTable() [SquareCount][directionCount]int {
	var t [SquareCount][directionCount]int
	for i := 0; i < SquareCount; i++ {
		up := Row(i)
		down := BoardSize - 1 - Row(i)
		left := Column(i)
		right := BoardSize - 1 - Column(i)

		t[i][Up] = up
		t[i][Down] = down
		t[i][Left] = left
		t[i][Right] = right
		t[i][UpLeft] = min(up, left)
		t[i][UpRight] = min(up, right)
		t[i][DownLeft] = min(down, left)
		t[i][DownRight] = min(down, right)

		t[i][UpUpLeft] = leap(up >= 2 && left >= 1)
		t[i][UpUpRight] = leap(up >= 2 && right >= 1)
		t[i][UpLeftLeft] = leap(up >= 1 && left >= 2)
		t[i][UpRightRight] = leap(up >= 1 && right >= 2)
		t[i][DownDownLeft] = leap(down >= 2 && left >= 1)
		t[i][DownDownRight] = leap(down >= 2 && right >= 1)
		t[i][DownLeftLeft] = leap(down >= 1 && left >= 2)
		t[i][DownRightRight] = leap(down >= 1 && right >= 2)
	}
	return t
}

func leap(ok bool) int {
	if ok {
		return 1
	}
	return 0
}

// SquaresToEdge reports how many steps in d stay on the board from index.
// For knight leaps the answer is 1 when the leap lands on the board and 0 otherwise.
func SquaresToEdge(index int, d Direction) int {
	if d >= directionCount {
		panic(fmt.Sprintf("unknown direction %d", uint8(d)))
	}
	return edgeTable[index][d]
}
