package battleship

type Direction uint8

const (
	DirectionHorizontal Direction = iota
	DirectionVertical
)

type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func NewPosition(row, column int) Position {
	return Position{Row: row, Column: column}
}

// Returns the position that is `offset` cells away in the
// given direction. Horizontal grows to the right and
// vertical grows downward.
func (p Position) Step(direction Direction, offset int) Position {
	if direction == DirectionHorizontal {
		return NewPosition(p.Row, p.Column+offset)
	}
	return NewPosition(p.Row+offset, p.Column)
}
