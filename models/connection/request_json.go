package connection

import (
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

// Both dimensions are optional. Missing or out of range
// values fall back to the engine defaults.
type ReqNewEngine struct {
	Rows    *int `json:"rows,omitempty"`
	Columns *int `json:"columns,omitempty"`
}

// The client holds the engine between shots and sends it
// back with every shot.
type ReqTakeShot struct {
	BattleshipEngine *mb.BattleshipEngine `json:"battleship_engine"`
	Row              int                  `json:"row"`
	Column           int                  `json:"column"`
}
