package battleship

import (
	"math/rand"

	"github.com/saeidalz13/battleship-solo/internal/cryptorand"
)

// Random placement practically never needs more than a few
// dozen tries per ship, even on the smallest board. Past this
// many, the remaining candidates are scanned in order.
const maxPlacementAttempts int = 10000

// BattleshipEngine is the whole state of one game. It holds no
// hidden fields so it can leave the process (json or yaml),
// come back unchanged and be played on with TakeShot.
type BattleshipEngine struct {
	Rows       int        `json:"rows" yaml:"rows"`
	Columns    int        `json:"columns" yaml:"columns"`
	Ships      []Ship     `json:"ships" yaml:"ships"`
	Board      Grid       `json:"board" yaml:"board"`
	GameStatus GameStatus `json:"game_status" yaml:"game_status"`
}

type engineConfig struct {
	rng *rand.Rand
}

type EngineOption func(*engineConfig)

// Injects the random source used for fleet placement.
// By default a new crypto backed source is used per engine.
func WithRand(rng *rand.Rand) EngineOption {
	return func(c *engineConfig) {
		c.rng = rng
	}
}

// Creates a new engine with the fleet randomly placed. A zero
// or out of range rows falls back to DefaultDimension, and a
// zero or out of range columns falls back to the resolved rows.
func NewBattleshipEngine(rows, columns int, opts ...EngineOption) *BattleshipEngine {
	var cfg engineConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = cryptorand.New()
	}

	rows = clampDimension(rows, DefaultDimension)
	columns = clampDimension(columns, rows)
	ships := Fleet()

	engine := &BattleshipEngine{
		Rows:       rows,
		Columns:    columns,
		Ships:      ships,
		Board:      NewGrid(rows, columns),
		GameStatus: NewGameStatus(ships),
	}
	engine.placeShips(cfg.rng)
	return engine
}

// Fires at the given cell. On a hit, a copy of the hit ship's
// status is returned. A miss or a shot off the board returns nil.
// Shots off the board change nothing.
func (e *BattleshipEngine) TakeShot(row, column int) *ShipStatus {
	position := NewPosition(row, column)
	code, onBoard := e.codeAt(position)
	if !onBoard {
		return nil
	}

	if e.isUnhitShipCode(code) {
		e.setCodeAt(position, code.Upper())
		shipStatus := e.GameStatus.RecordHit(code)
		if shipStatus == nil {
			return nil
		}
		status := *shipStatus
		return &status
	}

	// Open cell, previous miss or a ship cell that is already hit.
	// All of them count as a miss, only an open cell is marked.
	if code == OpenSymbol {
		e.setCodeAt(position, MissSymbol)
	}
	e.GameStatus.RecordMiss()
	return nil
}

func (e *BattleshipEngine) IsGameOver() bool {
	return e.GameStatus.AllSunk()
}

func (e *BattleshipEngine) Clone() *BattleshipEngine {
	clone := *e
	clone.Ships = make([]Ship, len(e.Ships))
	copy(clone.Ships, e.Ships)
	clone.Board = e.Board.Clone()
	clone.GameStatus = e.GameStatus.Clone()
	return &clone
}

func (e *BattleshipEngine) isUnhitShipCode(code Symbol) bool {
	for _, ship := range e.Ships {
		if ship.Code == code {
			return true
		}
	}
	return false
}

func (e *BattleshipEngine) placeShips(rng *rand.Rand) {
	for _, ship := range e.Ships {
		if !e.placeShipRandomly(ship, rng) {
			e.placeShipByScan(ship)
		}
	}
}

func (e *BattleshipEngine) placeShipRandomly(ship Ship, rng *rand.Rand) bool {
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		direction := DirectionHorizontal
		if rng.Intn(2) == 1 {
			direction = DirectionVertical
		}
		anchor := NewPosition(rng.Intn(e.Rows), rng.Intn(e.Columns))

		if e.shipWillFit(ship, anchor, direction) {
			e.placeShip(ship, anchor, direction)
			return true
		}
	}
	return false
}

func (e *BattleshipEngine) placeShipByScan(ship Ship) bool {
	for row := 0; row < e.Rows; row++ {
		for column := 0; column < e.Columns; column++ {
			for _, direction := range []Direction{DirectionHorizontal, DirectionVertical} {
				anchor := NewPosition(row, column)
				if e.shipWillFit(ship, anchor, direction) {
					e.placeShip(ship, anchor, direction)
					return true
				}
			}
		}
	}
	return false
}

// A ship never ends on the last row or column: the bound check
// rejects anchor+size == limit as well.
func (e *BattleshipEngine) shipWillFit(ship Ship, anchor Position, direction Direction) bool {
	if direction == DirectionHorizontal {
		if anchor.Column+ship.Size >= e.Columns {
			return false
		}
	} else {
		if anchor.Row+ship.Size >= e.Rows {
			return false
		}
	}

	for offset := 0; offset < ship.Size; offset++ {
		if !e.isCellFree(anchor.Step(direction, offset)) {
			return false
		}
	}
	return true
}

func (e *BattleshipEngine) placeShip(ship Ship, anchor Position, direction Direction) {
	for offset := 0; offset < ship.Size; offset++ {
		e.setCodeAt(anchor.Step(direction, offset), ship.Code)
	}
}

func (e *BattleshipEngine) isCellFree(position Position) bool {
	code, onBoard := e.codeAt(position)
	return onBoard && code == OpenSymbol
}

// Every board read and write is bound checked here. The grid
// itself is checked too since it may have come from a client.
func (e *BattleshipEngine) isPositionOnBoard(position Position) bool {
	if position.Row < 0 || position.Column < 0 {
		return false
	}
	if position.Row >= e.Rows || position.Column >= e.Columns {
		return false
	}
	return position.Row < len(e.Board) && position.Column < len(e.Board[position.Row])
}

func (e *BattleshipEngine) codeAt(position Position) (Symbol, bool) {
	if !e.isPositionOnBoard(position) {
		return 0, false
	}
	return e.Board[position.Row][position.Column], true
}

func (e *BattleshipEngine) setCodeAt(position Position, code Symbol) {
	if e.isPositionOnBoard(position) {
		e.Board[position.Row][position.Column] = code
	}
}

func clampDimension(dimension, fallback int) int {
	if dimension < MinDimension || dimension > MaxDimension {
		return fallback
	}
	return dimension
}
