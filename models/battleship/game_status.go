package battleship

// GameStatus holds the shot counters of a game and the
// status of every ship in the fleet. It is the only place
// these counters are changed.
type GameStatus struct {
	Shots        int          `json:"shots" yaml:"shots"`
	Hits         int          `json:"hits" yaml:"hits"`
	Misses       int          `json:"misses" yaml:"misses"`
	ShipStatuses []ShipStatus `json:"ship_statuses" yaml:"ship_statuses"`
}

func NewGameStatus(ships []Ship) GameStatus {
	shipStatuses := make([]ShipStatus, 0, len(ships))
	for _, ship := range ships {
		shipStatuses = append(shipStatuses, NewShipStatus(ship))
	}

	return GameStatus{
		Shots:        0,
		Hits:         0,
		Misses:       0,
		ShipStatuses: shipStatuses,
	}
}

func (gs *GameStatus) recordShot() {
	gs.Shots++
}

func (gs *GameStatus) RecordMiss() {
	gs.recordShot()
	gs.Misses++
}

// Records a hit on the ship with the given code and returns
// its updated status. If no ship has this code, only the
// shot is counted and nil is returned.
func (gs *GameStatus) RecordHit(code Symbol) *ShipStatus {
	gs.recordShot()

	for i := range gs.ShipStatuses {
		if gs.ShipStatuses[i].Code == code {
			gs.ShipStatuses[i].RecordHit()
			gs.Hits++
			return &gs.ShipStatuses[i]
		}
	}
	return nil
}

func (gs GameStatus) AnyAfloat() bool {
	for _, shipStatus := range gs.ShipStatuses {
		if shipStatus.IsAfloat() {
			return true
		}
	}
	return false
}

func (gs GameStatus) AllSunk() bool {
	return !gs.AnyAfloat()
}

func (gs GameStatus) SunkCount() int {
	var sunk int
	for _, shipStatus := range gs.ShipStatuses {
		if shipStatus.IsSunk() {
			sunk++
		}
	}
	return sunk
}

func (gs GameStatus) Clone() GameStatus {
	clone := gs
	clone.ShipStatuses = make([]ShipStatus, len(gs.ShipStatuses))
	copy(clone.ShipStatuses, gs.ShipStatuses)
	return clone
}
