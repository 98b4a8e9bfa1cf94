package battleship

type ShipStatus struct {
	Ship `json:"base" yaml:"base"`
	Hits int `json:"hits" yaml:"hits"`
}

func NewShipStatus(ship Ship) ShipStatus {
	return ShipStatus{Ship: ship, Hits: 0}
}

// The caller makes sure this is called once per hit cell
func (ss *ShipStatus) RecordHit() {
	ss.Hits++
}

func (ss ShipStatus) IsSunk() bool {
	return ss.Hits == ss.Size
}

func (ss ShipStatus) IsAfloat() bool {
	return !ss.IsSunk()
}
