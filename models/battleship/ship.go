package battleship

const (
	ShipCodeCarrier    Symbol = 'c'
	ShipCodeBattleship Symbol = 'b'
	ShipCodeCruiser    Symbol = 'r'
	ShipCodeSubmarine  Symbol = 's'
	ShipCodeDestroyer  Symbol = 'd'
)

type Ship struct {
	Name string `json:"name" yaml:"name"`
	Code Symbol `json:"code" yaml:"code"`
	Size int    `json:"size" yaml:"size"`
}

func NewShip(name string, code Symbol, size int) Ship {
	return Ship{Name: name, Code: code, Size: size}
}

var fleet = [...]Ship{
	{Name: "Carrier", Code: ShipCodeCarrier, Size: 5},
	{Name: "Battleship", Code: ShipCodeBattleship, Size: 4},
	{Name: "Cruiser", Code: ShipCodeCruiser, Size: 3},
	{Name: "Submarine", Code: ShipCodeSubmarine, Size: 3},
	{Name: "Destroyer", Code: ShipCodeDestroyer, Size: 2},
}

// Returns a fresh copy of the fleet in catalog order.
// Every game is played with this fleet.
func Fleet() []Ship {
	ships := make([]Ship, len(fleet))
	copy(ships, fleet[:])
	return ships
}

// Total number of cells the fleet occupies on a board
func FleetCells() int {
	var cells int
	for _, ship := range fleet {
		cells += ship.Size
	}
	return cells
}
