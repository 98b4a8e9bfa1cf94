package battleship

import "testing"

func TestFleetCatalog(t *testing.T) {
	ships := Fleet()
	codes := make(map[Symbol]bool)
	for _, ship := range ships {
		if ship.Code == OpenSymbol || ship.Code == MissSymbol || !ship.Code.IsLower() {
			t.Fatalf("invalid ship code: %s", ship.Code)
		}
		if codes[ship.Code] {
			t.Fatalf("duplicate ship code: %s", ship.Code)
		}
		codes[ship.Code] = true
	}

	// Changing the copy must not change the catalog
	ships[0].Size = 1
	if Fleet()[0].Size != 5 {
		t.Fatal("fleet catalog was changed through a copy")
	}
	if FleetCells() != 17 {
		t.Fatalf("expected 17 fleet cells\tgot: %d", FleetCells())
	}
}
