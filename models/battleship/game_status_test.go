package battleship

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGameStatusRecordHit(t *testing.T) {
	gs := NewGameStatus(Fleet())

	status := gs.RecordHit(ShipCodeCruiser)
	if status == nil {
		t.Fatal("expected cruiser status")
	}
	if status.Name != "Cruiser" || status.Hits != 1 {
		t.Fatalf("unexpected status: %+v", status)
	}
	if gs.Shots != 1 || gs.Hits != 1 || gs.Misses != 0 {
		t.Fatalf("unexpected counters: %+v", gs)
	}

	// The returned status is the tracked one
	if gs.ShipStatuses[2].Hits != 1 {
		t.Fatalf("expected tracked cruiser hits: 1\tgot: %d", gs.ShipStatuses[2].Hits)
	}
}

func TestGameStatusRecordHitUnknownCode(t *testing.T) {
	gs := NewGameStatus(Fleet())

	if status := gs.RecordHit('z'); status != nil {
		t.Fatalf("expected nil status\tgot: %+v", status)
	}
	if gs.Shots != 1 || gs.Hits != 0 || gs.Misses != 0 {
		t.Fatalf("unexpected counters: %+v", gs)
	}
}

func TestGameStatusRecordMiss(t *testing.T) {
	gs := NewGameStatus(Fleet())
	gs.RecordMiss()
	gs.RecordMiss()

	if gs.Shots != 2 || gs.Misses != 2 || gs.Hits != 0 {
		t.Fatalf("unexpected counters: %+v", gs)
	}
}

func TestGameStatusSinking(t *testing.T) {
	gs := NewGameStatus([]Ship{NewShip("Destroyer", ShipCodeDestroyer, 2), NewShip("Cruiser", ShipCodeCruiser, 3)})

	gs.RecordHit(ShipCodeDestroyer)
	if gs.SunkCount() != 0 || !gs.AnyAfloat() {
		t.Fatalf("nothing should be sunk: %+v", gs.ShipStatuses)
	}

	destroyer := gs.RecordHit(ShipCodeDestroyer)
	if !destroyer.IsSunk() || destroyer.IsAfloat() {
		t.Fatalf("expected destroyer sunk: %+v", destroyer)
	}
	if gs.SunkCount() != 1 || gs.AllSunk() {
		t.Fatalf("expected one sunk ship: %+v", gs.ShipStatuses)
	}

	for i := 0; i < 3; i++ {
		gs.RecordHit(ShipCodeCruiser)
	}
	if !gs.AllSunk() {
		t.Fatalf("expected all sunk: %+v", gs.ShipStatuses)
	}
}

func TestShipStatusJSON(t *testing.T) {
	status := NewShipStatus(NewShip("Submarine", ShipCodeSubmarine, 3))
	status.RecordHit()

	data, err := json.Marshal(status)
	if err != nil {
		t.Fatal(err)
	}

	want := `{"base":{"name":"Submarine","code":"s","size":3},"hits":1}`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Fatalf("unexpected json (-want +got)\n%s", diff)
	}
}
