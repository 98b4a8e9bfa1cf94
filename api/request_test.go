package api

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/saeidalz13/battleship-solo/internal/metrics"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

func intPtr(i int) *int {
	return &i
}

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestHandleNewEngine(t *testing.T) {
	tests := []struct {
		name            string
		reqPayload      []byte
		expectedRows    int
		expectedColumns int
		expectErr       bool
	}{
		{
			name:            "no dimensions",
			reqPayload:      []byte(`{"code":1}`),
			expectedRows:    10,
			expectedColumns: 10,
		},
		{
			name:            "valid dimensions",
			reqPayload:      []byte(`{"code":1,"payload":{"rows":12,"columns":18}}`),
			expectedRows:    12,
			expectedColumns: 18,
		},
		{
			name:            "invalid columns fall back to rows",
			reqPayload:      []byte(`{"code":1,"payload":{"rows":15,"columns":40}}`),
			expectedRows:    15,
			expectedColumns: 15,
		},
		{
			name:       "malformed payload",
			reqPayload: []byte(`{"code":1,"payload":{"rows":"ten"}}`),
			expectErr:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resp := NewRequest(test.reqPayload).HandleNewEngine(mb.WithRand(rand.New(rand.NewSource(1))))

			if resp.Code != mc.CodeNewEngine {
				t.Fatalf("expected code: %d\tgot: %d", mc.CodeNewEngine, resp.Code)
			}
			if test.expectErr {
				if resp.Error == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if resp.Error != nil {
				t.Fatalf("error: %s", resp.Error.ErrorDetails)
			}

			engine := resp.Payload.BattleshipEngine
			if engine.Rows != test.expectedRows || engine.Columns != test.expectedColumns {
				t.Fatalf("expected: %dx%d\tgot: %dx%d", test.expectedRows, test.expectedColumns, engine.Rows, engine.Columns)
			}
			for _, row := range resp.Payload.PlayerView {
				for _, symbol := range row {
					if symbol != mb.OpenSymbol {
						t.Fatalf("fresh player view must be all open, got: %s", symbol)
					}
				}
			}
		})
	}
}

func TestHandleTakeShot(t *testing.T) {
	engine := mb.NewBattleshipEngine(10, 10, mb.WithRand(rand.New(rand.NewSource(5))))

	var shipCell, openCell mb.Position
	for row := range engine.Board {
		for column, symbol := range engine.Board[row] {
			if symbol.IsLower() {
				shipCell = mb.NewPosition(row, column)
			} else {
				openCell = mb.NewPosition(row, column)
			}
		}
	}

	tests := []struct {
		name            string
		row             int
		column          int
		expectedOutcome string
		expectedShots   int
		expectStatus    bool
	}{
		{name: "hit", row: shipCell.Row, column: shipCell.Column, expectedOutcome: metrics.ShotOutcomeHit, expectedShots: 1, expectStatus: true},
		{name: "miss", row: openCell.Row, column: openCell.Column, expectedOutcome: metrics.ShotOutcomeMiss, expectedShots: 1},
		{name: "off board", row: 10, column: 0, expectedOutcome: metrics.ShotOutcomeIgnored, expectedShots: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := mc.Message[mc.ReqTakeShot]{Code: mc.CodeTakeShot, Payload: mc.ReqTakeShot{
				BattleshipEngine: engine.Clone(),
				Row:              test.row,
				Column:           test.column,
			}}

			resp, outcome := NewRequest(mustMarshal(t, req)).HandleTakeShot()
			if resp.Error != nil {
				t.Fatalf("error: %s", resp.Error.ErrorDetails)
			}
			if outcome != test.expectedOutcome {
				t.Fatalf("expected outcome: %s\tgot: %s", test.expectedOutcome, outcome)
			}
			if resp.Payload.BattleshipEngine.GameStatus.Shots != test.expectedShots {
				t.Fatalf("expected shots: %d\tgot: %d", test.expectedShots, resp.Payload.BattleshipEngine.GameStatus.Shots)
			}
			if (resp.Payload.ShipStatus != nil) != test.expectStatus {
				t.Fatalf("expected ship status: %t\tgot: %+v", test.expectStatus, resp.Payload.ShipStatus)
			}
		})
	}
}

func TestHandleTakeShotInvalid(t *testing.T) {
	tests := []struct {
		name       string
		reqPayload []byte
	}{
		{name: "no engine", reqPayload: []byte(`{"code":2,"payload":{"row":1,"column":1}}`)},
		{name: "bad json", reqPayload: []byte(`{"code":2,"payload":{"row":"one"}}`)},
		{name: "bad board symbol", reqPayload: []byte(`{"code":2,"payload":{"battleship_engine":{"rows":10,"board":[["ab"]]}}}`)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resp, outcome := NewRequest(test.reqPayload).HandleTakeShot()
			if resp.Error == nil {
				t.Fatal("expected an error")
			}
			if outcome != metrics.ShotOutcomeIgnored {
				t.Fatalf("expected outcome: %s\tgot: %s", metrics.ShotOutcomeIgnored, outcome)
			}
		})
	}
}
