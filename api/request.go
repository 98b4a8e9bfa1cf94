package api

import (
	"encoding/json"
	"log"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	"github.com/saeidalz13/battleship-solo/internal/metrics"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

type RequestHandler interface {
	HandleNewEngine(engineOpts ...mb.EngineOption) mc.Message[mc.RespNewEngine]
	HandleTakeShot() (mc.Message[mc.RespTakeShot], string)
}

// Every incoming valid request will have this structure
// The request then is handled in line with RequestHandler interface
type Request struct {
	payload []byte
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload ...[]byte) *Request {
	if len(payload) > 1 {
		log.Println("cannot accept more than one payload")
		return nil
	}

	req := Request{}
	if len(payload) != 0 {
		req.payload = payload[0]
	}
	return &req
}

// Builds a fresh engine. A payload without dimensions, or with
// invalid ones, still gets an engine with default dimensions.
func (r *Request) HandleNewEngine(engineOpts ...mb.EngineOption) mc.Message[mc.RespNewEngine] {
	var reqNewEngine mc.Message[mc.ReqNewEngine]
	resp := mc.NewMessage[mc.RespNewEngine](mc.CodeNewEngine)

	if len(r.payload) != 0 {
		if err := json.Unmarshal(r.payload, &reqNewEngine); err != nil {
			resp.AddError(cerr.ErrInvalidPayload(mc.CodeNewEngine, err).Error(), "failed to create engine")
			return resp
		}
	}

	var rows, columns int
	if reqNewEngine.Payload.Rows != nil {
		rows = *reqNewEngine.Payload.Rows
	}
	if reqNewEngine.Payload.Columns != nil {
		columns = *reqNewEngine.Payload.Columns
	}

	engine := mb.NewBattleshipEngine(rows, columns, engineOpts...)
	resp.AddPayload(mc.RespNewEngine{
		BattleshipEngine: engine,
		PlayerView:       engine.Board.PlayerView(),
	})
	return resp
}

// Resolves a shot against the engine the client sent back. The
// updated engine is returned to the client, which keeps it for
// the next shot. The second return value is the shot outcome
// as a metrics label.
func (r *Request) HandleTakeShot() (mc.Message[mc.RespTakeShot], string) {
	var reqTakeShot mc.Message[mc.ReqTakeShot]
	resp := mc.NewMessage[mc.RespTakeShot](mc.CodeTakeShot)

	if err := json.Unmarshal(r.payload, &reqTakeShot); err != nil {
		resp.AddError(cerr.ErrInvalidPayload(mc.CodeTakeShot, err).Error(), "failed to take shot")
		return resp, metrics.ShotOutcomeIgnored
	}

	engine := reqTakeShot.Payload.BattleshipEngine
	if engine == nil {
		resp.AddError(cerr.ErrEngineMissing().Error(), "failed to take shot")
		return resp, metrics.ShotOutcomeIgnored
	}

	shotsBefore := engine.GameStatus.Shots
	shipStatus := engine.TakeShot(reqTakeShot.Payload.Row, reqTakeShot.Payload.Column)

	outcome := metrics.ShotOutcomeMiss
	switch {
	case shipStatus != nil:
		outcome = metrics.ShotOutcomeHit
	case engine.GameStatus.Shots == shotsBefore:
		outcome = metrics.ShotOutcomeIgnored
	}

	resp.AddPayload(mc.RespTakeShot{
		BattleshipEngine: engine,
		ShipStatus:       shipStatus,
		Sunk:             shipStatus != nil && shipStatus.IsSunk(),
		GameOver:         engine.IsGameOver(),
		PlayerView:       engine.Board.PlayerView(),
	})
	return resp, outcome
}
