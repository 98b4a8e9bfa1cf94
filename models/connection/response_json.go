package connection

import (
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespNewEngine struct {
	BattleshipEngine *mb.BattleshipEngine `json:"battleship_engine"`
	PlayerView       mb.Grid              `json:"player_view"`
}

type RespTakeShot struct {
	BattleshipEngine *mb.BattleshipEngine `json:"battleship_engine"`
	ShipStatus       *mb.ShipStatus       `json:"ship_status,omitempty"`
	Sunk             bool                 `json:"sunk"`
	GameOver         bool                 `json:"game_over"`
	PlayerView       mb.Grid              `json:"player_view"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
