package connection

const (
	CodeSessionID uint8 = iota

	// Client asks for a fresh engine, optionally with
	// board dimensions
	CodeNewEngine

	// Client sends back its engine with the cell to fire at
	CodeTakeShot

	CodeInvalidSignal

	// The req msg is not json or has no "code" field
	CodeSignalAbsent
)

// Code is a pointer so that a missing field is told
// apart from code 0.
type Signal struct {
	Code *uint8 `json:"code"`
}

func (s Signal) IsAbsent() bool {
	return s.Code == nil
}
