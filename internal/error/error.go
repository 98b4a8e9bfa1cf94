package error

import "fmt"

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session with this id is nil, id: %s", sessionId)
}

func ErrInvalidPayload(code uint8, err error) error {
	return fmt.Errorf("payload of code %d could not be parsed: %w", code, err)
}

func ErrEngineMissing() error {
	return fmt.Errorf("the request does not carry a battleship engine")
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("invalid type of development stage: %s", stage)
}

func ErrStateFileNotFound(path string) error {
	return fmt.Errorf("no game state at %s; start one with the new command", path)
}
