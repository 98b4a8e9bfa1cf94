package cli

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

func runCLI(t *testing.T, statePath string, args ...string) (string, error) {
	t.Helper()

	cmd := BuildCLI(WithEngineOptions(mb.WithRand(rand.New(rand.NewSource(5)))))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--state", statePath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestBuildCLI(t *testing.T) {
	cmd := BuildCLI()
	assert.Equal(t, "battleship-cli", cmd.Use)

	commandNames := make(map[string]bool)
	for _, c := range cmd.Commands() {
		commandNames[c.Use] = true
	}
	assert.True(t, commandNames["new"])
	assert.True(t, commandNames["shoot"])
	assert.True(t, commandNames["show"])

	stateFlag := cmd.PersistentFlags().Lookup("state")
	require.NotNil(t, stateFlag)
	assert.Equal(t, "s", stateFlag.Shorthand)
	assert.Equal(t, defaultStatePath, stateFlag.DefValue)
}

func TestNewGame(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "game.yaml")

	out, err := runCLI(t, statePath, "new", "--rows", "12", "--columns", "16")
	require.NoError(t, err)
	assert.Contains(t, out, "new 12x16 game, fleet of 5 ships")

	engine, err := loadEngine(statePath)
	require.NoError(t, err)
	assert.Equal(t, 12, engine.Rows)
	assert.Equal(t, 16, engine.Columns)
	assert.Len(t, engine.Board, 12)
	assert.Len(t, engine.Board[0], 16)
	assert.Len(t, engine.GameStatus.ShipStatuses, 5)
	assert.Zero(t, engine.GameStatus.Shots)
}

func TestNewGameClampsDimensions(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "game.yaml")

	_, err := runCLI(t, statePath, "new", "--rows", "3", "--columns", "99")
	require.NoError(t, err)

	engine, err := loadEngine(statePath)
	require.NoError(t, err)
	assert.Equal(t, mb.DefaultDimension, engine.Rows)
	assert.Equal(t, mb.DefaultDimension, engine.Columns)
}

func TestShootAndShow(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "game.yaml")

	_, err := runCLI(t, statePath, "new")
	require.NoError(t, err)

	engine, err := loadEngine(statePath)
	require.NoError(t, err)

	var target, open mb.Position
	found := false
	for row := range engine.Board {
		for column, symbol := range engine.Board[row] {
			switch {
			case symbol.IsLower() && !found:
				target = mb.NewPosition(row, column)
				found = true
			case symbol == mb.OpenSymbol:
				open = mb.NewPosition(row, column)
			}
		}
	}
	require.True(t, found)

	out, err := runCLI(t, statePath, "shoot", "-r", fmt.Sprint(target.Row), "-c", fmt.Sprint(target.Column))
	require.NoError(t, err)
	assert.Contains(t, out, "HIT!")

	out, err = runCLI(t, statePath, "shoot", "-r", fmt.Sprint(open.Row), "-c", fmt.Sprint(open.Column))
	require.NoError(t, err)
	assert.Contains(t, out, "MISS")

	after, err := loadEngine(statePath)
	require.NoError(t, err)
	assert.Equal(t, engine.Board[target.Row][target.Column].Upper(), after.Board[target.Row][target.Column])
	assert.Equal(t, mb.MissSymbol, after.Board[open.Row][open.Column])
	assert.Equal(t, 2, after.GameStatus.Shots)
	assert.Equal(t, 1, after.GameStatus.Hits)
	assert.Equal(t, 1, after.GameStatus.Misses)

	out, err = runCLI(t, statePath, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "shots: 2\thits: 1\tmisses: 1")
	assert.Contains(t, out, "Carrier")
}

func TestShootOffBoard(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "game.yaml")

	_, err := runCLI(t, statePath, "new")
	require.NoError(t, err)

	out, err := runCLI(t, statePath, "shoot", "-r", "50", "-c", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "(50,0) is off the board")

	engine, err := loadEngine(statePath)
	require.NoError(t, err)
	assert.Zero(t, engine.GameStatus.Shots)
}

func TestShootRequiresCoordinates(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "game.yaml")

	_, err := runCLI(t, statePath, "new")
	require.NoError(t, err)

	_, err = runCLI(t, statePath, "shoot", "-r", "1")
	assert.Error(t, err)
}

func TestMissingStateFile(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "nothing-here.yaml")

	_, err := runCLI(t, statePath, "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start one with the new command")

	_, statErr := os.Stat(statePath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCorruptStateFile(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(statePath, []byte("board: [[\"xy\"]]\n"), 0o644))

	_, err := runCLI(t, statePath, "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse game state")
}
