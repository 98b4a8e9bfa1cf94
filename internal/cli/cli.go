// Package cli is a terminal shell around the battleship engine.
//
// The engine is kept in a yaml state file between commands:
//
//	battleship-cli new --rows 12 --columns 16
//	battleship-cli shoot --row 3 --column 7
//	battleship-cli show [--reveal]
//
// Every command loads the engine, calls it and writes it back.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

const defaultStatePath = "battleship.yaml"

type options struct {
	statePath   string
	engineOpts  []mb.EngineOption
	rows        int
	columns     int
	row         int
	column      int
	revealShips bool
}

type Option func(*options)

// Options passed to the engine created by the new command
func WithEngineOptions(opts ...mb.EngineOption) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

func BuildCLI(opts ...Option) *cobra.Command {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	rootCmd := &cobra.Command{
		Use:           "battleship-cli",
		Short:         "Single player battleship in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&o.statePath, "state", "s", defaultStatePath, "game state file")

	rootCmd.AddCommand(newCmd(o), shootCmd(o), showCmd(o))
	return rootCmd
}

func newCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new game with a randomly placed fleet",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := mb.NewBattleshipEngine(o.rows, o.columns, o.engineOpts...)
			if err := saveEngine(o.statePath, engine); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "new %dx%d game, fleet of %d ships\n", engine.Rows, engine.Columns, len(engine.Ships))
			printBoard(out, engine.Board.PlayerView())
			return nil
		},
	}
	cmd.Flags().IntVar(&o.rows, "rows", 0, fmt.Sprintf("board rows [%d..%d]", mb.MinDimension, mb.MaxDimension))
	cmd.Flags().IntVar(&o.columns, "columns", 0, fmt.Sprintf("board columns [%d..%d], defaults to rows", mb.MinDimension, mb.MaxDimension))
	return cmd
}

func shootCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shoot",
		Short: "Fire at a cell",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngine(o.statePath)
			if err != nil {
				return err
			}

			shotsBefore := engine.GameStatus.Shots
			shipStatus := engine.TakeShot(o.row, o.column)
			if err := saveEngine(o.statePath, engine); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case shipStatus != nil && shipStatus.IsSunk():
				fmt.Fprintf(out, "%s SUNK!\n", strings.ToUpper(shipStatus.Name))
			case shipStatus != nil:
				fmt.Fprintf(out, "%s HIT!\n", strings.ToUpper(shipStatus.Name))
			case engine.GameStatus.Shots == shotsBefore:
				fmt.Fprintf(out, "(%d,%d) is off the board\n", o.row, o.column)
			default:
				fmt.Fprintln(out, "MISS")
			}

			printBoard(out, engine.Board.PlayerView())
			if engine.IsGameOver() {
				fmt.Fprintf(out, "fleet destroyed in %d shots\n", engine.GameStatus.Shots)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&o.row, "row", "r", 0, "row to fire at")
	cmd.Flags().IntVarP(&o.column, "column", "c", 0, "column to fire at")
	_ = cmd.MarkFlagRequired("row")
	_ = cmd.MarkFlagRequired("column")
	return cmd
}

func showCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the board and the fleet status",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngine(o.statePath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			board := engine.Board.PlayerView()
			if o.revealShips {
				board = engine.Board
			}
			printBoard(out, board)
			printStatus(out, engine.GameStatus)
			return nil
		},
	}
	cmd.Flags().BoolVar(&o.revealShips, "reveal", false, "show unhit ships too")
	return cmd
}

func loadEngine(path string) (*mb.BattleshipEngine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cerr.ErrStateFileNotFound(path)
		}
		return nil, err
	}

	var engine mb.BattleshipEngine
	if err := yaml.Unmarshal(data, &engine); err != nil {
		return nil, fmt.Errorf("failed to parse game state %s: %w", path, err)
	}
	return &engine, nil
}

func saveEngine(path string, engine *mb.BattleshipEngine) error {
	data, err := yaml.Marshal(engine)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func printBoard(out io.Writer, board mb.Grid) {
	var header strings.Builder
	header.WriteString("   ")
	for column := 0; len(board) > 0 && column < len(board[0]); column++ {
		header.WriteByte(byte('0' + column%10))
	}
	fmt.Fprintln(out, header.String())

	for row, line := range strings.Split(strings.TrimSuffix(board.String(), "\n"), "\n") {
		fmt.Fprintf(out, "%2d %s\n", row, line)
	}
}

func printStatus(out io.Writer, gs mb.GameStatus) {
	fmt.Fprintf(out, "shots: %d\thits: %d\tmisses: %d\n", gs.Shots, gs.Hits, gs.Misses)
	for _, shipStatus := range gs.ShipStatuses {
		state := "afloat"
		if shipStatus.IsSunk() {
			state = "sunk"
		}
		fmt.Fprintf(out, "%-10s %d/%d %s\n", shipStatus.Name, shipStatus.Hits, shipStatus.Size, state)
	}
}
