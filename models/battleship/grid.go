package battleship

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	MinDimension     int = 10
	MaxDimension     int = 26
	DefaultDimension int = 10
)

// Symbol is the content of a single board cell. A ship code
// in lowercase is an unhit ship cell, the same code in
// uppercase is a hit ship cell.
type Symbol byte

const (
	OpenSymbol Symbol = '.'
	MissSymbol Symbol = '*'
)

func (s Symbol) Upper() Symbol {
	if s >= 'a' && s <= 'z' {
		return s - ('a' - 'A')
	}
	return s
}

func (s Symbol) IsLower() bool {
	return s >= 'a' && s <= 'z'
}

func (s Symbol) isASCII() bool {
	return s < utf8.RuneSelf
}

func (s Symbol) String() string {
	return string(rune(s))
}

// Symbols travel as one character strings so the board
// reads as text on both sides of the wire. Only ascii
// symbols are encodable.
func (s Symbol) MarshalJSON() ([]byte, error) {
	if !s.isASCII() {
		return nil, fmt.Errorf("symbol must be a single ascii character, got byte: %#x", byte(s))
	}
	return json.Marshal(s.String())
}

func (s *Symbol) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	return s.fromString(str)
}

func (s Symbol) MarshalYAML() (interface{}, error) {
	if !s.isASCII() {
		return nil, fmt.Errorf("symbol must be a single ascii character, got byte: %#x", byte(s))
	}
	return s.String(), nil
}

func (s *Symbol) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("symbol must be a scalar, line: %d", value.Line)
	}
	return s.fromString(value.Value)
}

func (s *Symbol) fromString(str string) error {
	if len(str) != 1 || !Symbol(str[0]).isASCII() {
		return fmt.Errorf("symbol must be a single ascii character, got: %q", str)
	}
	*s = Symbol(str[0])
	return nil
}

// Row-major board. Reads and writes go through
// BattleshipEngine.codeAt and setCodeAt.
type Grid [][]Symbol

// Creates a new grid with every cell open
func NewGrid(rows, columns int) Grid {
	grid := make(Grid, rows)
	for i := 0; i < rows; i++ {
		grid[i] = make([]Symbol, columns)
		for j := range grid[i] {
			grid[i][j] = OpenSymbol
		}
	}
	return grid
}

func (g Grid) Clone() Grid {
	clone := make(Grid, len(g))
	for i := range g {
		clone[i] = make([]Symbol, len(g[i]))
		copy(clone[i], g[i])
	}
	return clone
}

// PlayerView returns a copy of the grid with every unhit
// ship cell shown as open, i.e. what the player is allowed
// to see.
func (g Grid) PlayerView() Grid {
	view := g.Clone()
	for i := range view {
		for j, symbol := range view[i] {
			if symbol.IsLower() {
				view[i][j] = OpenSymbol
			}
		}
	}
	return view
}

func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, symbol := range row {
			sb.WriteByte(byte(symbol))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
