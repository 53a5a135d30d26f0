package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidGrid is returned when a grid description cannot be parsed.
var ErrInvalidGrid = errors.New("invalid grid")

// ParseGrid parses a grid written as four rows separated by '/' or newlines,
// each with four cells separated by spaces or commas, e.g.
// "2 2 0 0/0 0 0 0/0 0 0 0/0 0 0 4".
func ParseGrid(s string) (Grid, error) {
	var g Grid

	rows := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '\n' || r == ';'
	})
	if len(rows) != Size {
		return g, fmt.Errorf("game: %d rows, want %d: %w", len(rows), Size, ErrInvalidGrid)
	}

	for r, row := range rows {
		cells := strings.FieldsFunc(row, func(c rune) bool {
			return c == ' ' || c == ',' || c == '\t'
		})
		if len(cells) != Size {
			return g, fmt.Errorf("game: row %d has %d cells, want %d: %w", r+1, len(cells), Size, ErrInvalidGrid)
		}

		for c, cell := range cells {
			v, err := strconv.Atoi(cell)
			if err != nil {
				return g, fmt.Errorf("game: row %d col %d: %q is not a number: %w", r+1, c+1, cell, ErrInvalidGrid)
			}
			if !validTile(v) {
				return g, fmt.Errorf("game: row %d col %d: %d is not a tile value: %w", r+1, c+1, v, ErrInvalidGrid)
			}
			g[r][c] = v
		}
	}

	return g, nil
}

// validTile reports whether v is 0 or a power of two >= 2.
func validTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// FormatGrid writes g in the form accepted by ParseGrid.
func FormatGrid(g Grid) string {
	var sb strings.Builder
	for r := range Size {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(g[r][c]))
		}
	}
	return sb.String()
}

// String renders the grid as an aligned table, one row per line.
func (g Grid) String() string {
	var sb strings.Builder
	for r := range Size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if g[r][c] == 0 {
				fmt.Fprintf(&sb, "%5s", ".")
				continue
			}
			fmt.Fprintf(&sb, "%5d", g[r][c])
		}
	}
	return sb.String()
}
