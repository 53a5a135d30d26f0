package game

import (
	"errors"
	"fmt"
	"strings"
)

// Direction represents a move direction.
// The ordinal order is also the order in which search scans directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all directions in ordinal order.
var Directions = [4]Direction{Up, Right, Down, Left}

// ErrUnrecognizedInput is returned when boundary input cannot be mapped to a direction.
var ErrUnrecognizedInput = errors.New("unrecognized input")

// String returns the display label of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// ParseDirection maps user input to a direction.
// Accepts labels ("up", "u"), WASD keys, arrow names and the numeric keypad
// codes 8 (up), 6 (right), 2 (down) and 4 (left).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "w", "8", "k":
		return Up, nil
	case "right", "r", "d", "6", "l":
		return Right, nil
	case "down", "s", "2", "j":
		return Down, nil
	case "left", "a", "4", "h":
		return Left, nil
	}
	return 0, fmt.Errorf("game: direction %q: %w", s, ErrUnrecognizedInput)
}

// DirectionFromOrdinal maps an ordinal (0-3) to a direction.
func DirectionFromOrdinal(n int) (Direction, error) {
	d := Direction(n)
	if !d.Valid() {
		return 0, fmt.Errorf("game: direction ordinal %d: %w", n, ErrUnrecognizedInput)
	}
	return d, nil
}
