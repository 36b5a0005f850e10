// Package move contains the Move value type: a starting square plus an
// ordered chain of landing squares. A move with more than one step is
// always a capture chain; a simple move has exactly one step.
package move

import (
	"fmt"
	"strings"
)

// A Coord is a 0-indexed board coordinate.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// A Move is a sequence of steps for a single piece. It is a plain value
// object; neither the constructor nor Add validates geometry. The move
// generator only emits legal moves, and the game validates any move
// handed to it before applying it.
type Move struct {
	start Coord
	steps []Coord
}

// NewMove creates a move starting at start with an optional initial
// step sequence.
func NewMove(start Coord, steps ...Coord) *Move {
	m := &Move{start: start}
	m.steps = append(m.steps, steps...)
	return m
}

// Add appends a step to the chain. It is a plain accumulator used while
// building capture chains.
func (m *Move) Add(step Coord) {
	m.steps = append(m.steps, step)
}

// Start returns the starting coordinate.
func (m *Move) Start() Coord {
	return m.start
}

// Steps returns the step chain. Callers must not mutate it.
func (m *Move) Steps() []Coord {
	return m.steps
}

// NumSteps returns the number of landing squares in the chain.
func (m *Move) NumSteps() int {
	return len(m.steps)
}

// Final returns the last landing square, or the start for an empty move.
func (m *Move) Final() Coord {
	if len(m.steps) == 0 {
		return m.start
	}
	return m.steps[len(m.steps)-1]
}

// IsCapture reports whether this move is a capture chain: its first
// step is a two-square jump. A chain longer than one step is always a
// capture.
func (m *Move) IsCapture() bool {
	if len(m.steps) == 0 {
		return false
	}
	if len(m.steps) > 1 {
		return true
	}
	dr := m.steps[0].Row - m.start.Row
	if dr < 0 {
		dr = -dr
	}
	return dr == 2
}

// Equals reports geometric equality: same start and same step chain.
func (m *Move) Equals(other *Move) bool {
	if other == nil || m.start != other.start || len(m.steps) != len(other.steps) {
		return false
	}
	for i := range m.steps {
		if m.steps[i] != other.steps[i] {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of the move.
func (m *Move) Copy() *Move {
	return NewMove(m.start, m.steps...)
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<start: %v steps: %v capture: %v>", m.start, m.steps, m.IsCapture())
}

// ShortDescription provides a short description, useful for logging or
// user display, e.g. "(2,1) > (3,2)".
func (m *Move) ShortDescription() string {
	parts := make([]string, 0, len(m.steps)+1)
	parts = append(parts, m.start.String())
	for _, s := range m.steps {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, " > ")
}
