package board

// A Color is one of the two sides in a game of draughts. Black moves
// first and advances toward higher row numbers.
type Color uint8

const (
	Black Color = iota
	White
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == Black {
		return White
	}
	return Black
}

// A Cell is the content of a single board square. Only dark squares can
// ever hold a piece; light squares exist for display purposes and stay
// empty for the whole game.
type Cell uint8

const (
	EmptyLight Cell = iota
	EmptyDark
	BlackMan
	WhiteMan
	BlackKing
	WhiteKing
)

// IsEmpty returns true for either empty shade.
func (c Cell) IsEmpty() bool {
	return c == EmptyLight || c == EmptyDark
}

// IsKing returns true if the cell holds a crowned piece.
func (c Cell) IsKing() bool {
	return c == BlackKing || c == WhiteKing
}

// ColorOf returns the owning color of the piece in the cell, if any.
func (c Cell) ColorOf() (Color, bool) {
	switch c {
	case BlackMan, BlackKing:
		return Black, true
	case WhiteMan, WhiteKing:
		return White, true
	}
	return 0, false
}

// Crowned returns the king cell for a man of the same color. Kings
// never demote, so crowning a king is the identity.
func (c Cell) Crowned() Cell {
	switch c {
	case BlackMan:
		return BlackKing
	case WhiteMan:
		return WhiteKing
	}
	return c
}

// ManFor returns the uncrowned piece cell for a color.
func ManFor(c Color) Cell {
	if c == Black {
		return BlackMan
	}
	return WhiteMan
}

// DisplayString returns the two-character glyph used by ToDisplayText:
// underscores for a light empty square, spaces for a dark one, b/w for
// men and B/W for kings.
func (c Cell) DisplayString() string {
	switch c {
	case EmptyLight:
		return "__"
	case EmptyDark:
		return "  "
	case BlackMan:
		return "b "
	case WhiteMan:
		return "w "
	case BlackKing:
		return "B "
	case WhiteKing:
		return "W "
	}
	return "??"
}
