package game

import (
	"fmt"
	"strings"
)

// ToDisplayText turns the current state of the game into a displayable
// string: the board plus the turn, piece counts and result.
func (g *Game) ToDisplayText() string {
	var str strings.Builder
	str.WriteString(g.board.ToDisplayText())
	fmt.Fprintf(&str, "black: %d  white: %d\n", g.blackCount, g.whiteCount)
	if g.state == Unfinished {
		fmt.Fprintf(&str, "%s to move\n", g.onturn)
	} else {
		fmt.Fprintf(&str, "game over: %s\n", g.state)
	}
	return str.String()
}
