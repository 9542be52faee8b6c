package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/sulicat/checkers/position"
)

// Dump renders the position as a plain ASCII grid, Black's back row at the
// bottom, with the row numbers 1..8 down the left edge and a piece letter
// (b, B, w, W) or a blank on each dark square.
func (b Board) Dump() string {
	builder := strings.Builder{}
	for row := position.Square(7); row >= 0; row-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", row+1))
		for file := position.Square(0); file < 8; file++ {
			sq, ok := squareAt(row, file)
			if !ok {
				_, _ = builder.WriteString("   |")
				continue
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", b.symbolAt(sq)))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+")
	return builder.String()
}

// Draw renders the position with colored cells. With rotate set the board is
// shown from White's seat.
func (b Board) Draw(rotate bool) string {
	dark := color.New(color.FgWhite, color.BgGreen)
	light := color.New(color.FgBlack, color.BgHiWhite)

	builder := strings.Builder{}
	for i := 0; i < 8; i++ {
		row := position.Square(7 - i)
		if rotate {
			row = position.Square(i)
		}
		_, _ = builder.WriteString(fmt.Sprintf(" %d ", row+1))
		for j := 0; j < 8; j++ {
			file := position.Square(j)
			if rotate {
				file = position.Square(7 - j)
			}
			sq, ok := squareAt(row, file)
			if !ok {
				_, _ = builder.WriteString(light.Sprint("   "))
				continue
			}
			_, _ = builder.WriteString(dark.Sprintf(" %s ", b.symbolAt(sq)))
		}
		_, _ = builder.WriteString("\n")
	}
	return builder.String()
}

func (b Board) symbolAt(sq position.Square) string {
	switch {
	case b.blackKings.Has(sq):
		return "B"
	case b.blackPieces.Has(sq):
		return "b"
	case b.whiteKings.Has(sq):
		return "W"
	case b.whitePieces.Has(sq):
		return "w"
	default:
		return " "
	}
}
