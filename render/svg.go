package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/sulicat/checkers/board"
	"github.com/sulicat/checkers/position"
)

const (
	cellSize    = 64
	pieceRadius = 24
	ringRadius  = 12
)

// SVG writes the position as an 8x8 vector board, Black's back row at the
// bottom. Men are filled discs; kings carry an inner ring.
func SVG(w io.Writer, b board.Board) {
	canvas := svg.New(w)
	canvas.Start(8*cellSize, 8*cellSize)
	canvas.Rect(0, 0, 8*cellSize, 8*cellSize, "fill:#EEEED2")

	for row := position.Square(0); row < 8; row++ {
		for file := position.Square(0); file < 8; file++ {
			x := int(file) * cellSize
			y := int(7-row) * cellSize
			sq, dark := squareAt(row, file)
			if !dark {
				continue
			}
			canvas.Rect(x, y, cellSize, cellSize, "fill:#769656")
			cx := x + cellSize/2
			cy := y + cellSize/2

			var fill, stroke string
			switch {
			case b.Pieces(board.SideBlack).Has(sq):
				fill, stroke = "#312E2B", "#111111"
			case b.Pieces(board.SideWhite).Has(sq):
				fill, stroke = "#F9F9F9", "#CCCCCC"
			default:
				continue
			}
			canvas.Circle(cx, cy, pieceRadius, "fill:"+fill+";stroke:"+stroke+";stroke-width:2")
			if b.Kings(board.SideBlack).Has(sq) || b.Kings(board.SideWhite).Has(sq) {
				canvas.Circle(cx, cy, ringRadius, "fill:none;stroke:#D4AF37;stroke-width:3")
			}
		}
	}
	canvas.End()
}

func squareAt(row, file position.Square) (position.Square, bool) {
	if (row+file)%2 != 0 {
		return 0, false
	}
	return row*position.RowWidth + file/2, true
}
