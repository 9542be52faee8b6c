package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sulicat/checkers/position"
)

var (
	ErrIllegalMove       = errors.New("illegal move")
	ErrMalformedMove     = errors.New("malformed move")
	ErrMalformedPosition = errors.New("malformed position")
)

// NewBoardFromDescriptor parses a position descriptor of the form
// "B:W18,19,21,25,K29:B5,6,9,11,K12": the side to move, then one piece list
// per color, K marking kings. The color lists may appear in either order.
func NewBoardFromDescriptor(desc string) (Board, error) {
	fields := strings.Split(strings.TrimSpace(desc), ":")
	if len(fields) != 3 {
		return Board{}, fmt.Errorf("%w: incorrect number of fields", ErrMalformedPosition)
	}

	var b Board
	switch fields[0] {
	case "B":
		b.turn = SideBlack
	case "W":
		b.turn = SideWhite
	default:
		return Board{}, fmt.Errorf("%w: invalid side to move %q", ErrMalformedPosition, fields[0])
	}

	seen := map[Side]bool{}
	for _, list := range fields[1:] {
		if list == "" {
			return Board{}, fmt.Errorf("%w: empty piece list", ErrMalformedPosition)
		}
		var s Side
		switch list[0] {
		case 'B':
			s = SideBlack
		case 'W':
			s = SideWhite
		default:
			return Board{}, fmt.Errorf("%w: invalid color %q", ErrMalformedPosition, string(list[0]))
		}
		if seen[s] {
			return Board{}, fmt.Errorf("%w: duplicate %s list", ErrMalformedPosition, s)
		}
		seen[s] = true

		pieces, kings := b.sideBitboards(s)
		if list[1:] == "" {
			continue
		}
		for _, item := range strings.Split(list[1:], ",") {
			king := strings.HasPrefix(item, "K")
			sq, err := position.NewSquareFromNotation(strings.TrimPrefix(item, "K"))
			if err != nil {
				return Board{}, fmt.Errorf("%w: bad square %q", ErrMalformedPosition, item)
			}
			cell := SquareBitboard(sq)
			if (b.blackPieces|b.whitePieces)&cell != 0 {
				return Board{}, fmt.Errorf("%w: square %s occupied twice", ErrMalformedPosition, sq)
			}
			*pieces |= cell
			if king {
				*kings |= cell
			}
		}
	}
	return b, nil
}

// Descriptor renders the position back into descriptor form, White list
// first, squares ascending.
func (b Board) Descriptor() string {
	builder := strings.Builder{}
	_, _ = builder.WriteString(b.turn.Symbol())
	for _, s := range []Side{SideWhite, SideBlack} {
		_, _ = builder.WriteString(":")
		_, _ = builder.WriteString(s.Symbol())
		first := true
		for bm := b.Pieces(s); bm != 0; bm &= bm - 1 {
			sq, _ := bm.FirstSet()
			if !first {
				_, _ = builder.WriteString(",")
			}
			first = false
			if b.Kings(s).Has(sq) {
				_, _ = builder.WriteString("K")
			}
			_, _ = builder.WriteString(sq.Notation())
		}
	}
	return builder.String()
}

// ParseMove resolves move text against the current position. Accepted forms:
// dashed slides ("11-15"), x-chained captures with any number of landing
// squares ("14x23", "14x23x32"), and the compact four-digit wire form
// ("1115"). Unknown squares fail with ErrMalformedMove; well-formed text
// that matches no legal move fails with ErrIllegalMove.
func (b *Board) ParseMove(text string) (Move, error) {
	legal := b.GenerateMoves()

	if len(text) == 4 && !strings.ContainsAny(text, "-x") {
		orig, err1 := position.NewSquareFromNotation(strings.TrimPrefix(text[:2], "0"))
		dest, err2 := position.NewSquareFromNotation(strings.TrimPrefix(text[2:], "0"))
		if err1 != nil || err2 != nil {
			return Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, text)
		}
		for _, mv := range legal {
			if mv.Orig == SquareBitboard(orig) && mv.Dest == SquareBitboard(dest) {
				return mv, nil
			}
		}
		return Move{}, fmt.Errorf("%w: %q", ErrIllegalMove, text)
	}

	capture := strings.ContainsRune(text, 'x')
	sep := "-"
	if capture {
		sep = "x"
	}
	parts := strings.Split(text, sep)
	if len(parts) < 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, text)
	}
	squares := make([]position.Square, 0, len(parts))
	for _, p := range parts {
		sq, err := position.NewSquareFromNotation(p)
		if err != nil {
			return Move{}, fmt.Errorf("%w: bad square %q", ErrMalformedMove, p)
		}
		squares = append(squares, sq)
	}

	orig := SquareBitboard(squares[0])
	dest := SquareBitboard(squares[len(squares)-1])
	for _, mv := range legal {
		if mv.Orig != orig || mv.Dest != dest {
			continue
		}
		if capture != mv.IsCapture() {
			continue
		}
		if capture && len(squares) > 2 && mv.Capture.PopCount() != len(squares)-1 {
			continue
		}
		return mv, nil
	}
	return Move{}, fmt.Errorf("%w: %q", ErrIllegalMove, text)
}
