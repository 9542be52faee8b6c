package board

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/sulicat/checkers/position"
)

var (
	ErrEmptyBitboard = errors.New("empty bitboard")
)

// Bitboard is a mask over the 32 playable squares. Bit i corresponds to
// position.Square(i); every bit of the word is a real square, so shifts only
// have to guard against sideways wrap, never against the word's edges.
type Bitboard uint32

const (
	TotalSquares = position.TotalSquares

	All Bitboard = 0xFFFFFFFF

	// BlackKingsRow is Black's back row, where White men crown.
	BlackKingsRow Bitboard = 0x0000000F
	// WhiteKingsRow is White's back row, where Black men crown.
	WhiteKingsRow Bitboard = 0xF0000000
	// Edges holds the playable squares on the border of the board.
	Edges Bitboard = 0xF181818F

	// maskEvenRows covers rows 0, 2, 4 and 6. Dark squares on even rows sit
	// one file left of the dark squares on the rows above and below, which is
	// why the four diagonal shifts are 3 or 5 on one row parity and 4 on the
	// other.
	maskEvenRows Bitboard = 0x0F0F0F0F
	maskOddRows  Bitboard = 0xF0F0F0F0

	// maskFileA / maskFileH are the playable squares on the leftmost and
	// rightmost files, the only squares whose diagonal neighbor would wrap
	// to the far side of the board.
	maskFileA Bitboard = 0x01010101
	maskFileH Bitboard = 0x80808080
)

var maskCell [TotalSquares]Bitboard

func init() {
	for sq := position.Square(0); sq < TotalSquares; sq++ {
		maskCell[sq] = 1 << sq
	}
}

// ShiftNE moves every piece one square diagonally toward White's back row,
// rightward. Wrapping bits are masked out; bits pushed past row 7 fall off
// the top of the word.
func ShiftNE(bm Bitboard) Bitboard {
	return (bm&maskEvenRows)<<4 | (bm&maskOddRows&^maskFileH)<<5
}

func ShiftNW(bm Bitboard) Bitboard {
	return (bm&maskEvenRows&^maskFileA)<<3 | (bm&maskOddRows)<<4
}

func ShiftSE(bm Bitboard) Bitboard {
	return (bm&maskEvenRows)>>4 | (bm&maskOddRows&^maskFileH)>>3
}

func ShiftSW(bm Bitboard) Bitboard {
	return (bm&maskEvenRows&^maskFileA)>>5 | (bm&maskOddRows)>>4
}

func Union(bms ...Bitboard) Bitboard {
	var u Bitboard
	for _, bm := range bms {
		u |= bm
	}
	return u
}

func SquareBitboard(sq position.Square) Bitboard {
	return maskCell[sq]
}

func (bm *Bitboard) Set(sq position.Square) {
	*bm |= maskCell[sq]
}

func (bm *Bitboard) Unset(sq position.Square) {
	*bm &^= maskCell[sq]
}

func (bm Bitboard) Has(sq position.Square) bool {
	return bm&maskCell[sq] != 0
}

func (bm Bitboard) PopCount() int {
	return bits.OnesCount32(uint32(bm))
}

// LS1B returns the lowest set bit as a singleton Bitboard, or zero.
func (bm Bitboard) LS1B() Bitboard {
	return bm & -bm
}

// FirstSet returns the lowest set square. It fails with ErrEmptyBitboard on
// the empty bitboard; hitting that during move generation means the board
// invariants were already broken.
func (bm Bitboard) FirstSet() (position.Square, error) {
	if bm == 0 {
		return 0, ErrEmptyBitboard
	}
	return position.Square(bits.TrailingZeros32(uint32(bm))), nil
}

func (bm Bitboard) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for row := position.Square(7); row >= 0; row-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", row+1))
		for file := position.Square(0); file < 8; file++ {
			sq, ok := squareAt(row, file)
			if !ok {
				_, _ = builder.WriteString("   ")
				continue
			}
			if bm.Has(sq) {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	return builder.String()
}

// squareAt maps full-board coordinates to a playable square, reporting false
// for light squares.
func squareAt(row, file position.Square) (position.Square, bool) {
	if (row+file)%2 != 0 {
		return 0, false
	}
	return row*position.RowWidth + file/2, true
}
