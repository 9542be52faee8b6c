package board

import "fmt"

// Move describes one legal action: a slide or a complete capture sequence.
// Orig and Dest are singleton bitboards; Capture is the union of every enemy
// piece leapt, possibly several bits for a multi-jump. CaptureKings is the
// subset of Capture that were kings, kept as a mask so undoing a mixed
// man-and-king capture restores the exact board. Crowns is set when a man
// finishes the move on its crowning row.
type Move struct {
	Orig    Bitboard
	Dest    Bitboard
	Capture Bitboard

	CaptureKings Bitboard
	Crowns       bool
}

func (m Move) IsCapture() bool {
	return m.Capture != 0
}

// CapturesKing reports whether any captured piece was a king.
func (m Move) CapturesKing() bool {
	return m.CaptureKings != 0
}

func (m Move) IsNull() bool {
	return m == Move{}
}

func (m Move) Equals(o Move) bool {
	return m == o
}

// String renders the move in display notation: "11-15" for a slide,
// "11x18" for a capture. Multi-jumps render their endpoints only; the
// capture path is implied by the position.
func (m Move) String() string {
	orig, err := m.Orig.FirstSet()
	if err != nil {
		return ""
	}
	dest, err := m.Dest.FirstSet()
	if err != nil {
		return ""
	}
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return orig.Notation() + sep + dest.Notation()
}

// Compact renders the zero-padded four-digit wire form used on the shell
// protocol, e.g. "1115" or "0914".
func (m Move) Compact() string {
	orig, err := m.Orig.FirstSet()
	if err != nil {
		return ""
	}
	dest, err := m.Dest.FirstSet()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%02d%02d", orig+1, dest+1)
}
