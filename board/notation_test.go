package board

import (
	"errors"
	"testing"
)

func TestDescriptor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		desc    string
		want    string
		wantErr error
	}{
		{desc: "B:W18,19,21,25,K29:B5,6,9,11,K12", want: "B:W18,19,21,25,K29:B5,6,9,11,K12"},
		{desc: "W:B5,6,9,11,K12:W18,19,21,25,K29", want: "W:W18,19,21,25,K29:B5,6,9,11,K12"},
		{desc: "B:W19:B14", want: "B:W19:B14"},
		{desc: "W:W:B5", want: "W:W:B5"},
		{desc: "B:W:B", want: "B:W:B"},
		{desc: "", wantErr: ErrMalformedPosition},
		{desc: "B:W18", wantErr: ErrMalformedPosition},
		{desc: "B:W18:B5:W6", wantErr: ErrMalformedPosition},
		{desc: "X:W18:B5", wantErr: ErrMalformedPosition},
		{desc: "B:Q18:B5", wantErr: ErrMalformedPosition},
		{desc: "B:W18:B0", wantErr: ErrMalformedPosition},
		{desc: "B:W18:B33", wantErr: ErrMalformedPosition},
		{desc: "B:W18:Bfive", wantErr: ErrMalformedPosition},
		{desc: "B:W18:B18", wantErr: ErrMalformedPosition},
		{desc: "B:W18,18:B5", wantErr: ErrMalformedPosition},
		{desc: "B:W18:W5", wantErr: ErrMalformedPosition},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()
			b, err := NewBoardFromDescriptor(tt.desc)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := b.Descriptor(); got != tt.want {
				t.Errorf("unexpected descriptor: got=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestParseMove(t *testing.T) {
	t.Parallel()
	start := NewBoard()
	jump, err := NewBoardFromDescriptor("B:W19,28:B14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		board   Board
		text    string
		want    string
		wantErr error
	}{
		{name: "slide", board: start, text: "11-15", want: "11-15"},
		{name: "slide compact", board: start, text: "1115", want: "11-15"},
		{name: "slide compact padded", board: start, text: "0913", want: "9-13"},
		{name: "jump endpoints", board: jump, text: "14x32", want: "14x32"},
		{name: "jump chain", board: jump, text: "14x23x32", want: "14x32"},
		{name: "bad square", board: start, text: "40-45", wantErr: ErrMalformedMove},
		{name: "no separator", board: start, text: "move", wantErr: ErrMalformedMove},
		{name: "compact bad square", board: start, text: "0045", wantErr: ErrMalformedMove},
		{name: "not legal", board: start, text: "9-14", wantErr: ErrIllegalMove},
		{name: "slide during forced capture", board: jump, text: "14-17", wantErr: ErrIllegalMove},
		{name: "wrong chain length", board: jump, text: "14x18x23x32", wantErr: ErrIllegalMove},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := tt.board
			mv, err := b.ParseMove(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := mv.String(); got != tt.want {
				t.Errorf("unexpected move: got=%s want=%s", got, tt.want)
			}
		})
	}
}
