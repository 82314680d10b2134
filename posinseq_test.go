package gs1lint

import "testing"

func TestPosInSeqSlash(t *testing.T) {
	cases := []struct {
		in       string
		wantKind Kind
		wantPos  int
	}{
		{"1/2", Ok, 0},
		{"2/2", Ok, 0},
		{"3/2", PositionExceedsEnd, 0},
		{"12/2", PositionExceedsEnd, 0},
		{"01/2", IllegalZeroPrefix, 0},
		{"1/02", IllegalZeroPrefix, 2},
		{"12", PositionInSequenceMalformed, 0},
		{"1/2/3", PositionInSequenceMalformed, 0},
		{"/2", PositionInSequenceMalformed, 0},
		{"1/", PositionInSequenceMalformed, 0},
	}
	for _, c := range cases {
		kind, pos, _ := PosInSeqSlash([]byte(c.in))
		if kind != c.wantKind {
			t.Errorf("PosInSeqSlash(%q) kind = %v, want %v", c.in, kind, c.wantKind)
			continue
		}
		if kind != Ok && pos != c.wantPos {
			t.Errorf("PosInSeqSlash(%q) pos = %d, want %d", c.in, pos, c.wantPos)
		}
	}
}

func TestPieceOfTotal(t *testing.T) {
	cases := []struct {
		in       string
		wantKind Kind
		wantPos  int
		wantLen  int
	}{
		{"0102", Ok, 0, 0},
		{"0100", ZeroTotalPieces, 2, 2},
		{"0001", ZeroPieceNumber, 0, 2},
		{"0302", PieceNumberExceedsTotal, 0, 4},
		{"123", InvalidLengthForPieceOfTotal, 0, 3},
		{"1a02", NonDigitCharacter, 1, 1},
	}
	for _, c := range cases {
		kind, pos, length := PieceOfTotal([]byte(c.in))
		if kind != c.wantKind {
			t.Errorf("PieceOfTotal(%q) kind = %v, want %v", c.in, kind, c.wantKind)
			continue
		}
		if kind != Ok && (pos != c.wantPos || length != c.wantLen) {
			t.Errorf("PieceOfTotal(%q) = (%d, %d), want (%d, %d)", c.in, pos, length, c.wantPos, c.wantLen)
		}
	}
}
