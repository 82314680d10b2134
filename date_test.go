package gs1lint

import "testing"

func TestYyyymmd0(t *testing.T) {
	cases := []struct {
		in       string
		wantKind Kind
		wantPos  int
	}{
		{"20000229", Ok, 0},
		{"19000229", IllegalDay, 6},
		{"20200600", Ok, 0},
		{"24000229", Ok, 0},
		{"21000229", IllegalDay, 6},
		{"20201300", IllegalMonth, 4},
		{"2020010", DateTooShort, 0},
		{"202001011", DateTooLong, 0},
	}
	for _, c := range cases {
		kind, pos, _ := Yyyymmd0([]byte(c.in))
		if kind != c.wantKind {
			t.Errorf("Yyyymmd0(%q) kind = %v, want %v", c.in, kind, c.wantKind)
			continue
		}
		if kind != Ok && pos != c.wantPos {
			t.Errorf("Yyyymmd0(%q) pos = %d, want %d", c.in, pos, c.wantPos)
		}
	}
}

func TestYyyymmdd(t *testing.T) {
	if kind, pos, _ := Yyyymmdd([]byte("20200600")); kind != IllegalDay || pos != 6 {
		t.Errorf("Yyyymmdd(20200600) = (%v, %d), want (IllegalDay, 6)", kind, pos)
	}
	if kind, _, _ := Yyyymmdd([]byte("20200631")); kind != IllegalDay {
		t.Errorf("Yyyymmdd(20200631) = %v, want IllegalDay", kind)
	}
	if kind, _, _ := Yyyymmdd([]byte("20200630")); kind != Ok {
		t.Errorf("Yyyymmdd(20200630) = %v, want Ok", kind)
	}
}

func TestYymmd0ReconstructsYear(t *testing.T) {
	cases := []struct {
		in       string
		wantKind Kind
	}{
		{"990229", IllegalDay}, // 1999-02-29 is not a leap year -> rejected
		{"000229", Ok},   // 2000-02-29 leap -> accepted
		{"210101", Ok},   // 2021-01-01
		{"720101", Ok},   // 1972-01-01
	}
	for _, c := range cases {
		kind, _, _ := Yymmd0([]byte(c.in))
		if c.in == "990229" {
			if kind != IllegalDay {
				t.Errorf("Yymmd0(990229) = %v, want IllegalDay (1999 is not a leap year)", kind)
			}
			continue
		}
		if kind != c.wantKind {
			t.Errorf("Yymmd0(%q) = %v, want %v", c.in, kind, c.wantKind)
		}
	}
}

func TestReconstructYear(t *testing.T) {
	cases := []struct {
		yy   int
		want int
	}{
		{21, 2021},
		{0, 2000},
		{5, 2005},
		{71, 2071},
		{72, 1972},
		{99, 1999},
	}
	for _, c := range cases {
		if got := reconstructYear(c.yy); got != c.want {
			t.Errorf("reconstructYear(%d) = %d, want %d", c.yy, got, c.want)
		}
	}
}

func TestHhMiSs(t *testing.T) {
	if kind, _, _ := Hh([]byte("23")); kind != Ok {
		t.Errorf("Hh(23) = %v, want Ok", kind)
	}
	if kind, _, _ := Hh([]byte("24")); kind != IllegalHour {
		t.Errorf("Hh(24) = %v, want IllegalHour", kind)
	}
	if kind, _, _ := Mi([]byte("59")); kind != Ok {
		t.Errorf("Mi(59) = %v, want Ok", kind)
	}
	if kind, _, _ := Mi([]byte("60")); kind != IllegalMinute {
		t.Errorf("Mi(60) = %v, want IllegalMinute", kind)
	}
	if kind, _, _ := Ss([]byte("60")); kind != IllegalSecond {
		t.Errorf("Ss(60) = %v, want IllegalSecond", kind)
	}
}

func TestHhmi(t *testing.T) {
	if kind, _, _ := Hhmi([]byte("2359")); kind != Ok {
		t.Errorf("Hhmi(2359) = %v, want Ok", kind)
	}
	if kind, pos, _ := Hhmi([]byte("2360")); kind != IllegalMinute || pos != 2 {
		t.Errorf("Hhmi(2360) = (%v, %d), want (IllegalMinute, 2)", kind, pos)
	}
	if kind, pos, _ := Hhmi([]byte("2460")); kind != IllegalHour || pos != 0 {
		t.Errorf("Hhmi(2460) = (%v, %d), want (IllegalHour, 0)", kind, pos)
	}
}

func TestMmOptSs(t *testing.T) {
	if kind, _, _ := MmOptSs([]byte("59")); kind != Ok {
		t.Errorf("MmOptSs(59) = %v, want Ok", kind)
	}
	if kind, _, _ := MmOptSs([]byte("5959")); kind != Ok {
		t.Errorf("MmOptSs(5959) = %v, want Ok", kind)
	}
	if kind, pos, _ := MmOptSs([]byte("5960")); kind != IllegalSecond || pos != 2 {
		t.Errorf("MmOptSs(5960) = (%v, %d), want (IllegalSecond, 2)", kind, pos)
	}
	if kind, _, _ := MmOptSs([]byte("1")); kind != MinuteTooShort {
		t.Errorf("MmOptSs(1) = %v, want MinuteTooShort", kind)
	}
	if kind, _, _ := MmOptSs([]byte("123")); kind != MinuteTooLong {
		t.Errorf("MmOptSs(123) = %v, want MinuteTooLong", kind)
	}
}
