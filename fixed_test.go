package gs1lint

import "testing"

func TestZero(t *testing.T) {
	if kind, _, _ := Zero([]byte("0000")); kind != Ok {
		t.Errorf("Zero(0000) = %v, want Ok", kind)
	}
	if kind, _, _ := Zero([]byte("")); kind != NotZero {
		t.Errorf("Zero(empty) = %v, want NotZero", kind)
	}
	if kind, pos, _ := Zero([]byte("001")); kind != NotZero || pos != 2 {
		t.Errorf("Zero(001) = (%v, %d), want (NotZero, 2)", kind, pos)
	}
}

func TestNonZero(t *testing.T) {
	if kind, _, _ := NonZero([]byte("0001")); kind != Ok {
		t.Errorf("NonZero(0001) = %v, want Ok", kind)
	}
	if kind, _, _ := NonZero([]byte("0000")); kind != IllegalZeroValue {
		t.Errorf("NonZero(0000) = %v, want IllegalZeroValue", kind)
	}
	if kind, pos, _ := NonZero([]byte("12a")); kind != NonDigitCharacter || pos != 2 {
		t.Errorf("NonZero(12a) = (%v, %d), want (NonDigitCharacter, 2)", kind, pos)
	}
}

func TestNoZeroPrefix(t *testing.T) {
	if kind, _, _ := NoZeroPrefix([]byte("")); kind != Ok {
		t.Errorf("NoZeroPrefix(empty) = %v, want Ok", kind)
	}
	if kind, _, _ := NoZeroPrefix([]byte("123")); kind != Ok {
		t.Errorf("NoZeroPrefix(123) = %v, want Ok", kind)
	}
	if kind, _, _ := NoZeroPrefix([]byte("0")); kind != IllegalZeroPrefix {
		t.Errorf("NoZeroPrefix(0) = %v, want IllegalZeroPrefix", kind)
	}
	if kind, _, _ := NoZeroPrefix([]byte("01")); kind != IllegalZeroPrefix {
		t.Errorf("NoZeroPrefix(01) = %v, want IllegalZeroPrefix", kind)
	}
}

func TestYesNo(t *testing.T) {
	for _, b := range []string{"0", "1"} {
		if kind, _, _ := YesNo([]byte(b)); kind != Ok {
			t.Errorf("YesNo(%s) = %v, want Ok", b, kind)
		}
	}
	if kind, _, _ := YesNo([]byte("2")); kind != NotZeroOrOne {
		t.Errorf("YesNo(2) = %v, want NotZeroOrOne", kind)
	}
}

func TestWinding(t *testing.T) {
	for _, b := range []string{"0", "1", "9"} {
		if kind, _, _ := Winding([]byte(b)); kind != Ok {
			t.Errorf("Winding(%s) = %v, want Ok", b, kind)
		}
	}
	if kind, _, _ := Winding([]byte("5")); kind != InvalidWindingDirection {
		t.Errorf("Winding(5) = %v, want InvalidWindingDirection", kind)
	}
}

func TestISO5218(t *testing.T) {
	for _, b := range []string{"0", "1", "2", "9"} {
		if kind, _, _ := ISO5218([]byte(b)); kind != Ok {
			t.Errorf("ISO5218(%s) = %v, want Ok", b, kind)
		}
	}
	if kind, _, _ := ISO5218([]byte("3")); kind != InvalidBiologicalSexCode {
		t.Errorf("ISO5218(3) = %v, want InvalidBiologicalSexCode", kind)
	}
}
