package gs1lint

import (
	"strings"
	"testing"
)

func TestLocateOk(t *testing.T) {
	if got := Locate([]byte("416000336108"), Ok, 0, 0); got != "ok" {
		t.Errorf("Locate(Ok) = %q, want %q", got, "ok")
	}
}

func TestLocateFailure(t *testing.T) {
	data := []byte("416000336109")
	got := Locate(data, IncorrectCheckDigit, 11, 1)

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("Locate output has %d lines, want 2: %q", len(lines), got)
	}
	if lines[0] != string(data) {
		t.Errorf("Locate first line = %q, want %q", lines[0], string(data))
	}
	if !strings.HasPrefix(lines[1], strings.Repeat(" ", 11)+"^") {
		t.Errorf("Locate caret line = %q, want caret at offset 11", lines[1])
	}
	if !strings.HasSuffix(lines[1], IncorrectCheckDigit.String()) {
		t.Errorf("Locate caret line = %q, want suffix %q", lines[1], IncorrectCheckDigit.String())
	}
}

func TestLocateClampsOutOfRangeSpan(t *testing.T) {
	data := []byte("123")
	got := Locate(data, NonDigitCharacter, 10, 5)
	if !strings.Contains(got, "^") {
		t.Errorf("Locate with out-of-range span should still render a caret: %q", got)
	}
}

func TestLocateZeroLengthSingleCaret(t *testing.T) {
	data := []byte("123")
	got := Locate(data, NonDigitCharacter, 1, 0)
	lines := strings.Split(got, "\n")
	if lines[1] != " ^ "+NonDigitCharacter.String() {
		t.Errorf("Locate(len=0) caret line = %q, want %q", lines[1], " ^ "+NonDigitCharacter.String())
	}
}
