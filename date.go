package gs1lint

// referenceYear anchors the sliding 100-year window used by Yymmd0,
// CURRENT_YEAR in the specification.
const referenceYear = 2021

func digit(b byte) int { return int(b - '0') }

func twoDigits(data []byte) (int, bool) {
	if len(data) != 2 {
		return 0, false
	}
	if !isDigit(data[0]) || !isDigit(data[1]) {
		return 0, false
	}
	return digit(data[0])*10 + digit(data[1]), true
}

// daysInMonth returns the last valid day for the given 4-digit year
// and 1-based month, applying the Gregorian leap-year rule: divisible
// by 4, except centuries, which must be divisible by 400.
func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

// Yyyymmd0 is the canonical date validator: exactly 8 digits, month
// 01..12, day 00..max-for-month where 00 represents an unspecified
// day.
func Yyyymmd0(data []byte) (Kind, int, int) {
	if len(data) < 8 {
		return fail(DateTooShort, 0, len(data))
	}
	if len(data) > 8 {
		return fail(DateTooLong, 0, len(data))
	}
	if pos, bad := digitsOnly(data); bad {
		return fail(NonDigitCharacter, pos, 1)
	}

	year := digit(data[0])*1000 + digit(data[1])*100 + digit(data[2])*10 + digit(data[3])
	month := digit(data[4])*10 + digit(data[5])
	day := digit(data[6])*10 + digit(data[7])

	if month < 1 || month > 12 {
		return fail(IllegalMonth, 4, 2)
	}
	if day == 0 {
		return Ok, 0, 0
	}
	if day > daysInMonth(year, month) {
		return fail(IllegalDay, 6, 2)
	}
	return Ok, 0, 0
}

// Yyyymmdd delegates to Yyyymmd0 then additionally rejects DD == "00".
func Yyyymmdd(data []byte) (Kind, int, int) {
	kind, pos, length := Yyyymmd0(data)
	if kind != Ok {
		return fail(kind, pos, length)
	}
	if len(data) == 8 && data[6] == '0' && data[7] == '0' {
		return fail(IllegalDay, 6, 2)
	}
	return Ok, 0, 0
}

// Yymmd0 accepts exactly 6 digits, reconstructs a 4-digit year with a
// sliding window anchored at referenceYear, and delegates to Yyyymmd0.
func Yymmd0(data []byte) (Kind, int, int) {
	if len(data) < 6 {
		return fail(DateTooShort, 0, len(data))
	}
	if len(data) > 6 {
		return fail(DateTooLong, 0, len(data))
	}
	if pos, bad := digitsOnly(data); bad {
		return fail(NonDigitCharacter, pos, 1)
	}

	yy := digit(data[0])*10 + digit(data[1])
	year := reconstructYear(yy)

	var full [8]byte
	full[0] = byte('0' + (year/1000)%10)
	full[1] = byte('0' + (year/100)%10)
	full[2] = byte('0' + (year/10)%10)
	full[3] = byte('0' + year%10)
	copy(full[4:], data[2:])

	kind, pos, length := Yyyymmd0(full[:])
	if kind == Ok {
		return Ok, 0, 0
	}
	// re-anchor from the 8-digit frame back into the 6-digit frame
	if pos >= 4 {
		pos -= 2
	}
	return fail(kind, pos, length)
}

// reconstructYear applies the ±50-year sliding window, biased toward
// the future: a two-digit year more than 50 years ahead of the
// reference year's own two digits wraps back into the previous
// century, and one 50 or more years behind wraps forward into the
// next century.
func reconstructYear(yy int) int {
	r := referenceYear % 100
	century := referenceYear - r
	delta := yy - r
	switch {
	case delta >= 51:
		return century - 100 + yy
	case delta > -50:
		return century + yy
	default:
		return century + 100 + yy
	}
}

// Yymmdd wraps Yymmd0 then rejects DD == "00".
func Yymmdd(data []byte) (Kind, int, int) {
	kind, pos, length := Yymmd0(data)
	if kind != Ok {
		return fail(kind, pos, length)
	}
	if len(data) == 6 && data[4] == '0' && data[5] == '0' {
		return fail(IllegalDay, 4, 2)
	}
	return Ok, 0, 0
}

// Hh validates exactly 2 digits in range 00..23.
func Hh(data []byte) (Kind, int, int) {
	if len(data) < 2 {
		return fail(HourTooShort, 0, len(data))
	}
	if len(data) > 2 {
		return fail(HourTooLong, 0, len(data))
	}
	n, ok := twoDigits(data)
	if !ok {
		return fail(NonDigitCharacter, 0, 2)
	}
	if n > 23 {
		return fail(IllegalHour, 0, 2)
	}
	return Ok, 0, 0
}

// Mi validates exactly 2 digits in range 00..59.
func Mi(data []byte) (Kind, int, int) {
	if len(data) < 2 {
		return fail(MinuteTooShort, 0, len(data))
	}
	if len(data) > 2 {
		return fail(MinuteTooLong, 0, len(data))
	}
	n, ok := twoDigits(data)
	if !ok {
		return fail(NonDigitCharacter, 0, 2)
	}
	if n > 59 {
		return fail(IllegalMinute, 0, 2)
	}
	return Ok, 0, 0
}

// Ss validates exactly 2 digits in range 00..59.
func Ss(data []byte) (Kind, int, int) {
	if len(data) < 2 {
		return fail(SecondTooShort, 0, len(data))
	}
	if len(data) > 2 {
		return fail(SecondTooLong, 0, len(data))
	}
	n, ok := twoDigits(data)
	if !ok {
		return fail(NonDigitCharacter, 0, 2)
	}
	if n > 59 {
		return fail(IllegalSecond, 0, 2)
	}
	return Ok, 0, 0
}

// Hhmi concatenates Hh and Mi over a 4-byte input, re-anchoring any
// reported position into the outer frame.
func Hhmi(data []byte) (Kind, int, int) {
	if len(data) < 4 {
		return fail(HourWithMinuteTooShort, 0, len(data))
	}
	if len(data) > 4 {
		return fail(HourWithMinuteTooLong, 0, len(data))
	}
	if kind, pos, length := Hh(data[:2]); kind != Ok {
		return fail(kind, pos, length)
	}
	if kind, pos, length := Mi(data[2:]); kind != Ok {
		return fail(kind, pos+2, length)
	}
	return Ok, 0, 0
}

// MmOptSs accepts 2 digits (MM) or 4 digits (MMSS).
func MmOptSs(data []byte) (Kind, int, int) {
	switch len(data) {
	case 2:
		return Mi(data)
	case 4:
		if kind, pos, length := Mi(data[:2]); kind != Ok {
			return fail(kind, pos, length)
		}
		if kind, pos, length := Ss(data[2:]); kind != Ok {
			return fail(kind, pos+2, length)
		}
		return Ok, 0, 0
	default:
		if len(data) < 2 {
			return fail(MinuteTooShort, 0, len(data))
		}
		return fail(MinuteTooLong, 0, len(data))
	}
}
