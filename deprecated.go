package gs1lint

// Deprecated registry aliases. Per the stability guarantee on linter
// names, these six entries are never removed from the table; they
// return Ok unconditionally regardless of input. Callers still on
// these names should migrate to the replacements named in each
// comment, which carry the real validation logic.

// hhmm is superseded by Hhmi.
func hhmm(data []byte) (Kind, int, int) {
	return Ok, 0, 0
}

// iso3166list had no single unambiguous successor in the modern
// registry; its legacy semantics (tokenizing a run of ISO 3166 codes)
// are not reproduced here.
func iso3166list(data []byte) (Kind, int, int) {
	return Ok, 0, 0
}

// key is superseded by GcpPos1.
func key(data []byte) (Kind, int, int) {
	return Ok, 0, 0
}

// keyoff1 is superseded by GcpPos2.
func keyoff1(data []byte) (Kind, int, int) {
	return Ok, 0, 0
}

// mmoptss is superseded by decomposing into Mi and Ss.
func mmoptss(data []byte) (Kind, int, int) {
	return Ok, 0, 0
}

// yymmddhh is superseded by composing Yymmdd and Hh.
func yymmddhh(data []byte) (Kind, int, int) {
	return Ok, 0, 0
}
