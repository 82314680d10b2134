package gs1lint

// Linter is the signature shared by every validator in this package:
// given the raw component bytes, it returns a result Kind and, on
// failure, a byte offset and length locating the offending span.
// Success is always (Ok, 0, 0).
type Linter func(data []byte) (Kind, int, int)

// entry pairs a linter's registry name with its function.
type entry struct {
	name string
	fn   Linter
}

// table is the statically sorted name -> linter registry. Names are a
// stable API: the deprecated aliases in deprecated.go stay mapped to
// their shims indefinitely, and new names are inserted in
// lexicographic position. Sortedness is a tested invariant.
var table = []entry{
	{"couponcode", CouponCode},
	{"couponposoffer", CouponPosOffer},
	{"cset39", Cset39},
	{"cset64", Cset64},
	{"cset82", Cset82},
	{"csetnumeric", CsetNumeric},
	{"csum", Csum},
	{"csumalpha", Csumalpha},
	{"gcppos1", GcpPos1},
	{"gcppos2", GcpPos2},
	{"hasnondigit", HasNonDigit},
	{"hh", Hh},
	{"hhmi", Hhmi},
	{"hhmm", hhmm},
	{"hyphen", Hyphen},
	{"iban", Iban},
	{"importeridx", ImporterIdx},
	{"iso3166", ISO3166},
	{"iso3166999", ISO3166999},
	{"iso3166alpha2", ISO3166Alpha2},
	{"iso3166list", iso3166list},
	{"iso4217", ISO4217},
	{"iso5218", ISO5218},
	{"key", key},
	{"keyoff1", keyoff1},
	{"latitude", Latitude},
	{"latlong", LatLong},
	{"longitude", Longitude},
	{"mediatype", MediaType},
	{"mi", Mi},
	{"mmoptss", mmoptss},
	{"nonzero", NonZero},
	{"nozeroprefix", NoZeroPrefix},
	{"packagetype", PackageType},
	{"pcenc", Pcenc},
	{"pieceoftotal", PieceOfTotal},
	{"posinseqslash", PosInSeqSlash},
	{"ss", Ss},
	{"winding", Winding},
	{"yesno", YesNo},
	{"yymmd0", Yymmd0},
	{"yymmdd", Yymmdd},
	{"yymmddhh", yymmddhh},
	{"yyyymmd0", Yyyymmd0},
	{"yyyymmdd", Yyyymmdd},
	{"zero", Zero},
}

func tableNames() []string {
	names := make([]string, len(table))
	for i, e := range table {
		names[i] = e.name
	}
	return names
}

// Lookup resolves a linter by its registry name, via binary search
// over the sorted table.
func Lookup(name string) (Linter, bool) {
	lo, hi := 0, len(table)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case table[mid].name < name:
			lo = mid + 1
		case table[mid].name > name:
			hi = mid
		default:
			return table[mid].fn, true
		}
	}
	return nil, false
}
