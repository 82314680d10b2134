package gs1lint

// Kind classifies the outcome of a linter call. The zero value, Ok,
// is the only success value; every other Kind identifies a specific
// failure reason.
//
// The enumeration is append-only: new kinds are added at the tail,
// existing identities are never reordered or repurposed. A retired
// kind is left in place as a reserved slot rather than deleted, the
// same way the companion standard reserves unused TypeID codes.
type Kind uint16

const (
	// Ok signals a conforming component. It is the zero value so
	// that a zeroed Result is a passing Result.
	Ok Kind = iota

	// character-set and digit-run failures
	NonDigitCharacter
	InvalidCset82Character
	InvalidCset39Character
	InvalidCset32Character
	InvalidCset64Character
	InvalidCset64Padding
	RequiresNonDigitCharacter
	NotHyphen
	ImporterIdxMustBeOneCharacter
	InvalidImportIdxCharacter

	// checksum failures
	TooShortForCheckDigit
	IncorrectCheckDigit
	TooShortForCheckPair
	TooLongForCheckPairImplementation
	IncorrectCheckPair

	// GCP failures
	TooShortForGcp
	InvalidGcpPrefix
	GcpDatasourceOffline

	// code-list failures
	NotIso3166
	NotIso3166Or999
	NotIso3166Alpha2
	NotIso4217
	InvalidMediaType
	InvalidPackageType

	// IBAN failures
	IbanTooShort
	IbanTooLong
	InvalidIbanCharacter
	IllegalIbanCountryCode
	IncorrectIbanChecksum

	// date and time failures
	DateTooShort
	DateTooLong
	IllegalMonth
	IllegalDay
	HourTooShort
	HourTooLong
	IllegalHour
	MinuteTooShort
	MinuteTooLong
	IllegalMinute
	SecondTooShort
	SecondTooLong
	IllegalSecond
	HourWithMinuteTooShort
	HourWithMinuteTooLong

	// geo failures
	LatitudeInvalidLength
	LongitudeInvalidLength
	InvalidLatitude
	InvalidLongitude

	// fixed-value failures
	NotZero
	IllegalZeroValue
	IllegalZeroPrefix
	NotZeroOrOne
	InvalidWindingDirection
	InvalidBiologicalSexCode

	// percent encoding
	InvalidPercentSequence

	// position-in-sequence / piece-of-total failures
	PositionInSequenceMalformed
	PositionExceedsEnd
	InvalidLengthForPieceOfTotal
	ZeroPieceNumber
	ZeroTotalPieces
	PieceNumberExceedsTotal

	// coupon code failures, shared across couponcode and couponposoffer
	// where the field shape coincides
	CouponMissingFormatCode
	CouponInvalidFormatCode
	CouponMissingFunderVli
	CouponInvalidFunderVli
	CouponTruncatedFunderId
	CouponMissingOfferCode
	CouponTruncatedOfferCode
	CouponMissingSaveValueVli
	CouponInvalidSaveValueVli
	CouponTruncatedSaveValue
	CouponMissingRequirementVli
	CouponInvalidRequirementVli
	CouponTruncatedRequirement
	CouponMissingRequirementCode
	CouponInvalidRequirementCode
	CouponMissingFamilyCode
	CouponTruncatedFamilyCode
	CouponMissingGcpVli
	CouponInvalidGcpVli
	CouponTruncatedGcp
	CouponMissingRulesCode
	CouponInvalidRulesCode
	CouponMissingIndicator
	CouponInvalidIndicatorOrder
	CouponDuplicateIndicator
	CouponTruncatedExpiration
	CouponTruncatedStartDate
	CouponExpirationBeforeStart
	CouponMissingSerialVli
	CouponInvalidSerialVli
	CouponTruncatedSerialNumber
	CouponMissingRetailerVli
	CouponInvalidRetailerVli
	CouponTruncatedRetailerGcp
	CouponMissingSaveValueCode
	CouponInvalidSaveValueCode
	CouponMissingApplyToItem
	CouponInvalidApplyToItem
	CouponMissingStoreFlag
	CouponMissingMultiplyFlag
	CouponInvalidMultiplyFlag
	CouponExcessData

	// numKinds is a sentinel, not a valid Kind value, used to size
	// the description table.
	numKinds
)

// descriptions is the reference English description table, indexed by
// Kind. Callers may ignore it; it is a reference artifact, not part of
// the pass/fail contract. Localization is explicitly out of scope.
var descriptions = [numKinds]string{
	Ok:                                 "no error",
	NonDigitCharacter:                  "non-digit character",
	InvalidCset82Character:             "invalid CSET 82 character",
	InvalidCset39Character:             "invalid CSET 39 character",
	InvalidCset32Character:             "invalid CSET 32 character",
	InvalidCset64Character:             "invalid CSET 64 character",
	InvalidCset64Padding:               "invalid CSET 64 padding",
	RequiresNonDigitCharacter:          "requires at least one non-digit character",
	NotHyphen:                          "not a hyphen",
	ImporterIdxMustBeOneCharacter:      "importer index must be one character",
	InvalidImportIdxCharacter:          "invalid importer index character",
	TooShortForCheckDigit:              "too short for a check digit",
	IncorrectCheckDigit:                "incorrect check digit",
	TooShortForCheckPair:               "too short for a check character pair",
	TooLongForCheckPairImplementation:  "too long for this check character pair implementation",
	IncorrectCheckPair:                 "incorrect check character pair",
	TooShortForGcp:                     "too short for a GS1 Company Prefix",
	InvalidGcpPrefix:                   "invalid GS1 Company Prefix",
	GcpDatasourceOffline:               "GS1 Company Prefix data source offline",
	NotIso3166:                         "not an ISO 3166 country code",
	NotIso3166Or999:                    "not an ISO 3166 country code or 999",
	NotIso3166Alpha2:                   "not an ISO 3166 alpha-2 country code",
	NotIso4217:                         "not an ISO 4217 currency code",
	InvalidMediaType:                   "invalid media type",
	InvalidPackageType:                 "invalid package type",
	IbanTooShort:                       "IBAN too short",
	IbanTooLong:                        "IBAN too long",
	InvalidIbanCharacter:               "invalid IBAN character",
	IllegalIbanCountryCode:             "illegal IBAN country code",
	IncorrectIbanChecksum:              "incorrect IBAN checksum",
	DateTooShort:                       "date too short",
	DateTooLong:                        "date too long",
	IllegalMonth:                       "illegal month",
	IllegalDay:                         "illegal day",
	HourTooShort:                       "hour too short",
	HourTooLong:                        "hour too long",
	IllegalHour:                        "illegal hour",
	MinuteTooShort:                     "minute too short",
	MinuteTooLong:                      "minute too long",
	IllegalMinute:                      "illegal minute",
	SecondTooShort:                     "second too short",
	SecondTooLong:                      "second too long",
	IllegalSecond:                      "illegal second",
	HourWithMinuteTooShort:             "hour with minute too short",
	HourWithMinuteTooLong:              "hour with minute too long",
	LatitudeInvalidLength:              "latitude invalid length",
	LongitudeInvalidLength:             "longitude invalid length",
	InvalidLatitude:                    "invalid latitude",
	InvalidLongitude:                   "invalid longitude",
	NotZero:                            "not zero",
	IllegalZeroValue:                   "illegal zero value",
	IllegalZeroPrefix:                  "illegal zero prefix",
	NotZeroOrOne:                       "not zero or one",
	InvalidWindingDirection:            "invalid winding direction",
	InvalidBiologicalSexCode:           "invalid biological sex code",
	InvalidPercentSequence:             "invalid percent-encoded sequence",
	PositionInSequenceMalformed:        "position in sequence malformed",
	PositionExceedsEnd:                 "position exceeds end",
	InvalidLengthForPieceOfTotal:       "invalid length for piece of total",
	ZeroPieceNumber:                    "zero piece number",
	ZeroTotalPieces:                    "zero total pieces",
	PieceNumberExceedsTotal:            "piece number exceeds total pieces",
	CouponMissingFormatCode:            "coupon: missing format code",
	CouponInvalidFormatCode:            "coupon: invalid format code",
	CouponMissingFunderVli:             "coupon: missing funder VLI",
	CouponInvalidFunderVli:             "coupon: invalid funder VLI",
	CouponTruncatedFunderId:            "coupon: truncated funder id",
	CouponMissingOfferCode:             "coupon: missing offer code",
	CouponTruncatedOfferCode:           "coupon: truncated offer code",
	CouponMissingSaveValueVli:          "coupon: missing save value VLI",
	CouponInvalidSaveValueVli:          "coupon: invalid save value VLI",
	CouponTruncatedSaveValue:           "coupon: truncated save value",
	CouponMissingRequirementVli:        "coupon: missing purchase requirement VLI",
	CouponInvalidRequirementVli:        "coupon: invalid purchase requirement VLI",
	CouponTruncatedRequirement:         "coupon: truncated purchase requirement",
	CouponMissingRequirementCode:       "coupon: missing purchase requirement code",
	CouponInvalidRequirementCode:       "coupon: invalid purchase requirement code",
	CouponMissingFamilyCode:            "coupon: missing family code",
	CouponTruncatedFamilyCode:          "coupon: truncated family code",
	CouponMissingGcpVli:                "coupon: missing GCP VLI",
	CouponInvalidGcpVli:                "coupon: invalid GCP VLI",
	CouponTruncatedGcp:                 "coupon: truncated GCP",
	CouponMissingRulesCode:             "coupon: missing additional purchase rules code",
	CouponInvalidRulesCode:             "coupon: invalid additional purchase rules code",
	CouponMissingIndicator:             "coupon: missing optional field indicator",
	CouponInvalidIndicatorOrder:        "coupon: optional field indicator out of order",
	CouponDuplicateIndicator:           "coupon: duplicate optional field indicator",
	CouponTruncatedExpiration:          "coupon: truncated expiration date",
	CouponTruncatedStartDate:           "coupon: truncated start date",
	CouponExpirationBeforeStart:        "coupon: expiration date before start date",
	CouponMissingSerialVli:             "coupon: missing serial number VLI",
	CouponInvalidSerialVli:             "coupon: invalid serial number VLI",
	CouponTruncatedSerialNumber:        "coupon: truncated serial number",
	CouponMissingRetailerVli:           "coupon: missing retailer GCP/GLN VLI",
	CouponInvalidRetailerVli:           "coupon: invalid retailer GCP/GLN VLI",
	CouponTruncatedRetailerGcp:         "coupon: truncated retailer GCP/GLN",
	CouponMissingSaveValueCode:         "coupon: missing save value code",
	CouponInvalidSaveValueCode:         "coupon: invalid save value code",
	CouponMissingApplyToItem:           "coupon: missing save value applies-to-item code",
	CouponInvalidApplyToItem:           "coupon: invalid save value applies-to-item code",
	CouponMissingStoreFlag:             "coupon: missing store coupon flag",
	CouponMissingMultiplyFlag:          "coupon: missing don't-multiply flag",
	CouponInvalidMultiplyFlag:          "coupon: invalid don't-multiply flag",
	CouponExcessData:                   "coupon: excess data after recognized fields",
}

// String implements the fmt.Stringer interface. Out-of-range values,
// which can only occur for a hand-built Kind rather than one returned
// by a linter in this package, fall back to a numeric rendering rather
// than panicking or returning an empty string.
func (k Kind) String() string {
	if int(k) < len(descriptions) {
		if s := descriptions[k]; s != "" {
			return s
		}
	}
	return "kind(" + itoa(uint(k)) + ")"
}

// Describe returns the reference English description for k, the same
// text as k.String, provided as a free function for callers that
// prefer not to depend on the Stringer interface.
func Describe(k Kind) string { return k.String() }

// itoa renders n in decimal without allocating through fmt or
// strconv, keeping Kind formatting on the same no-surprise-allocation
// footing as the rest of this package's error-reporting path.
func itoa(n uint) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
