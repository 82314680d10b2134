package gs1lint

// isRequirementCode reports whether b is a valid purchase requirement
// code: '0'..'4' or '9'.
func isRequirementCode(b byte) bool {
	return (b >= '0' && b <= '4') || b == '9'
}

// isMiscSaveValueCode reports whether b is a valid AI 8110 block-9 save
// value code: one of '0','1','2','5','6'.
func isMiscSaveValueCode(b byte) bool {
	switch b {
	case '0', '1', '2', '5', '6':
		return true
	}
	return false
}

// indicatorRank orders the AI 8110 optional block indicators for the
// ascending-order check. Blocks 3 (expiration) and 4 (start date)
// share a rank: either may open the date pair, and whichever comes
// second triggers the cross-check against the first, so neither
// ordering between them counts as out-of-order. A return of 0 means
// the byte is not a recognized indicator.
func indicatorRank(ind byte) int {
	switch ind {
	case '1':
		return 1
	case '2':
		return 2
	case '3', '4':
		return 3
	case '5':
		return 5
	case '6':
		return 6
	case '9':
		return 9
	}
	return 0
}

// CouponCode validates AI 8110, the legacy North American Coupon Code.
// All bytes are digits. A mandatory prefix of GCP, offer code, save
// value, and first-purchase requirement/family fields is followed by
// up to seven optional blocks (indicators 1-6 and 9), each opened by a
// digit indicator; blocks
// must appear with non-decreasing rank and each indicator at most
// once. Unrecognized trailing bytes end the optional-block scan and
// are reported as excess data.
func CouponCode(data []byte) (Kind, int, int) {
	if pos, bad := digitsOnly(data); bad {
		return fail(NonDigitCharacter, pos, 1)
	}

	p := 0
	n := len(data)

	// GCP VLI '0'..'6'; GCP of length VLI+6, validated via gcppos1.
	if p >= n {
		return fail(CouponMissingGcpVli, p, 0)
	}
	if data[p] < '0' || data[p] > '6' {
		return fail(CouponInvalidGcpVli, p, 1)
	}
	gcpLen := int(data[p]-'0') + 6
	gcpPos := p + 1
	p++
	if p+gcpLen > n {
		return fail(CouponTruncatedGcp, p, n-p)
	}
	if kind, _, _ := GcpPos1(data[gcpPos : gcpPos+gcpLen]); kind != Ok {
		return fail(kind, gcpPos, gcpLen)
	}
	p += gcpLen

	// Offer Code: 6 digits.
	if p >= n {
		return fail(CouponMissingOfferCode, p, 0)
	}
	if p+6 > n {
		return fail(CouponTruncatedOfferCode, p, n-p)
	}
	p += 6

	// Save Value VLI '1'..'5' + value of that length.
	if p >= n {
		return fail(CouponMissingSaveValueVli, p, 0)
	}
	if data[p] < '1' || data[p] > '5' {
		return fail(CouponInvalidSaveValueVli, p, 1)
	}
	saveLen := int(data[p] - '0')
	p++
	if p+saveLen > n {
		return fail(CouponTruncatedSaveValue, p, n-p)
	}
	p += saveLen

	// 1st-purchase Requirement VLI '1'..'5' + value of that length.
	if p >= n {
		return fail(CouponMissingRequirementVli, p, 0)
	}
	if data[p] < '1' || data[p] > '5' {
		return fail(CouponInvalidRequirementVli, p, 1)
	}
	reqLen := int(data[p] - '0')
	p++
	if p+reqLen > n {
		return fail(CouponTruncatedRequirement, p, n-p)
	}
	p += reqLen

	// 1st-purchase Requirement Code: one byte '0'..'4'|'9'.
	if p >= n {
		return fail(CouponMissingRequirementCode, p, 0)
	}
	if !isRequirementCode(data[p]) {
		return fail(CouponInvalidRequirementCode, p, 1)
	}
	p++

	// 1st-purchase Family Code: 3 digits.
	if p >= n {
		return fail(CouponMissingFamilyCode, p, 0)
	}
	if p+3 > n {
		return fail(CouponTruncatedFamilyCode, p, n-p)
	}
	p += 3

	var seen [10]bool
	lastRank := 0
	var expiry, start []byte
	var expiryPos, startPos int

	for p < n {
		ind := data[p]
		rank := indicatorRank(ind)
		if rank == 0 {
			break
		}
		if seen[ind-'0'] {
			return fail(CouponDuplicateIndicator, p, 1)
		}
		if rank < lastRank {
			return fail(CouponInvalidIndicatorOrder, p, 1)
		}
		seen[ind-'0'] = true
		lastRank = rank
		blockStart := p
		p++

		switch ind {
		case '1', '2':
			// Rules Code: one byte '0'..'3'.
			if p >= n {
				return fail(CouponMissingRulesCode, p, 0)
			}
			if data[p] < '0' || data[p] > '3' {
				return fail(CouponInvalidRulesCode, p, 1)
			}
			p++

			// Nth Requirement VLI '1'..'5' + value.
			if p >= n {
				return fail(CouponMissingRequirementVli, p, 0)
			}
			if data[p] < '1' || data[p] > '5' {
				return fail(CouponInvalidRequirementVli, p, 1)
			}
			rlen := int(data[p] - '0')
			p++
			if p+rlen > n {
				return fail(CouponTruncatedRequirement, p, n-p)
			}
			p += rlen

			// Nth Requirement Code: one byte '0'..'4'|'9'.
			if p >= n {
				return fail(CouponMissingRequirementCode, p, 0)
			}
			if !isRequirementCode(data[p]) {
				return fail(CouponInvalidRequirementCode, p, 1)
			}
			p++

			// Nth Family Code: 3 digits.
			if p >= n {
				return fail(CouponMissingFamilyCode, p, 0)
			}
			if p+3 > n {
				return fail(CouponTruncatedFamilyCode, p, n-p)
			}
			p += 3

			// Nth GCP VLI '0'..'6'|'9' (9 => zero length).
			if p >= n {
				return fail(CouponMissingGcpVli, p, 0)
			}
			vliDigit := data[p]
			if (vliDigit < '0' || vliDigit > '6') && vliDigit != '9' {
				return fail(CouponInvalidGcpVli, p, 1)
			}
			glen := 0
			if vliDigit != '9' {
				glen = int(vliDigit-'0') + 6
			}
			gpos := p + 1
			p++
			if glen > 0 {
				if p+glen > n {
					return fail(CouponTruncatedGcp, p, n-p)
				}
				if kind, _, _ := GcpPos1(data[gpos : gpos+glen]); kind != Ok {
					return fail(kind, gpos, glen)
				}
				p += glen
			}

		case '3':
			if p >= n {
				return fail(CouponTruncatedExpiration, p, 0)
			}
			if p+6 > n {
				return fail(CouponTruncatedExpiration, p, n-p)
			}
			if kind, ep, el := Yymmdd(data[p : p+6]); kind != Ok {
				return fail(kind, p+ep, el)
			}
			expiry = data[p : p+6]
			expiryPos = blockStart
			p += 6
			if start != nil && string(expiry) < string(start) {
				return fail(CouponExpirationBeforeStart, startPos, p-startPos)
			}

		case '4':
			if p >= n {
				return fail(CouponTruncatedStartDate, p, 0)
			}
			if p+6 > n {
				return fail(CouponTruncatedStartDate, p, n-p)
			}
			if kind, ep, el := Yymmdd(data[p : p+6]); kind != Ok {
				return fail(kind, p+ep, el)
			}
			start = data[p : p+6]
			startPos = blockStart
			p += 6
			if expiry != nil && string(expiry) < string(start) {
				return fail(CouponExpirationBeforeStart, expiryPos, p-expiryPos)
			}

		case '5':
			if p >= n {
				return fail(CouponMissingSerialVli, p, 0)
			}
			slen := int(data[p]-'0') + 6
			p++
			if p+slen > n {
				return fail(CouponTruncatedSerialNumber, p, n-p)
			}
			p += slen

		case '6':
			if p >= n {
				return fail(CouponMissingRetailerVli, p, 0)
			}
			if data[p] < '1' || data[p] > '7' {
				return fail(CouponInvalidRetailerVli, p, 1)
			}
			rlen := int(data[p]-'0') + 6
			rpos := p + 1
			p++
			if p+rlen > n {
				return fail(CouponTruncatedRetailerGcp, p, n-p)
			}
			if kind, _, _ := GcpPos1(data[rpos : rpos+rlen]); kind != Ok {
				return fail(kind, rpos, rlen)
			}
			p += rlen

		case '9':
			if p >= n {
				return fail(CouponMissingSaveValueCode, p, 0)
			}
			if !isMiscSaveValueCode(data[p]) {
				return fail(CouponInvalidSaveValueCode, p, 1)
			}
			p++

			if p >= n {
				return fail(CouponMissingApplyToItem, p, 0)
			}
			if data[p] < '0' || data[p] > '2' {
				return fail(CouponInvalidApplyToItem, p, 1)
			}
			p++

			if p >= n {
				return fail(CouponMissingStoreFlag, p, 0)
			}
			p++

			if p >= n {
				return fail(CouponMissingMultiplyFlag, p, 0)
			}
			if data[p] != '0' && data[p] != '1' {
				return fail(CouponInvalidMultiplyFlag, p, 1)
			}
			p++
		}
	}

	if p < n {
		return fail(CouponExcessData, p, n-p)
	}
	return Ok, 0, 0
}
