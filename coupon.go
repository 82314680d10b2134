package gs1lint

// CouponPosOffer validates AI 8112, the modernized point-of-sale coupon
// code. All bytes are digits; fields are read left to right in fixed
// order with no optional blocks.
func CouponPosOffer(data []byte) (Kind, int, int) {
	if pos, bad := digitsOnly(data); bad {
		return fail(NonDigitCharacter, pos, 1)
	}

	p := 0
	n := len(data)

	// 1. Format Code: one byte, '0' or '1'.
	if p >= n {
		return fail(CouponMissingFormatCode, p, 0)
	}
	if data[p] != '0' && data[p] != '1' {
		return fail(CouponInvalidFormatCode, p, 1)
	}
	p++

	// 2. Funder VLI: one byte '0'..'6'; Funder ID has length VLI+6.
	if p >= n {
		return fail(CouponMissingFunderVli, p, 0)
	}
	if data[p] < '0' || data[p] > '6' {
		return fail(CouponInvalidFunderVli, p, 1)
	}
	funderLen := int(data[p]-'0') + 6
	p++
	if p+funderLen > n {
		return fail(CouponTruncatedFunderId, p, n-p)
	}
	p += funderLen

	// 3. Offer Code: fixed 6 digits.
	if p+6 > n {
		return fail(CouponTruncatedOfferCode, p, n-p)
	}
	p += 6

	// 4. Serial Number VLI: one byte; Serial Number has length VLI+6.
	if p >= n {
		return fail(CouponMissingSerialVli, p, 0)
	}
	serialLen := int(data[p]-'0') + 6
	p++
	if p+serialLen > n {
		return fail(CouponTruncatedSerialNumber, p, n-p)
	}
	p += serialLen

	// 5. No trailing data permitted.
	if p < n {
		return fail(CouponExcessData, p, n-p)
	}
	return Ok, 0, 0
}
