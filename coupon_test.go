package gs1lint

import "testing"

func TestCouponPosOffer(t *testing.T) {
	valid := "001234566543210111111"

	if kind, _, _ := CouponPosOffer([]byte(valid)); kind != Ok {
		t.Errorf("CouponPosOffer(valid) = %v, want Ok", kind)
	}

	if kind, pos, _ := CouponPosOffer([]byte("2" + valid[1:])); kind != CouponInvalidFormatCode || pos != 0 {
		t.Errorf("CouponPosOffer(bad format code) = (%v, %d), want (CouponInvalidFormatCode, 0)", kind, pos)
	}

	if kind, _, _ := CouponPosOffer([]byte("")); kind != CouponMissingFormatCode {
		t.Errorf("CouponPosOffer(empty) = %v, want CouponMissingFormatCode", kind)
	}

	if kind, _, _ := CouponPosOffer([]byte("0")); kind != CouponMissingFunderVli {
		t.Errorf("CouponPosOffer(0) = %v, want CouponMissingFunderVli", kind)
	}

	if kind, pos, _ := CouponPosOffer([]byte("09" + valid[2:])); kind != CouponInvalidFunderVli || pos != 1 {
		t.Errorf("CouponPosOffer(bad funder vli) = (%v, %d), want (CouponInvalidFunderVli, 1)", kind, pos)
	}

	truncated := valid[:len(valid)-1]
	if kind, _, _ := CouponPosOffer([]byte(truncated)); kind != CouponTruncatedSerialNumber {
		t.Errorf("CouponPosOffer(truncated) = %v, want CouponTruncatedSerialNumber", kind)
	}

	excess := valid + "9"
	if kind, pos, _ := CouponPosOffer([]byte(excess)); kind != CouponExcessData || pos != len(valid) {
		t.Errorf("CouponPosOffer(excess) = (%v, %d), want (CouponExcessData, %d)", kind, pos, len(valid))
	}

	if kind, pos, _ := CouponPosOffer([]byte("0a" + valid[2:])); kind != NonDigitCharacter || pos != 1 {
		t.Errorf("CouponPosOffer(non-digit) = (%v, %d), want (NonDigitCharacter, 1)", kind, pos)
	}
}
