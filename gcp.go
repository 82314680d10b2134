package gs1lint

// GCPMinLength is the minimum accepted width of a GS1 Company Prefix,
// GCP_MIN_LENGTH in the specification.
const GCPMinLength = 4

// GcpPos1 checks that data is at least GCPMinLength bytes and that the
// first that-many bytes are digits. Without an override hook this is
// the whole check; the embedded table has nothing to consult because
// the set of currently allocated prefixes isn't a static list, only a
// caller-supplied hook can answer that.
func GcpPos1(data []byte) (Kind, int, int) {
	if len(data) < GCPMinLength {
		return fail(TooShortForGcp, 0, len(data))
	}
	if pos, bad := digitsOnly(data[:GCPMinLength]); bad {
		return fail(NonDigitCharacter, pos, 1)
	}
	return Ok, 0, 0
}

// GcpPos2 validates that data has a GCP starting at its second byte
// (used by formats that carry a leading indicator digit); it delegates
// to GcpPos1 over data[1:] and re-anchors any reported position by 1.
func GcpPos2(data []byte) (Kind, int, int) {
	if len(data) < 1 {
		return fail(TooShortForGcp, 0, len(data))
	}
	kind, pos, length := GcpPos1(data[1:])
	if kind == Ok {
		return Ok, 0, 0
	}
	return fail(kind, pos+1, length)
}

func gcpPos1WithHook(data []byte, hook GCPHook) (Kind, int, int) {
	if len(data) < GCPMinLength {
		return fail(TooShortForGcp, 0, len(data))
	}
	if pos, bad := digitsOnly(data[:GCPMinLength]); bad {
		return fail(NonDigitCharacter, pos, 1)
	}
	valid, offline := hook(data)
	if offline {
		return fail(GcpDatasourceOffline, 0, 0)
	}
	if !valid {
		return fail(InvalidGcpPrefix, 0, 0)
	}
	return Ok, 0, 0
}

func gcpPos2WithHook(data []byte, hook GCPHook) (Kind, int, int) {
	if len(data) < 1 {
		return fail(TooShortForGcp, 0, len(data))
	}
	kind, pos, length := gcpPos1WithHook(data[1:], hook)
	if kind == Ok {
		return Ok, 0, 0
	}
	return fail(kind, pos+1, length)
}
