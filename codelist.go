package gs1lint

// Code-list linters consult an embedded sorted table; on a miss the
// failure locator spans the whole input. MediaType and PackageType also
// have a hook-aware variant, used by Registry.Lookup once a caller has
// installed the matching override; the ISO code lists have none.

// ISO3166 validates data as an ISO 3166-1 numeric-3 country code.
func ISO3166(data []byte) (Kind, int, int) {
	if bsearch(iso3166Table, string(data)) {
		return Ok, 0, 0
	}
	return fail(NotIso3166, 0, len(data))
}

// ISO3166999 validates data as either "999" or a valid ISO3166 code.
func ISO3166999(data []byte) (Kind, int, int) {
	if string(data) == "999" || bsearch(iso3166Table, string(data)) {
		return Ok, 0, 0
	}
	return fail(NotIso3166Or999, 0, len(data))
}

// ISO3166Alpha2 validates data as an ISO 3166-1 alpha-2 country code.
func ISO3166Alpha2(data []byte) (Kind, int, int) {
	if bsearch(iso3166alpha2Table, string(data)) {
		return Ok, 0, 0
	}
	return fail(NotIso3166Alpha2, 0, len(data))
}

// ISO4217 validates data as an ISO 4217 numeric-3 currency code.
func ISO4217(data []byte) (Kind, int, int) {
	if bsearch(iso4217Table, string(data)) {
		return Ok, 0, 0
	}
	return fail(NotIso4217, 0, len(data))
}

// MediaType validates data against the embedded GS1 media type table.
func MediaType(data []byte) (Kind, int, int) {
	if bsearch(mediaTypeTable, string(data)) {
		return Ok, 0, 0
	}
	return fail(InvalidMediaType, 0, len(data))
}

// PackageType validates data against the embedded GS1 PackageTypeCode
// table.
func PackageType(data []byte) (Kind, int, int) {
	if bsearch(packageTypeTable, string(data)) {
		return Ok, 0, 0
	}
	return fail(InvalidPackageType, 0, len(data))
}

func mediaTypeWithHook(data []byte, hook MediaTypeHook) (Kind, int, int) {
	if hook(data) {
		return Ok, 0, 0
	}
	return fail(InvalidMediaType, 0, len(data))
}

func packageTypeWithHook(data []byte, hook PackageTypeHook) (Kind, int, int) {
	if hook(data) {
		return Ok, 0, 0
	}
	return fail(InvalidPackageType, 0, len(data))
}
