package gs1lint

// Override hooks let a caller replace an embedded sorted table with a
// live lookup — a GCP registry, a media-type directory, a package-type
// directory — without the core reaching into global state. These are
// modelled as constructor-time function values carried on a Registry
// value rather than true package-level globals.

// GCPHook resolves whether data begins with a currently allocated GS1
// Company Prefix. offline signals a transient "cannot tell right now"
// distinct from a definitive rejection; when offline is true, valid is
// ignored.
type GCPHook func(data []byte) (valid, offline bool)

// MediaTypeHook resolves whether data is a registered GS1 AIDC media
// type.
type MediaTypeHook func(data []byte) (valid bool)

// PackageTypeHook resolves whether data is a registered GS1
// PackageTypeCode.
type PackageTypeHook func(data []byte) (valid bool)

// Registry bundles the name→linter table together with any override
// hooks a caller has configured. The zero value is ready to use and
// behaves exactly like the package-level linter functions, consulting
// the embedded tables only.
type Registry struct {
	gcp         GCPHook
	mediaType   MediaTypeHook
	packageType PackageTypeHook
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithGCPHook installs a GCP lookup hook, consulted by the gcppos1 and
// gcppos2 linters this Registry's Lookup returns (the package-level
// GcpPos1 and GcpPos2 never consult it). The deprecated key/keyoff1
// names are never bound to it: they remain unconditional Ok shims
// regardless of configuration.
func WithGCPHook(h GCPHook) Option { return func(r *Registry) { r.gcp = h } }

// WithMediaTypeHook installs a media-type lookup hook, consulted by the
// mediatype linter this Registry's Lookup returns in place of the
// embedded table.
func WithMediaTypeHook(h MediaTypeHook) Option { return func(r *Registry) { r.mediaType = h } }

// WithPackageTypeHook installs a package-type lookup hook, consulted
// by the packagetype linter this Registry's Lookup returns in place of
// the embedded table.
func WithPackageTypeHook(h PackageTypeHook) Option { return func(r *Registry) { r.packageType = h } }

// NewRegistry builds a Registry with the given options applied.
func NewRegistry(opts ...Option) *Registry {
	r := new(Registry)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup resolves name to a Linter bound to this Registry's hooks,
// honoring the same sorted name table as the package-level Lookup.
func (r *Registry) Lookup(name string) (Linter, bool) {
	fn, ok := Lookup(name)
	if !ok {
		return nil, false
	}
	if r == nil || (r.gcp == nil && r.mediaType == nil && r.packageType == nil) {
		return fn, true
	}
	return r.bind(name, fn), true
}

// bind wraps fn so that it consults this Registry's hooks instead of
// the embedded tables, for the handful of linter names that honor a
// hook at all. The deprecated names key/keyoff1 are deliberately never
// bound here: they must return Ok unconditionally under every Registry
// configuration, per their shim in deprecated.go. Every other
// unlisted name passes through unchanged.
func (r *Registry) bind(name string, fn Linter) Linter {
	switch name {
	case "gcppos1":
		if r.gcp != nil {
			return func(data []byte) (Kind, int, int) { return gcpPos1WithHook(data, r.gcp) }
		}
	case "gcppos2":
		if r.gcp != nil {
			return func(data []byte) (Kind, int, int) { return gcpPos2WithHook(data, r.gcp) }
		}
	case "mediatype":
		if r.mediaType != nil {
			return func(data []byte) (Kind, int, int) { return mediaTypeWithHook(data, r.mediaType) }
		}
	case "packagetype":
		if r.packageType != nil {
			return func(data []byte) (Kind, int, int) { return packageTypeWithHook(data, r.packageType) }
		}
	}
	return fn
}
