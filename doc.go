// Package gs1lint provides a library of reference linters for the
// component data fields that appear inside GS1 Application Identifier
// (AI) barcode payloads.
//
// # Linters
//
// A linter is a pure function that decides whether a candidate byte
// string conforms to a particular syntactic or semantic rule — a
// character set, a fixed code list, a date, a checksum, or a structured
// composite format such as a coupon code. Every linter returns Ok or a
// Kind together with the byte offset and length of the offending
// substring. Linters never allocate on the heap and never touch
// process-wide state; they are safe for concurrent use on distinct
// inputs without synchronization.
//
// # Registry
//
// Lookup resolves a linter by its GS1 Syntax Dictionary name through a
// sorted table and a binary search. Callers that need the optional GCP,
// media-type or package-type override hooks build a *Registry with
// NewRegistry instead of calling the package-level linter functions
// directly.
//
// This package is the engine only: parsing an AI payload, splitting it
// into components, and dispatching each component to the right linter
// is the job of an enclosing barcode-encoding framework, which is
// outside the scope of this module.
package gs1lint
