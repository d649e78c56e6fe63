// Package cratedocs provides a small HTTP relay that looks up Rust crate
// documentation on docs.rs and returns it as plain text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, trafilatura/).
package cratedocs
