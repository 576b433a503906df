// Package kernel provides shared value objects used across all aggregates.
// Its UUID type wraps github.com/google/uuid to give identifiers domain
// behavior: constructor-enforced validity, value semantics, and explicit
// validation when reconstructing entities from persistence.
package kernel
