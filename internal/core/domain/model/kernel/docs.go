// Package kernel contains the shared domain primitives of the distribution system.
//
// It provides value objects used across all aggregates:
//   - UUID: identity for entities and aggregates
//   - Code: human-facing order correlation code, cryptographically random
//   - Actor: the acting identity (id, name, role, company/branch scope)
//   - Scope: explicit query-scoping context derived from an Actor
//
// All value objects are immutable and validate themselves on construction;
// zero values are invalid and rejected by Validate.
package kernel
