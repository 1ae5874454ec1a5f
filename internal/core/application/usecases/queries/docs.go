// Package queries contains the read side of the application layer.
//
// Query handlers read the database directly with parameterized SQL instead of
// going through the aggregate repositories: reads need joins, counts and
// projections the write-side repositories have no reason to support. Every
// handler takes an explicit kernel.Scope and compiles it into a WHERE
// predicate, so row visibility is enforced in the database, not by
// post-filtering in Go.
package queries
