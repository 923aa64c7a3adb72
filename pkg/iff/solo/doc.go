// Package solo contains single-shot, synchronous selection primitives that
// operate without the fluent chain. These are the building blocks for call
// sites where a flat form reads better than a method chain.
//
// Highlights:
// - Ternary/TernaryF: two-way select, eager or lazy
// - Case/When: pair a computed condition with its outcome
// - Match: first true case wins, producer fixed exactly once
// - MatchOr: Match with a default value
package solo
