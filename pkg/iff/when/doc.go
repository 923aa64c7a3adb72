// Package when provides a fluent Chain[T] that replaces nested ternary
// expressions and if/else-if ladders with a method chain usable inside
// expression contexts.
//
// The chain tracks which branch matched internally, so the same short method
// names work at every position:
// - Start: open a chain on the first condition
// - Then: fix the outcome if the current condition holds
// - Elif/ElseIf: open the next branch test
// - Else/ElseThen: default branch, with or without an immediate outcome
// - End/EndOr: terminate to an Option[T] or a plain value with default
// - Finally: reduce to a concrete value via match/no-match handlers
//
// The first true condition wins; later branches are cheap passthroughs and
// their producers never run. A chain that never matches terminates to None.
package when
