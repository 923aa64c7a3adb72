// Package lite provides a minimal value-only conditional chain for simple
// selections where every candidate is already computed and a default is at
// hand.
//
// Common usage:
// - If/Elif/ElseIf: test conditions in order, first true wins
// - Else: terminate with a default
// - End: terminate without a default, reporting whether anything matched
//
// For deferred outcomes and an explicit no-match type, see package when.
package lite
