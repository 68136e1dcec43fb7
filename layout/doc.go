// Package layout implements the layout engine: a linear-time best-fit
// pretty-printer that renders a docfmt.Doc to the final text, deciding per
// Group whether to render flat or broken and tracking the indent stack,
// comment re-insertion, and trailing-newline normalization.
//
// Measurement is bounded: a running flat-width sum that exceeds the
// remaining line budget stops accumulating immediately, since no further
// addition can change a decision that's already broken. Placement itself is
// a single greedy left-to-right pass with no backtracking once a group's
// flat-or-broken choice is made.
package layout
