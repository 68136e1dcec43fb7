package cst

import "fmt"

// Validate checks the structural invariants a finished tree must hold:
// token spans never regress or overlap, and no trivia span is attached to
// more than one node edge. Trivia that was never attached at all is not
// detected here, since Validate sees only the tree, not the token stream.
// The parser and AttachTrivia satisfy these by
// construction; Validate exists to confirm that in tests and to catch a
// future change to either one that breaks the contract.
func Validate(root *Node) []*ParseError {
	var errs []*ParseError
	leaves := collectLeaves(root)

	prevEnd := -1
	for _, leaf := range leaves {
		sp := leaf.Span()
		if sp.IsDetached() {
			continue
		}
		if sp.Start < prevEnd {
			errs = append(errs, &ParseError{
				Kind:    "internal",
				Span:    sp,
				Message: fmt.Sprintf("token span regresses: starts at %d before prior token ends at %d", sp.Start, prevEnd),
			})
		}
		prevEnd = sp.End
	}

	seen := make(map[[2]int]int)
	for _, leaf := range leaves {
		for _, t := range leaf.Leading {
			recordTriviaSpan(seen, t)
		}
		for _, t := range leaf.Trailing {
			recordTriviaSpan(seen, t)
		}
	}
	for key, count := range seen {
		if count > 1 {
			errs = append(errs, &ParseError{
				Kind:    "internal",
				Message: fmt.Sprintf("trivia span %v attached to %d node edges, want exactly 1", key, count),
			})
		}
	}

	return errs
}

func recordTriviaSpan(seen map[[2]int]int, t Trivia) {
	if t.Span.IsDetached() {
		return
	}
	key := [2]int{t.Span.Start, t.Span.End}
	seen[key]++
}
