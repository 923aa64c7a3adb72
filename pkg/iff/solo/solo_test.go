package solo

import (
	"testing"

	"github.com/ib-77/iff/pkg/iff"
)

func TestTernary(t *testing.T) {
	t.Parallel()
	if got := Ternary(true, "a", "b"); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	if got := Ternary(false, "a", "b"); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
}

func TestTernaryF_OnlyWinnerRuns(t *testing.T) {
	t.Parallel()
	aCalls, bCalls := 0, 0
	got := TernaryF(false,
		func() int { aCalls++; return 1 },
		func() int { bCalls++; return 2 },
	)
	if got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if aCalls != 0 || bCalls != 1 {
		t.Fatalf("expected only losing side skipped; aCalls=%d, bCalls=%d", aCalls, bCalls)
	}
}

func TestMatch_FirstTrueWins(t *testing.T) {
	t.Parallel()
	out := Match(
		When(false, iff.Value("x")),
		When(true, iff.Value("y")),
		When(true, iff.Value("z")),
	)
	if !out.IsSome() || out.Value() != "y" {
		t.Fatalf("expected Some(y), got: some=%v, val=%q", out.IsSome(), out.Value())
	}
}

func TestMatch_NoWinnerIsNone(t *testing.T) {
	t.Parallel()
	out := Match(
		When(false, iff.Value(1)),
		When(false, iff.Value(2)),
	)
	if !out.IsNone() {
		t.Fatalf("expected None, got Some(%v)", out.Value())
	}
}

func TestMatch_ProducerFixedExactlyOnce(t *testing.T) {
	t.Parallel()
	winner, loser := 0, 0
	out := Match(
		When(false, iff.Produce(func() int { loser++; return 1 })),
		When(true, iff.Produce(func() int { winner++; return 2 })),
		When(true, iff.Produce(func() int { loser++; return 3 })),
	)
	if !out.IsSome() || out.Value() != 2 {
		t.Fatalf("expected Some(2), got: some=%v, val=%v", out.IsSome(), out.Value())
	}
	if winner != 1 || loser != 0 {
		t.Fatalf("expected winner once and losers never; winner=%d, loser=%d", winner, loser)
	}
}

func TestMatchOr(t *testing.T) {
	t.Parallel()
	if got := MatchOr("def", When(true, iff.Value("hit"))); got != "hit" {
		t.Fatalf("expected hit, got %q", got)
	}
	if got := MatchOr("def", When(false, iff.Value("hit"))); got != "def" {
		t.Fatalf("expected def, got %q", got)
	}
	if got := MatchOr(9); got != 9 {
		t.Fatalf("expected default 9 on empty cases, got %d", got)
	}
}
