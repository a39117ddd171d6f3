package runtime

import (
	"strings"
	"testing"

	"chocogen/internal/constpool"
)

// TestRewritePreservesSpanLength is Scenario S6: a STRING[...] placeholder
// is replaced by its interned label, space-padded so the fragment's
// hand-aligned columns don't shift.
func TestRewritePreservesSpanLength(t *testing.T) {
	pool := constpool.New()
	b := &Binder{store: nil, pool: pool}

	placeholder := `STRING["hi"]`
	out := b.rewrite("\tla\ta1, " + placeholder + "\n")

	label := pool.StringLabel("hi").String()
	wantLine := "\tla\ta1, " + label + strings.Repeat(" ", len(placeholder)-len(label)) + "\n"
	if out != wantLine {
		t.Errorf("rewrite() = %q, want %q", out, wantLine)
	}
}

// TestRewriteInternsEachLiteralOnce checks that two placeholders with the
// same literal resolve to the same label, via the shared pool.
func TestRewriteInternsEachLiteralOnce(t *testing.T) {
	pool := constpool.New()
	b := &Binder{store: nil, pool: pool}

	out := b.rewrite(`STRING["dup"] STRING["dup"]`)
	label := pool.StringLabel("dup").String()
	if got := strings.Count(out, label); got != 2 {
		t.Errorf("rewrite produced %d occurrences of label %q, want 2 (one per placeholder)", got, label)
	}
	if len(pool.Strings()) != 1 {
		t.Errorf("pool interned %d distinct strings, want 1", len(pool.Strings()))
	}
}

// TestRewriteHandlesEscapedQuotes checks that a backslash-escaped quote
// inside a placeholder's literal span doesn't terminate the match early.
func TestRewriteHandlesEscapedQuotes(t *testing.T) {
	pool := constpool.New()
	b := &Binder{store: nil, pool: pool}

	b.rewrite(`STRING["say \"hi\""]`)
	if len(pool.Strings()) != 1 {
		t.Fatalf("expected exactly one interned string, got %d", len(pool.Strings()))
	}
	if got, want := pool.Strings()[0], `say "hi"`; got != want {
		t.Errorf("interned literal = %q, want %q", got, want)
	}
}

// TestFragmentPropagatesStoreError checks that Fragment surfaces a missing
// resource as an error rather than panicking or silently returning empty
// text.
func TestFragmentPropagatesStoreError(t *testing.T) {
	if _, err := Default.Fragment("does-not-exist"); err == nil {
		t.Fatal("Fragment on a missing resource returned no error")
	}
}
