package runtime

import (
	"regexp"
	"strings"

	"chocogen/internal/constpool"
)

// placeholderPattern matches STRING["..."] occurrences: a literal prefix,
// a double-quoted span (no embedded unescaped quotes), then the closing
// bracket (§4.8).
var placeholderPattern = regexp.MustCompile(`STRING\["((?:[^"\\]|\\.)*)"\]`)

// Binder rewrites a runtime fragment's STRING[...] placeholders against a
// constpool.Pool, interning each literal string the first time it's seen.
type Binder struct {
	store *Store
	pool  *constpool.Pool
}

// NewBinder builds a Binder reading fragments from store and interning
// into pool.
func NewBinder(store *Store, pool *constpool.Pool) *Binder {
	return &Binder{store: store, pool: pool}
}

// Fragment returns the named fragment's text with every STRING["..."]
// placeholder replaced by the interned string's label, right-padded with
// spaces to the placeholder's original span so hand-written column
// alignment in the fragment source is preserved (§4.8, §8 Scenario S6).
func (b *Binder) Fragment(name string) (string, error) {
	raw, err := b.store.Fragment(name)
	if err != nil {
		return "", err
	}
	return b.rewrite(raw), nil
}

// rewrite performs the length-preserving STRING[...] substitution pass.
func (b *Binder) rewrite(text string) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := placeholderPattern.FindStringSubmatch(match)
		literal := unescape(groups[1])
		label := b.pool.String(literal).String()
		if len(label) >= len(match) {
			return label
		}
		return label + strings.Repeat(" ", len(match)-len(label))
	})
}

// unescape resolves the backslash escapes allowed inside a STRING[...]
// placeholder's quoted span (\\ and \").
func unescape(s string) string {
	r := strings.NewReplacer(`\"`, `"`, `\\`, `\`)
	return r.Replace(s)
}
