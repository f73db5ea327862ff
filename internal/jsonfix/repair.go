package jsonfix

import (
	"bytes"
	"encoding/json"
	"regexp"
)

// Normalization rules applied when a stripped file still fails to parse.
// Each rule collapses a whitespace-only empty container to its canonical
// token. Applied in order; both are idempotent.
var (
	emptyObjectPattern = regexp.MustCompile(`\{\s*\}`)
	emptyArrayPattern  = regexp.MustCompile(`\[\s*\]`)
)

// Normalize applies the textual repair rules to text.
func Normalize(text string) string {
	text = emptyObjectPattern.ReplaceAllString(text, "{}")
	text = emptyArrayPattern.ReplaceAllString(text, "[]")
	return text
}

// Format serializes v with 2-space indentation. HTML escaping is off so
// non-ASCII and <>& runes are written literally.
func Format(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Repair parses text as JSON and returns it pretty-printed. On a parse
// failure it normalizes the text and retries once. If the retry also fails,
// Repair returns the normalized text together with the retry's parse error
// so the caller can save it for manual review. The bool reports whether
// normalization was needed.
func Repair(text string) ([]byte, bool, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err == nil {
		out, ferr := Format(v)
		return out, false, ferr
	}

	normalized := Normalize(text)
	if err := json.Unmarshal([]byte(normalized), &v); err != nil {
		return []byte(normalized), true, err
	}

	out, err := Format(v)
	return out, true, err
}
