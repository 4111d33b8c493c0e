package cell

import (
	"fmt"
	"strings"
)

// Kind classifies the content of a sheet cell.
type Kind int

const (
	// KindPlain is a literal text value.
	KindPlain Kind = iota
	// KindFormula is an unresolved formula (serialized with a leading '=').
	KindFormula
	// KindHyperlink is a clickable link with a display label.
	KindHyperlink
)

// Value is the typed representation of a single sheet cell.
//
// The tabular store traffics in bare strings; Value keeps the distinction
// between plain text, formulas, and hyperlinks explicit inside the engine,
// and only collapses to the store's string form at the adapter boundary.
type Value struct {
	// Kind classifies the cell content.
	Kind Kind
	// Text is the literal text, formula body, or hyperlink label.
	Text string
	// Href is the link target. Only set for KindHyperlink.
	Href string
}

// Plain returns a plain text cell value.
func Plain(text string) Value {
	return Value{Kind: KindPlain, Text: text}
}

// Formula returns a formula cell value. The expression is stored without the
// leading '=' and re-attached on serialization.
func Formula(expr string) Value {
	return Value{Kind: KindFormula, Text: strings.TrimPrefix(expr, "=")}
}

// Hyperlink returns a hyperlink cell value rendering label as a clickable link.
func Hyperlink(href, label string) Value {
	return Value{Kind: KindHyperlink, Text: label, Href: href}
}

// Parse converts a raw store string into a typed Value.
//
// A leading '=' marks a formula; a HYPERLINK formula is recognized and
// promoted to KindHyperlink so marker inspection does not need to sniff
// string prefixes.
func Parse(raw string) Value {
	if !strings.HasPrefix(raw, "=") {
		return Plain(raw)
	}
	if href, label, ok := parseHyperlink(raw); ok {
		return Hyperlink(href, label)
	}
	return Formula(raw)
}

// String serializes the value back to the store's native string form.
func (v Value) String() string {
	switch v.Kind {
	case KindFormula:
		return "=" + v.Text
	case KindHyperlink:
		return fmt.Sprintf("=HYPERLINK(%q, %q)", v.Href, v.Text)
	default:
		return v.Text
	}
}

// IsEmpty reports whether the cell is meaningfully empty.
//
// Only plain cells can be empty; a formula or hyperlink cell always carries
// content even when its display text is blank.
func (v Value) IsEmpty() bool {
	return v.Kind == KindPlain && strings.TrimSpace(v.Text) == ""
}

// IsFormula reports whether the cell holds an unresolved formula.
func (v Value) IsFormula() bool {
	return v.Kind == KindFormula
}

// parseHyperlink extracts href and label from a =HYPERLINK("href", "label")
// expression. Returns ok=false for anything else.
func parseHyperlink(raw string) (href, label string, ok bool) {
	body := strings.TrimPrefix(raw, "=")
	if !strings.HasPrefix(strings.ToUpper(body), "HYPERLINK(") {
		return "", "", false
	}
	inner := body[len("HYPERLINK("):]
	inner = strings.TrimSuffix(strings.TrimSpace(inner), ")")

	parts := splitArgs(inner)
	if len(parts) != 2 {
		return "", "", false
	}
	href, ok1 := unquote(parts[0])
	label, ok2 := unquote(parts[1])
	if !ok1 || !ok2 {
		return "", "", false
	}
	return href, label, true
}

// splitArgs splits a formula argument list on top-level commas, respecting
// double-quoted strings.
func splitArgs(s string) []string {
	var parts []string
	var cur strings.Builder
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuote = !inQuote
			cur.WriteByte(c)
		case c == ',' && !inQuote:
			parts = append(parts, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, strings.TrimSpace(cur.String()))
	}
	return parts
}

func unquote(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", false
	}
	return s[1 : len(s)-1], true
}
