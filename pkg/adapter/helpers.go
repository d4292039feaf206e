package adapter

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/archlane/semindex/pkg/location"
)

// text returns the source text covered by node, or "" if node is nil.
func text(n *ts.Node, source []byte) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(source)
}

// stripQuotes trims a single layer of quote characters from a string
// literal's text. Tree-sitter's string_fragment nodes already exclude the
// quotes; this guards the cases where a raw "string" node's text is used
// instead.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'' || first == '`') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// stripAngleBrackets trims a leading "<" and trailing ">" from a generic
// parameter list's raw text (e.g. "<T, U>" -> "T, U").
func stripAngleBrackets(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "<")
	s = strings.TrimSuffix(s, ">")
	return strings.TrimSpace(s)
}

// splitGenericNames splits a comma-separated generic parameter list into
// individual, trimmed type-parameter names (dropping any "extends .../:
// ..." bound, keeping only the leading identifier).
func splitGenericNames(raw string) []string {
	raw = stripAngleBrackets(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		// keep only the bare name: "T extends Foo" -> "T", "T: Bound" -> "T"
		if i := strings.IndexAny(p, " :"); i >= 0 {
			p = p[:i]
		}
		out = append(out, p)
	}
	return out
}

// stripTypeAnnotationPrefix removes a leading ":" (TS type_annotation text
// includes the colon) from a type annotation's raw text.
func stripTypeAnnotationPrefix(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimPrefix(s, ":"))
}

// walkUp walks node's parent chain (inclusive of node itself) until pred
// returns true, returning that node, or nil if the root is reached first.
func walkUp(n *ts.Node, pred func(*ts.Node) bool) *ts.Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		if pred(cur) {
			return cur
		}
	}
	return nil
}

// findContainingKind walks up from node (exclusive of node itself) and
// returns the nearest ancestor whose Kind() is one of kinds, or nil if the
// root is reached first. Because the walk stops at the first match, the
// innermost enclosing construct is returned, never an outer one.
func findContainingKind(n *ts.Node, kinds map[string]bool) *ts.Node {
	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		if kinds[cur.Kind()] {
			return cur
		}
	}
	return nil
}

// nameOf returns the text of node's "name" field, or "" if absent.
func nameOf(n *ts.Node, source []byte) string {
	if n == nil {
		return ""
	}
	return text(n.ChildByFieldName("name"), source)
}

// enclosingStatementSource walks up from node to the nearest import or
// export statement, returning its declared module path (quotes stripped)
// and whether the enclosing statement is an export (re-export) rather than
// a plain import.
func enclosingStatementSource(n *ts.Node, source []byte) (path string, isExport bool, found bool) {
	stmt := findContainingKind(n, map[string]bool{"import_statement": true, "export_statement": true})
	if stmt == nil && n != nil {
		if n.Kind() == "import_statement" || n.Kind() == "export_statement" {
			stmt = n
		}
	}
	if stmt == nil {
		return "", false, false
	}
	src := stmt.ChildByFieldName("source")
	return stripQuotes(text(src, source)), stmt.Kind() == "export_statement", true
}

// bodyLikeKinds lists the node kinds that collectDescendantTexts does not
// descend into, restricting its search to the "header" portion of a
// definition node, so that scanning for extends/implements markers never
// descends into nested declarations inside the body.
var bodyLikeKinds = map[string]bool{
	"class_body": true, "interface_body": true, "enum_body": true,
	"statement_block": true, "block": true, "declaration_list": true,
	"field_declaration_list": true, "enum_variant_list": true,
}

// collectDescendantTexts performs a depth-first walk over node's children,
// collecting the text of every descendant whose Kind() is in kinds, without
// descending into body-like child nodes (so nested declarations' own
// extends/implements clauses are never picked up).
func collectDescendantTexts(n *ts.Node, kinds map[string]bool, source []byte) []string {
	var out []string
	var walk func(*ts.Node)
	walk = func(cur *ts.Node) {
		if cur == nil {
			return
		}
		if kinds[cur.Kind()] {
			out = append(out, text(cur, source))
			return
		}
		if bodyLikeKinds[cur.Kind()] {
			return
		}
		count := int(cur.ChildCount())
		for i := 0; i < count; i++ {
			walk(cur.Child(uint(i)))
		}
	}
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		walk(n.Child(uint(i)))
	}
	return out
}

// loc is a small shorthand for location.FromNode.
func loc(n *ts.Node, filePath string) location.Location {
	return location.FromNode(n, filePath)
}
