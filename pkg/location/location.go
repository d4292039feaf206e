// Package location normalises tree-sitter's zero-indexed grammar positions
// into the one-indexed, half-open coordinates the rest of the indexer works
// with.
package location

import (
	ts "github.com/tree-sitter/go-tree-sitter"
)

// Location is a position in a single source file.
//
// Lines and start-column are 1-indexed; end-column is tree-sitter's
// 0-indexed exclusive end column, copied verbatim, so a node covering only
// the fifth character of a line has StartColumn=5, EndColumn=5. Two locations in the same file are equal iff all five
// comparable fields match.
type Location struct {
	FilePath    string
	StartLine   uint32
	StartColumn uint32
	EndLine     uint32
	EndColumn   uint32

	// StartByte/EndByte are 0-indexed byte offsets straight from tree-sitter,
	// kept verbatim for O(1) code slicing (sourceCode[StartByte:EndByte]).
	StartByte uint32
	EndByte   uint32
}

// Equal reports whether two locations refer to the same span in the same file.
func Equal(a, b Location) bool {
	return a.FilePath == b.FilePath &&
		a.StartLine == b.StartLine &&
		a.StartColumn == b.StartColumn &&
		a.EndLine == b.EndLine &&
		a.EndColumn == b.EndColumn
}

// Contains reports whether a contains b (a is the outer span); a span equal
// to b counts as containing it.
// Used by the scope tree to find the innermost enclosing scope.
func Contains(a, b Location) bool {
	if a.FilePath != b.FilePath {
		return false
	}
	startsBeforeOrAt := a.StartLine < b.StartLine || (a.StartLine == b.StartLine && a.StartColumn <= b.StartColumn)
	endsAfterOrAt := a.EndLine > b.EndLine || (a.EndLine == b.EndLine && a.EndColumn >= b.EndColumn)
	return startsBeforeOrAt && endsAfterOrAt
}

// ContainsPoint reports whether loc contains a zero-width point (start ==
// end) used for "which scope contains this location" queries against a
// single definition's start position.
func ContainsPoint(loc Location, line, column uint32) bool {
	afterStart := line > loc.StartLine || (line == loc.StartLine && column >= loc.StartColumn)
	beforeEnd := line < loc.EndLine || (line == loc.EndLine && column < loc.EndColumn)
	return afterStart && beforeEnd
}

// FromNode converts a tree-sitter node's position into a Location.
//
// Per the normalisation contract: row and start-column gain 1 to become
// 1-indexed; the end column is copied verbatim to preserve the half-open
// [start, end) convention on columns, while lines stay inclusive at both
// ends.
func FromNode(node *ts.Node, filePath string) Location {
	start := node.StartPosition()
	end := node.EndPosition()

	return Location{
		FilePath:    filePath,
		StartLine:   uint32(start.Row) + 1,
		StartColumn: uint32(start.Column) + 1,
		EndLine:     uint32(end.Row) + 1,
		EndColumn:   uint32(end.Column),
		StartByte:   uint32(node.StartByte()),
		EndByte:     uint32(node.EndByte()),
	}
}
