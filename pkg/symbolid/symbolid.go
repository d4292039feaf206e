// Package symbolid mints the canonical SymbolId for every definition the
// indexer produces. Minting is a pure function of (kind, name, location); it
// holds no state and cannot fail, since callers are responsible for only
// minting ids from valid AST-derived names and locations.
package symbolid

import (
	"fmt"
	"strings"

	"github.com/archlane/semindex/pkg/location"
)

// Kind is the closed set of definition kinds the indexer recognises.
type Kind string

const (
	KindClass       Kind = "class"
	KindInterface   Kind = "interface"
	KindEnum        Kind = "enum"
	KindNamespace   Kind = "namespace"
	KindFunction    Kind = "function"
	KindMethod      Kind = "method"
	KindConstructor Kind = "constructor"
	KindParameter   Kind = "parameter"
	KindProperty    Kind = "property"
	KindVariable    Kind = "variable"
	KindConstant    Kind = "constant"
	KindTypeAlias   Kind = "type_alias"
	KindDecorator   Kind = "decorator"
	KindEnumMember  Kind = "enum_member"
	KindImport      Kind = "import"
)

// ID is an opaque, per-file-unique identifier for a definition.
//
// Shape: kind:file:start_line:start_col:end_line:end_col:name. Collisions
// are impossible because location is unique per AST node; two definitions
// sharing a name must therefore have distinct locations (§3 I5).
type ID string

// New mints a SymbolId from a kind, name and location. Two calls with
// identical inputs always produce byte-identical output.
func New(kind Kind, name string, loc location.Location) ID {
	return ID(fmt.Sprintf("%s:%s:%d:%d:%d:%d:%s",
		kind, loc.FilePath, loc.StartLine, loc.StartColumn, loc.EndLine, loc.EndColumn, name))
}

// KindOf extracts the kind encoded in an ID. Returns ("", false) if id is
// malformed (empty, or missing the leading "kind:" segment).
func KindOf(id ID) (Kind, bool) {
	s := string(id)
	idx := strings.IndexByte(s, ':')
	if idx <= 0 {
		return "", false
	}
	return Kind(s[:idx]), true
}

// ValidKind reports whether k is one of the enumerated, closed-set kinds.
func ValidKind(k Kind) bool {
	switch k {
	case KindClass, KindInterface, KindEnum, KindNamespace, KindFunction, KindMethod,
		KindConstructor, KindParameter, KindProperty, KindVariable, KindConstant,
		KindTypeAlias, KindDecorator, KindEnumMember, KindImport:
		return true
	default:
		return false
	}
}
