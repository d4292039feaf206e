// Package adapter implements one Language Adapter per supported grammar
// (JavaScript, TypeScript, Python, Rust): a capture dispatch table mapping
// tree-sitter query capture names to Handlers, plus the AST-shape helpers
// those handlers rely on (containing-class lookup, visibility extraction,
// decorator-target resolution, ...).
//
// An adapter never mutates the parse tree and holds no state across files;
// all per-file state lives on the Context passed into every Handler call.
package adapter

import (
	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/archlane/semindex/pkg/definition"
	"github.com/archlane/semindex/pkg/parser/queries"
	"github.com/archlane/semindex/pkg/scope"
)

// Context carries everything a Handler needs beyond the Builder itself.
type Context struct {
	FilePath string
	Source   []byte
	Scopes   *scope.Tree
}

// Handler processes one capture (plus the sibling captures from the same
// query match, for pulling out same-match metadata) against the Builder.
// Handlers are side-effecting only on the Builder; they MUST be idempotent
// with respect to receiving the same capture twice.
type Handler func(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context)

// Adapter is the per-language bundle described in §4.4: a capture dispatch
// table plus the AST-shape/metadata helpers the handlers share.
type Adapter interface {
	// Dispatch returns the Handler registered for a capture name, and
	// whether one exists. Captures with no registered handler are silently
	// ignored by the Indexer — "captures the adapter does not claim are
	// not its concern".
	Dispatch(captureName string) (Handler, bool)

	// IsAggregate reports whether captureName belongs to Pass A (the
	// aggregate-creating handlers: class/interface/enum/namespace/
	// function/variable/import/type-alias).
	IsAggregate(captureName string) bool

	// IsChild reports whether captureName belongs to Pass B (children and
	// decorators: method/constructor/property/parameter/enum-member/
	// decorator).
	IsChild(captureName string) bool

	// ImportCaptureNames lists every capture name the adapter's import
	// query can produce that independently mints an Import definition
	// (handled by ProcessImports rather than the generic dispatch table,
	// since a single logical import/re-export statement is frequently
	// split across more than one query match).
	ImportCaptureNames() map[string]bool

	// ProcessImports runs the language's import/re-export extraction over
	// every import-category match produced by the import query, directly
	// registering Import definitions on the Builder. Unlike dispatch
	// Handlers, import processing needs cross-match context (the
	// enclosing statement's source path) that a single capture cannot
	// supply on its own.
	ProcessImports(matches []queries.QueryMatch, b *definition.Builder, ctx *Context)
}

// registry is the shared dispatch-table implementation every concrete
// adapter embeds and populates.
type registry struct {
	aggregate map[string]Handler
	child     map[string]Handler
	noop      map[string]bool
	imports   map[string]bool
}

func newRegistry() *registry {
	return &registry{
		aggregate: make(map[string]Handler),
		child:     make(map[string]Handler),
		noop:      make(map[string]bool),
		imports:   make(map[string]bool),
	}
}

func (r *registry) addAggregate(name string, h Handler) { r.aggregate[name] = h }
func (r *registry) addChild(name string, h Handler)     { r.child[name] = h }
func (r *registry) addNoop(names ...string) {
	for _, n := range names {
		r.noop[n] = true
	}
}
func (r *registry) addImportNames(names ...string) {
	for _, n := range names {
		r.imports[n] = true
	}
}

func (r *registry) Dispatch(name string) (Handler, bool) {
	if h, ok := r.aggregate[name]; ok {
		return h, true
	}
	if h, ok := r.child[name]; ok {
		return h, true
	}
	if r.noop[name] {
		return func(queries.QueryMatch, queries.QueryCapture, *definition.Builder, *Context) {}, true
	}
	return nil, false
}

func (r *registry) IsAggregate(name string) bool { _, ok := r.aggregate[name]; return ok }
func (r *registry) IsChild(name string) bool     { _, ok := r.child[name]; return ok }
func (r *registry) ImportCaptureNames() map[string]bool { return r.imports }

// primaryCapture returns the capture within match that the registry has
// registered a handler for (aggregate, child, or explicit no-op), or false
// if the match carries only metadata captures the registry does not claim.
func (r *registry) primaryCapture(match queries.QueryMatch) (queries.QueryCapture, bool) {
	for _, c := range match.Captures {
		if _, ok := r.aggregate[c.Name]; ok {
			return c, true
		}
	}
	for _, c := range match.Captures {
		if _, ok := r.child[c.Name]; ok {
			return c, true
		}
	}
	for _, c := range match.Captures {
		if r.noop[c.Name] {
			return c, true
		}
	}
	return queries.QueryCapture{}, false
}

// siblingByField returns the capture in match whose Field (the portion
// after "<category>.") equals field, if any. Used by Handlers to pull
// same-match metadata (e.g. a method's "async"/"static"/"params" captures)
// without re-walking the tree.
func siblingByField(match queries.QueryMatch, field string) (queries.QueryCapture, bool) {
	for _, c := range match.Captures {
		if c.Field == field {
			return c, true
		}
	}
	return queries.QueryCapture{}, false
}

// siblingsByFieldPrefix returns every capture whose Field starts with
// prefix, in match order. Used to collect repeated captures from a single
// match (e.g. every parameter name inside one parameter list).
func siblingsByFieldPrefix(match queries.QueryMatch, prefix string) []queries.QueryCapture {
	var out []queries.QueryCapture
	for _, c := range match.Captures {
		if c.Field == prefix || (len(c.Field) > len(prefix) && c.Field[:len(prefix)+1] == prefix+".") {
			out = append(out, c)
		}
	}
	return out
}

// hasSibling reports whether match contains a capture whose Field equals
// field (used for boolean-presence flags like "async"/"static"/"readonly").
func hasSibling(match queries.QueryMatch, field string) bool {
	_, ok := siblingByField(match, field)
	return ok
}

// node is a small convenience accessor: returns the tree-sitter node behind
// a capture, or nil if the capture is the zero value.
func node(c queries.QueryCapture) *ts.Node { return c.Node }
