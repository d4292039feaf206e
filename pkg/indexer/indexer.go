// Package indexer orchestrates the two-pass pipeline described in §4.6: for
// one parsed file, build the lexical scope tree, then run every Language
// Adapter's aggregate handlers (Pass A) before its children/decorator
// handlers (Pass B), so that a method or parameter is always attached to an
// already-registered parent regardless of the order captures arrive in.
package indexer

import (
	"fmt"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/archlane/semindex/pkg/adapter"
	"github.com/archlane/semindex/pkg/definition"
	"github.com/archlane/semindex/pkg/lang"
	"github.com/archlane/semindex/pkg/location"
	"github.com/archlane/semindex/pkg/parser"
	"github.com/archlane/semindex/pkg/parser/queries"
	"github.com/archlane/semindex/pkg/scope"
	"github.com/archlane/semindex/pkg/symbolid"
)

// UnsupportedLanguageError is returned when a file's detected language has
// no registered Adapter.
type UnsupportedLanguageError struct {
	FilePath string
	Language lang.Language
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("indexer: %s: unsupported language %v", e.FilePath, e.Language)
}

// MalformedCaptureError describes a capture whose structure is missing the
// fields a handler needs. IndexFile never constructs or returns it: a match
// with no capture name the adapter recognises is skipped (see runPass).
type MalformedCaptureError struct {
	FilePath string
	Capture  string
	Reason   string
}

func (e *MalformedCaptureError) Error() string {
	return fmt.Sprintf("indexer: %s: malformed capture %q: %s", e.FilePath, e.Capture, e.Reason)
}

// ParsedFile is one file's raw inputs to Index: its path, source bytes, and
// detected language.
type ParsedFile struct {
	FilePath string
	Source   []byte
	Language lang.Language
}

// SymbolReference is a placeholder for the external reference pipeline's
// output. The core never populates it; a SemanticIndex's References field
// is always an empty slice of this type.
type SymbolReference struct {
	SymbolID symbolid.ID
	Location location.Location
}

// SemanticIndex is the per-file output described in §6: every definition
// the two-pass pipeline produced for one file, its scope tree, and the
// name -> SymbolID inverted index built once Pass A/B are done.
type SemanticIndex struct {
	FilePath      string
	Language      lang.Language
	Result        definition.BuilderResult
	Scopes        *scope.Tree
	References    []SymbolReference
	SymbolsByName map[string][]symbolid.ID
	Diagnostics   []definition.Diagnostic
	Errors        []error
}

// Indexer wires a ParserManager and QueryManager together to run the
// two-pass pipeline over individual files.
type Indexer struct {
	parsers *parser.ParserManager
	queries *queries.QueryManager
}

// New returns an Indexer backed by the given parser and query managers.
func New(pm *parser.ParserManager, qm *queries.QueryManager) *Indexer {
	return &Indexer{parsers: pm, queries: qm}
}

// IndexFile parses, scopes, and resolves definitions for one file,
// returning its SemanticIndex. Per-capture failures are recorded as soft
// errors on the returned SemanticIndex rather than aborting the file.
func (ix *Indexer) IndexFile(pf ParsedFile, isTSX bool) (*SemanticIndex, error) {
	a, err := adapter.For(pf.Language)
	if err != nil {
		return nil, &UnsupportedLanguageError{FilePath: pf.FilePath, Language: pf.Language}
	}

	tree, err := ix.parsers.Parse(pf.Source, pf.Language, isTSX)
	if err != nil {
		return nil, fmt.Errorf("indexer: %s: parse: %w", pf.FilePath, err)
	}
	defer tree.Close()

	si := &SemanticIndex{FilePath: pf.FilePath, Language: pf.Language}

	scopeTree, err := ix.buildScopeTree(tree, pf)
	if err != nil {
		si.Errors = append(si.Errors, err)
		scopeTree = scope.NewTree(pf.FilePath, location.FromNode(tree.RootNode(), pf.FilePath))
	}

	b := definition.NewBuilder()
	ctx := &adapter.Context{FilePath: pf.FilePath, Source: pf.Source, Scopes: scopeTree}

	symbolMatches, err := ix.runQuery(tree, pf, queries.QueryTypeSymbols)
	if err != nil {
		si.Errors = append(si.Errors, err)
	} else {
		runPass(a, symbolMatches, b, ctx, true)
		runPass(a, symbolMatches, b, ctx, false)
	}

	importMatches, err := ix.runQuery(tree, pf, queries.QueryTypeImports)
	if err != nil {
		si.Errors = append(si.Errors, err)
	} else {
		a.ProcessImports(filterImportMatches(a, importMatches), b, ctx)
	}

	si.Result = b.Build()
	si.Scopes = scopeTree
	si.References = []SymbolReference{}
	si.Diagnostics = b.Diagnostics()
	si.SymbolsByName = buildSymbolsByName(si.Result)
	return si, nil
}

// buildSymbolsByName is the name -> SymbolID inverted index §6 describes,
// built once per file by iterating each of the eight top-level BuilderResult
// maps a single time (Decorators is not included).
func buildSymbolsByName(r definition.BuilderResult) map[string][]symbolid.ID {
	out := make(map[string][]symbolid.ID)
	add := func(id symbolid.ID, name string) {
		out[name] = append(out[name], id)
	}
	for id, v := range r.Classes {
		add(id, v.H.Name)
	}
	for id, v := range r.Interfaces {
		add(id, v.H.Name)
	}
	for id, v := range r.Enums {
		add(id, v.H.Name)
	}
	for id, v := range r.Namespaces {
		add(id, v.H.Name)
	}
	for id, v := range r.Functions {
		add(id, v.H.Name)
	}
	for id, v := range r.Variables {
		add(id, v.H.Name)
	}
	for id, v := range r.TypeAliases {
		add(id, v.H.Name)
	}
	for id, v := range r.Imports {
		add(id, v.H.Name)
	}
	return out
}

// runPass dispatches every match's primary capture through the adapter,
// restricted to either the aggregate-creating handlers (aggregates=true,
// Pass A) or the child/decorator handlers (aggregates=false, Pass B).
// Running Pass A to completion before any Pass B call is what lets a
// method's find_containing_class always see its class already registered,
// regardless of the order tree-sitter happened to emit matches in.
func runPass(a adapter.Adapter, matches []queries.QueryMatch, b *definition.Builder, ctx *adapter.Context, aggregates bool) {
	for _, match := range matches {
		primary, captureName, ok := primaryOf(a, match, aggregates)
		if !ok {
			continue
		}
		handler, ok := a.Dispatch(captureName)
		if !ok {
			continue
		}
		handler(match, primary, b, ctx)
	}
}

func primaryOf(a adapter.Adapter, match queries.QueryMatch, aggregates bool) (queries.QueryCapture, string, bool) {
	for _, c := range match.Captures {
		if aggregates && a.IsAggregate(c.Name) {
			return c, c.Name, true
		}
		if !aggregates && a.IsChild(c.Name) {
			return c, c.Name, true
		}
	}
	return queries.QueryCapture{}, "", false
}

func filterImportMatches(a adapter.Adapter, matches []queries.QueryMatch) []queries.QueryMatch {
	names := a.ImportCaptureNames()
	var out []queries.QueryMatch
	for _, m := range matches {
		for _, c := range m.Captures {
			if names[c.Name] {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

func (ix *Indexer) runQuery(tree *ts.Tree, pf ParsedFile, qtype queries.QueryType) ([]queries.QueryMatch, error) {
	q, err := ix.queries.GetQuery(pf.Language, qtype)
	if err != nil {
		return nil, fmt.Errorf("indexer: %s: %s query: %w", pf.FilePath, qtype, err)
	}
	matches, err := ix.queries.ExecuteQuery(tree, q, pf.Source)
	if err != nil {
		return nil, fmt.Errorf("indexer: %s: %s execute: %w", pf.FilePath, qtype, err)
	}
	return matches, nil
}

// buildScopeTree is the language-agnostic scope-candidate conversion
// described in §4.3: every scope query capture's Field already equals a
// scope.Kind constant string, and a scope's name is read uniformly via the
// "name" field (absent for anonymous constructs like arrow functions and
// bare blocks).
func (ix *Indexer) buildScopeTree(tree *ts.Tree, pf ParsedFile) (*scope.Tree, error) {
	moduleLoc := location.FromNode(tree.RootNode(), pf.FilePath)
	t := scope.NewTree(pf.FilePath, moduleLoc)

	matches, err := ix.runQuery(tree, pf, queries.QueryTypeScopes)
	if err != nil {
		return nil, err
	}

	var candidates []scope.ScopeCapture
	for _, m := range matches {
		for _, c := range m.Captures {
			candidates = append(candidates, scope.ScopeCapture{
				Kind:     scope.Kind(c.Field),
				Name:     nameFieldOf(c, pf.Source),
				Location: location.FromNode(c.Node, pf.FilePath),
			})
		}
	}
	t.BuildFromCandidates(candidates)
	return t, nil
}

func nameFieldOf(c queries.QueryCapture, source []byte) string {
	n := c.Node.ChildByFieldName("name")
	if n == nil {
		return ""
	}
	return n.Utf8Text(source)
}

