// Package queries provides tree-sitter query compilation, caching, and execution.
package queries

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/archlane/semindex/pkg/lang"
	"github.com/archlane/semindex/pkg/parser"
	"github.com/archlane/semindex/pkg/parser/queries/imports"
	"github.com/archlane/semindex/pkg/parser/queries/scopes"
	"github.com/archlane/semindex/pkg/parser/queries/symbols"
)

// QueryType identifies which type of query to execute (symbols, imports, scopes).
type QueryType int

const (
	// QueryTypeSymbols extracts definition captures (classes, functions,
	// methods, parameters, properties, enums, ...).
	QueryTypeSymbols QueryType = iota
	// QueryTypeImports extracts import/re-export captures.
	QueryTypeImports
	// QueryTypeScopes extracts scope-delimiter captures for the scope tree.
	QueryTypeScopes
)

// String returns the string representation of a QueryType.
func (qt QueryType) String() string {
	switch qt {
	case QueryTypeSymbols:
		return "symbols"
	case QueryTypeImports:
		return "imports"
	case QueryTypeScopes:
		return "scopes"
	default:
		return "unknown"
	}
}

// queryKey uniquely identifies a compiled query (language + type).
type queryKey struct {
	language lang.Language
	qtype    QueryType
}

// QueryManager manages tree-sitter query compilation and caching.
//
// Features:
//   - Lazy query compilation: Queries compiled on first use
//   - Thread-safe caching: Uses sync.RWMutex for concurrent access
//   - Memory management: Queries freed via Close()
//
// Usage:
//
//	qm := NewQueryManager(parserManager, logger)
//	defer qm.Close()
//
//	query, err := qm.GetQuery(lang.LanguageTypeScript, QueryTypeSymbols)
//	if err != nil {
//	    return err
//	}
//
//	matches, err := qm.ExecuteQuery(tree, query, sourceCode)
type QueryManager struct {
	parserManager *parser.ParserManager
	cache         map[queryKey]*ts.Query
	mutex         sync.RWMutex
	logger        *slog.Logger
}

// NewQueryManager creates a new query manager.
//
// The parserManager is required to access language-specific parsers for query compilation.
// Logger can be nil (will use default slog logger).
func NewQueryManager(pm *parser.ParserManager, logger *slog.Logger) *QueryManager {
	if logger == nil {
		logger = slog.Default()
	}

	return &QueryManager{
		parserManager: pm,
		cache:         make(map[queryKey]*ts.Query),
		logger:        logger,
	}
}

// GetQuery returns a compiled query for the specified language and type.
//
// Queries are compiled lazily on first access and cached for subsequent calls.
// This method is thread-safe.
func (qm *QueryManager) GetQuery(language lang.Language, qtype QueryType) (*ts.Query, error) {
	key := queryKey{language: language, qtype: qtype}

	qm.mutex.RLock()
	query, exists := qm.cache[key]
	qm.mutex.RUnlock()

	if exists {
		return query, nil
	}

	qm.mutex.Lock()
	defer qm.mutex.Unlock()

	if query, exists = qm.cache[key]; exists {
		return query, nil
	}

	queryString, err := qm.getQueryString(language, qtype)
	if err != nil {
		return nil, err
	}

	langPtr, err := qm.parserManager.GetLanguagePointer(language, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get language pointer for %s: %w", language, err)
	}

	tsLang := ts.NewLanguage(langPtr)

	query, qerr := ts.NewQuery(tsLang, queryString)
	if qerr != nil {
		return nil, fmt.Errorf("failed to compile %s query for %s: %s", qtype, language, qerr.Message)
	}

	qm.cache[key] = query

	qm.logger.Debug("compiled query",
		"language", language.String(),
		"type", qtype.String())

	return query, nil
}

// getQueryString returns the query string for a language and type.
func (qm *QueryManager) getQueryString(language lang.Language, qtype QueryType) (string, error) {
	switch qtype {
	case QueryTypeSymbols:
		return qm.getSymbolQuery(language)
	case QueryTypeImports:
		return qm.getImportQuery(language)
	case QueryTypeScopes:
		return qm.getScopeQuery(language)
	default:
		return "", fmt.Errorf("unknown query type: %d", qtype)
	}
}

// getSymbolQuery returns the definition-capture query for a language.
func (qm *QueryManager) getSymbolQuery(language lang.Language) (string, error) {
	switch language {
	case lang.LanguageJavaScript:
		return symbols.JSQueries, nil
	case lang.LanguageTypeScript:
		return symbols.TSQueries, nil
	case lang.LanguagePython:
		return symbols.PythonQueries, nil
	case lang.LanguageRust:
		return symbols.RustQueries, nil
	default:
		return "", fmt.Errorf("unsupported language for symbol queries: %s", language)
	}
}

// getImportQuery returns the import/re-export capture query for a language.
func (qm *QueryManager) getImportQuery(language lang.Language) (string, error) {
	switch language {
	case lang.LanguageJavaScript:
		return imports.JSQueries, nil
	case lang.LanguageTypeScript:
		return imports.TSQueries, nil
	case lang.LanguagePython:
		return imports.PythonQueries, nil
	case lang.LanguageRust:
		return imports.RustQueries, nil
	default:
		return "", fmt.Errorf("unsupported language for import queries: %s", language)
	}
}

// getScopeQuery returns the scope-delimiter capture query for a language.
func (qm *QueryManager) getScopeQuery(language lang.Language) (string, error) {
	switch language {
	case lang.LanguageJavaScript:
		return scopes.JSQueries, nil
	case lang.LanguageTypeScript:
		return scopes.TSQueries, nil
	case lang.LanguagePython:
		return scopes.PythonQueries, nil
	case lang.LanguageRust:
		return scopes.RustQueries, nil
	default:
		return "", fmt.Errorf("unsupported language for scope queries: %s", language)
	}
}

// ExecuteQuery runs a compiled query on a parse tree and returns structured matches.
//
// Performance: Typical execution time is <10ms per file.
func (qm *QueryManager) ExecuteQuery(tree *ts.Tree, query *ts.Query, source []byte) ([]QueryMatch, error) {
	if tree == nil {
		return nil, fmt.Errorf("tree is nil")
	}
	if query == nil {
		return nil, fmt.Errorf("query is nil")
	}

	cursor := ts.NewQueryCursor()
	defer cursor.Close()

	iter := cursor.Matches(query, tree.RootNode(), source)
	captureNames := query.CaptureNames()

	var matches []QueryMatch
	for {
		match := iter.Next()
		if match == nil {
			break
		}

		var captures []QueryCapture
		for _, capture := range match.Captures {
			var captureName string
			if int(capture.Index) < len(captureNames) {
				captureName = captureNames[capture.Index]
			}

			category, field := parseCaptureName(captureName)
			text := capture.Node.Utf8Text(source)

			captures = append(captures, QueryCapture{
				Name:     captureName,
				Category: category,
				Field:    field,
				Node:     &capture.Node,
				Text:     text,
				Location: nodeLocation(&capture.Node),
			})
		}

		matches = append(matches, QueryMatch{
			PatternIndex: uint32(match.PatternIndex),
			Captures:     captures,
		})
	}

	return matches, nil
}

// Close releases all compiled queries.
//
// MUST be called when QueryManager is no longer needed to avoid memory leaks.
// After Close(), the QueryManager cannot be used.
func (qm *QueryManager) Close() error {
	qm.mutex.Lock()
	defer qm.mutex.Unlock()

	qm.logger.Info("closing QueryManager",
		"queries_compiled", len(qm.cache))

	for key, query := range qm.cache {
		if query != nil {
			query.Close()
		}
		delete(qm.cache, key)
	}

	return nil
}

// QueryMatch represents a single pattern match from query execution.
type QueryMatch struct {
	// PatternIndex identifies which query pattern matched
	PatternIndex uint32

	// Captures contains all captured nodes for this match
	Captures []QueryCapture
}

// QueryCapture represents a single captured node from a query match.
//
// Name is the full dot-delimited capture name, e.g. "definition.method.async"
// or "import.reexport.default.alias". Category/Field are its split halves, per
// the Indexer's capture-dispatch convention.
type QueryCapture struct {
	Name     string
	Category string
	Field    string
	Node     *ts.Node
	Text     string
	Location Location
}

// Location is a raw, pre-normalisation position produced directly from a
// tree-sitter node by nodeLocation. The adapters and the Indexer do not read
// it; they compute a pkg/location.Location with location.FromNode on the
// capture's Node instead.
type Location struct {
	StartLine   uint32
	StartColumn uint32
	EndLine     uint32
	EndColumn   uint32
	StartByte   uint32
	EndByte     uint32
}

// parseCaptureName splits a capture name like "definition.method.async" into
// ("definition", "method.async"). Field is not split further: the Indexer
// uses a scope capture's Field directly as its scope.Kind, and the
// aggregate-vs-child pass split is decided on the full capture Name.
func parseCaptureName(name string) (category, field string) {
	parts := strings.SplitN(name, ".", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return name, ""
}

// nodeLocation extracts a raw position from a tree-sitter node, 1-indexing
// rows and both columns. Callers needing the normalised Location (verbatim
// end-column) should use pkg/location.FromNode directly on the node instead
// of this transport struct.
func nodeLocation(node *ts.Node) Location {
	start := node.StartPosition()
	end := node.EndPosition()

	return Location{
		StartLine:   uint32(start.Row + 1),
		StartColumn: uint32(start.Column + 1),
		EndLine:     uint32(end.Row + 1),
		EndColumn:   uint32(end.Column + 1),
		StartByte:   uint32(node.StartByte()),
		EndByte:     uint32(node.EndByte()),
	}
}
