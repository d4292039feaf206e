package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/archlane/semindex/pkg/indexer"
	"github.com/archlane/semindex/pkg/symbolid"
)

// definitionSummary is the JSON shape returned for one definition, flattened
// out of whichever BuilderResult map it came from.
type definitionSummary struct {
	SymbolID   symbolid.ID   `json:"symbol_id"`
	Kind       symbolid.Kind `json:"kind"`
	Name       string        `json:"name"`
	IsExported bool          `json:"is_exported"`
	StartLine  int           `json:"start_line"`
}

func flattenDefinitions(si *indexer.SemanticIndex) []definitionSummary {
	var out []definitionSummary
	add := func(id symbolid.ID, name string, exported bool, startLine int) {
		kind, _ := symbolid.KindOf(id)
		out = append(out, definitionSummary{
			SymbolID:   id,
			Kind:       kind,
			Name:       name,
			IsExported: exported,
			StartLine:  startLine,
		})
	}
	r := si.Result
	for id, v := range r.Classes {
		add(id, v.H.Name, v.H.IsExported, v.H.Location.StartLine)
	}
	for id, v := range r.Interfaces {
		add(id, v.H.Name, v.H.IsExported, v.H.Location.StartLine)
	}
	for id, v := range r.Enums {
		add(id, v.H.Name, v.H.IsExported, v.H.Location.StartLine)
	}
	for id, v := range r.Namespaces {
		add(id, v.H.Name, v.H.IsExported, v.H.Location.StartLine)
	}
	for id, v := range r.Functions {
		add(id, v.H.Name, v.H.IsExported, v.H.Location.StartLine)
	}
	for id, v := range r.Variables {
		add(id, v.H.Name, v.H.IsExported, v.H.Location.StartLine)
	}
	for id, v := range r.TypeAliases {
		add(id, v.H.Name, v.H.IsExported, v.H.Location.StartLine)
	}
	for id, v := range r.Imports {
		add(id, v.H.Name, v.H.IsExported, v.H.Location.StartLine)
	}
	return out
}

func countByKind(defs []definitionSummary) map[symbolid.Kind]int {
	out := make(map[symbolid.Kind]int)
	for _, d := range defs {
		out[d.Kind]++
	}
	return out
}

func textResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("mcpserver: marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleIndexFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	si, err := s.index.Get(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	defs := flattenDefinitions(si)
	names := make([]string, 0, len(si.SymbolsByName))
	for name := range si.SymbolsByName {
		names = append(names, name)
	}

	return textResult(map[string]any{
		"path":            path,
		"language":        si.Language.String(),
		"counts_by_kind":  countByKind(defs),
		"total":           len(defs),
		"symbols_by_name": names,
	})
}

func (s *Server) handleListDefinitions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	kindFilter := req.GetString("kind", "")

	si, err := s.index.Get(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	defs := flattenDefinitions(si)
	if kindFilter != "" {
		filtered := defs[:0]
		for _, d := range defs {
			if string(d.Kind) == kindFilter {
				filtered = append(filtered, d)
			}
		}
		defs = filtered
	}

	return textResult(map[string]any{
		"path":        path,
		"definitions": defs,
	})
}

func (s *Server) handleFindSymbol(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ids := s.index.FindSymbol(name)
	return textResult(map[string]any{
		"name":       name,
		"symbol_ids": ids,
	})
}
