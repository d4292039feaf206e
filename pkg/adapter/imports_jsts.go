package adapter

import (
	"github.com/archlane/semindex/pkg/definition"
	"github.com/archlane/semindex/pkg/parser/queries"
	"github.com/archlane/semindex/pkg/symbolid"
)

// processJSTSImports implements the import/re-export extraction described
// in §4.4's "Language-specific edge cases" for JavaScript and TypeScript:
// most bindings are self-contained within one query match, but named
// specifiers and several re-export shapes are captured by a separate
// top-level pattern from the statement that carries the module path, so
// each binding capture independently walks up to its enclosing
// import_statement/export_statement to recover the source.
func processJSTSImports(matches []queries.QueryMatch, b *definition.Builder, ctx *Context, tsMode bool) {
	for _, match := range matches {
		for _, c := range match.Captures {
			switch c.Field {
			case "named":
				addImport(b, ctx, c, match, definition.ImportNamed, false)
			case "default":
				addImportSimple(b, ctx, c, definition.ImportDefault, "default", false)
			case "namespace":
				addImportSimple(b, ctx, c, definition.ImportNamespace, "*", false)
			case "reexport.named":
				addImport(b, ctx, c, match, definition.ImportNamed, true)
			case "reexport.default.alias":
				addReexportDefaultAlias(b, ctx, c, match)
			case "reexport.wildcard":
				addWildcardReexport(b, ctx, c, "*", false)
			case "reexport.wildcard.alias":
				addWildcardReexportAlias(b, ctx, c)
			case "commonjs.namespace":
				addCommonJS(b, ctx, c, match, definition.ImportNamespace, "*")
			case "commonjs.named":
				addCommonJS(b, ctx, c, match, definition.ImportNamed, "")
			}
		}
	}
}

func addImport(b *definition.Builder, ctx *Context, c queries.QueryCapture, match queries.QueryMatch, kind definition.ImportKind, isReexport bool) {
	path, _, found := enclosingStatementSource(c.Node, ctx.Source)
	if !found {
		return
	}
	name := c.Text
	l := loc(c.Node, ctx.FilePath)
	imp := &definition.Import{
		H: definition.Header{
			SymbolID: symbolid.New(symbolid.KindImport, name, l),
			Name:     name,
			Location: l,
		},
		ImportPath: path,
		ImportKind: kind,
		IsTypeOnly: isReexport && hasSibling(match, "reexport.type_only") || hasSibling(match, "type_only.specifier"),
	}
	if isReexport {
		imp.H.IsExported = true
	}
	field := "named.alias"
	if isReexport {
		field = "reexport.named.alias"
	}
	if alias, ok := siblingByField(match, field); ok {
		imp.OriginalName, imp.HasOriginal = name, true
		imp.H.Name = alias.Text
		imp.H.SymbolID = symbolid.New(symbolid.KindImport, alias.Text, l)
	}
	b.AddImport(imp)
}

func addImportSimple(b *definition.Builder, ctx *Context, c queries.QueryCapture, kind definition.ImportKind, name string, isExported bool) {
	path, _, found := enclosingStatementSource(c.Node, ctx.Source)
	if !found {
		return
	}
	l := loc(c.Node, ctx.FilePath)
	bindingName := c.Text
	if bindingName == "" {
		bindingName = name
	}
	b.AddImport(&definition.Import{
		H: definition.Header{
			SymbolID:   symbolid.New(symbolid.KindImport, bindingName, l),
			Name:       bindingName,
			Location:   l,
			IsExported: isExported,
		},
		ImportPath: path,
		ImportKind: kind,
	})
}

func addReexportDefaultAlias(b *definition.Builder, ctx *Context, c queries.QueryCapture, match queries.QueryMatch) {
	path, _, found := enclosingStatementSource(c.Node, ctx.Source)
	if !found {
		return
	}
	l := loc(c.Node, ctx.FilePath)
	alias := c.Text
	b.AddImport(&definition.Import{
		H: definition.Header{
			SymbolID:   symbolid.New(symbolid.KindImport, alias, l),
			Name:       alias,
			Location:   l,
			IsExported: true,
		},
		ImportPath:   path,
		ImportKind:   definition.ImportDefault,
		OriginalName: "default",
		HasOriginal:  true,
	})
}

func addWildcardReexport(b *definition.Builder, ctx *Context, c queries.QueryCapture, name string, isExported bool) {
	l := loc(c.Node, ctx.FilePath)
	path := stripQuotes(c.Text)
	b.AddImport(&definition.Import{
		H: definition.Header{
			SymbolID:   symbolid.New(symbolid.KindImport, name, l),
			Name:       name,
			Location:   l,
			IsExported: true,
		},
		ImportPath: path,
		ImportKind: definition.ImportNamespace,
	})
}

func addWildcardReexportAlias(b *definition.Builder, ctx *Context, c queries.QueryCapture) {
	path, _, found := enclosingStatementSource(c.Node, ctx.Source)
	if !found {
		return
	}
	l := loc(c.Node, ctx.FilePath)
	alias := c.Text
	b.AddImport(&definition.Import{
		H: definition.Header{
			SymbolID:   symbolid.New(symbolid.KindImport, alias, l),
			Name:       alias,
			Location:   l,
			IsExported: true,
		},
		ImportPath: path,
		ImportKind: definition.ImportNamespace,
	})
}

func addCommonJS(b *definition.Builder, ctx *Context, c queries.QueryCapture, match queries.QueryMatch, kind definition.ImportKind, fallbackName string) {
	sourceCap, ok := siblingByField(match, "commonjs.source")
	if !ok {
		return
	}
	path := stripQuotes(sourceCap.Text)
	name := c.Text
	if name == "" {
		name = fallbackName
	}
	l := loc(c.Node, ctx.FilePath)
	imp := &definition.Import{
		H: definition.Header{
			SymbolID: symbolid.New(symbolid.KindImport, name, l),
			Name:     name,
			Location: l,
		},
		ImportPath: path,
		ImportKind: kind,
	}
	if alias, ok := siblingByField(match, "commonjs.named.alias"); ok {
		imp.OriginalName, imp.HasOriginal = name, true
		imp.H.Name = alias.Text
		imp.H.SymbolID = symbolid.New(symbolid.KindImport, alias.Text, l)
	}
	b.AddImport(imp)
}
