package adapter

import (
	"github.com/archlane/semindex/pkg/definition"
	"github.com/archlane/semindex/pkg/parser/queries"
)

// tsAdapter implements Adapter for TypeScript sources.
type tsAdapter struct {
	*registry
	es *ecmascript
}

// NewTypeScript returns the TypeScript Language Adapter.
func NewTypeScript() Adapter {
	es := &ecmascript{tsMode: true}
	return &tsAdapter{registry: es.register(), es: es}
}

func (a *tsAdapter) ProcessImports(matches []queries.QueryMatch, b *definition.Builder, ctx *Context) {
	processJSTSImports(matches, b, ctx, true)
}
