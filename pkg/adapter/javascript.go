package adapter

import (
	"github.com/archlane/semindex/pkg/definition"
	"github.com/archlane/semindex/pkg/parser/queries"
)

// jsAdapter implements Adapter for JavaScript sources.
type jsAdapter struct {
	*registry
	es *ecmascript
}

// NewJavaScript returns the JavaScript Language Adapter.
func NewJavaScript() Adapter {
	es := &ecmascript{tsMode: false}
	return &jsAdapter{registry: es.register(), es: es}
}

func (a *jsAdapter) ProcessImports(matches []queries.QueryMatch, b *definition.Builder, ctx *Context) {
	processJSTSImports(matches, b, ctx, false)
}
