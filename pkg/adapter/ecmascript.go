package adapter

import (
	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/archlane/semindex/pkg/definition"
	"github.com/archlane/semindex/pkg/parser/queries"
	"github.com/archlane/semindex/pkg/symbolid"
)

// ecmascript bundles the handler logic shared by the JavaScript and
// TypeScript adapters. tsMode gates the TypeScript-only affordances
// (interfaces, type aliases, abstract/access modifiers, readonly,
// parameter properties) per §4.4's "Language-specific edge cases".
type ecmascript struct {
	tsMode bool
}

// enclosingCallableNode walks up from a parameter (or any node nested
// inside a callable's parameter list/body) to the node the aggregate
// handler used as its primary capture: a bare function_declaration /
// method_definition / method_signature, or — for the "assigned to a name"
// forms the JS/TS queries also recognise — the wrapping
// variable_declarator / pair / public_field_definition.
func enclosingCallableNode(n *ts.Node) *ts.Node {
	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		switch cur.Kind() {
		case "function_declaration", "generator_function_declaration", "method_definition", "method_signature":
			return cur
		case "variable_declarator", "pair", "public_field_definition":
			if v := cur.ChildByFieldName("value"); v != nil {
				switch v.Kind() {
				case "function_expression", "arrow_function", "class":
					return cur
				}
			}
		}
	}
	return nil
}

func (e *ecmascript) classifyCallable(n *ts.Node, source []byte) (symbolid.Kind, string) {
	name := nameOf(n, source)
	switch n.Kind() {
	case "method_definition", "method_signature":
		if name == "constructor" {
			return symbolid.KindConstructor, name
		}
		return symbolid.KindMethod, name
	case "variable_declarator", "pair", "public_field_definition":
		return symbolid.KindFunction, name
	default:
		return symbolid.KindFunction, name
	}
}

// isExported reports whether n is itself, or is wrapped by, an
// export_statement — JS/TS's export rule from §4.4.
func isExported(n *ts.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.Kind() == "export_statement" {
			return true
		}
		// export wrapping only ever directly surrounds a declaration; don't
		// walk past the enclosing statement list.
		switch cur.Kind() {
		case "statement_block", "class_body", "program":
			return false
		}
	}
	return false
}

func findCallableID(b *definition.Builder, e *ecmascript, n *ts.Node, filePath string, source []byte) (symbolid.ID, bool) {
	callable := enclosingCallableNode(n)
	if callable == nil {
		return "", false
	}
	kind, name := e.classifyCallable(callable, source)
	id := symbolid.New(kind, name, loc(callable, filePath))
	return id, true
}

func (e *ecmascript) register() *registry {
	r := newRegistry()

	classNames := []string{"definition.class", "definition.class.abstract"}
	for _, n := range classNames {
		r.addAggregate(n, e.handleClass)
	}
	r.addAggregate("definition.function", e.handleFunction)
	r.addAggregate("definition.variable", e.handleVariable)
	r.addChild("definition.method", e.handleMethod)
	r.addChild("definition.property", e.handleProperty)
	if e.tsMode {
		r.addAggregate("definition.interface", e.handleInterface)
		r.addAggregate("definition.enum", e.handleEnum)
		r.addAggregate("definition.namespace", e.handleNamespace)
		r.addAggregate("definition.type_alias", e.handleTypeAlias)
		r.addChild("definition.property_signature", e.handlePropertySignature)
		r.addChild("definition.enum_member", e.handleEnumMember)
		r.addChild("definition.parameter", e.handleParameter)
		r.addChild("definition.parameter.self", e.handleNoop)
	} else {
		r.addChild("definition.parameter.name", e.handleParameterJS)
		r.addChild("definition.parameter.rest", e.handleParameterJS)
	}
	r.addChild("definition.decorator", e.handleDecorator)

	r.addNoop(
		"definition.class.name", "definition.class.generic", "definition.class.body",
		"definition.class.extends", "definition.class.implements",
		"definition.interface.name", "definition.interface.generic", "definition.interface.body",
		"definition.interface.extends",
		"definition.enum.const", "definition.enum.name", "definition.enum.body",
		"definition.namespace.name", "definition.namespace.body",
		"definition.function.name", "definition.function.generic", "definition.function.params",
		"definition.function.return_type", "definition.function.body",
		"definition.method.name", "definition.method.async", "definition.method.static",
		"definition.method.abstract", "definition.method.access", "definition.method.generic",
		"definition.method.params", "definition.method.return_type", "definition.method.body",
		"definition.property.readonly", "definition.property.static", "definition.property.abstract",
		"definition.property.name", "definition.property.type", "definition.property.value",
		"definition.property_signature.readonly", "definition.property_signature.name",
		"definition.property_signature.optional", "definition.property_signature.type",
		"definition.variable.name", "definition.variable.type", "definition.variable.value",
		"definition.type_alias.name", "definition.type_alias.generic", "definition.type_alias.expression",
		"definition.parameter.property", "definition.parameter.name", "definition.parameter.type",
		"definition.parameter.default",
		"definition.decorator.name", "definition.decorator.arguments",
	)

	r.addImportNames(
		"import.source", "import.statement", "import.named", "import.named.alias",
		"import.named.specifier", "import.default", "import.namespace",
		"import.type_only.statement", "import.type_only.specifier",
		"import.reexport.source", "import.reexport.statement", "import.reexport.type_only",
		"import.reexport.named", "import.reexport.named.alias",
		"import.reexport.default.alias", "import.reexport.default.alias.original",
		"import.reexport.wildcard", "import.reexport.wildcard.alias",
		"import.commonjs.namespace", "import.commonjs.source", "import.commonjs.named",
		"import.commonjs.named.alias",
	)

	return r
}

func (e *ecmascript) handleNoop(queries.QueryMatch, queries.QueryCapture, *definition.Builder, *Context) {}

func (e *ecmascript) handleClass(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := nameOf(primary.Node, ctx.Source)
	if name == "" {
		if sib, ok := siblingByField(match, "class.name"); ok {
			name = sib.Text
		}
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)
	id := symbolid.New(symbolid.KindClass, name, l)

	generics := extractGenericsFromMatch(match, "class.generic")
	extends, implements := extractHeritage(primary.Node, ctx.Source)

	c := &definition.Class{
		H: definition.Header{
			SymbolID:        id,
			Name:            name,
			Location:        l,
			DefiningScopeID: ctx.Scopes.ContainingScope(l),
			IsExported:      isExported(primary.Node),
		},
		Extends:    extends,
		Implements: implements,
		Abstract:   primary.Field == "class.abstract",
		Generics:   generics,
	}
	b.AddClass(c)
}

func (e *ecmascript) handleInterface(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := nameOf(primary.Node, ctx.Source)
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)
	id := symbolid.New(symbolid.KindInterface, name, l)

	i := &definition.Interface{
		H: definition.Header{
			SymbolID:        id,
			Name:            name,
			Location:        l,
			DefiningScopeID: ctx.Scopes.ContainingScope(l),
			IsExported:      isExported(primary.Node),
		},
		Extends:  extractInterfaceExtends(primary.Node, ctx.Source),
		Generics: extractGenericsFromMatch(match, "interface.generic"),
	}
	b.AddInterface(i)

	// Interface declarations additionally register a parallel type_alias
	// entry under the same name (§4.4), so a name lookup for the type
	// resolves regardless of which map it's stored under.
	aliasLoc := l
	b.AddTypeAlias(&definition.TypeAlias{
		H: definition.Header{
			SymbolID:        symbolid.New(symbolid.KindTypeAlias, name, aliasLoc),
			Name:            name,
			Location:        aliasLoc,
			DefiningScopeID: ctx.Scopes.ContainingScope(aliasLoc),
			IsExported:      isExported(primary.Node),
		},
		Generics: i.Generics,
	})
}

func findChild(n *ts.Node, kind string) *ts.Node {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		if c := n.Child(uint(i)); c != nil && c.Kind() == kind {
			return c
		}
	}
	return nil
}

func extractInterfaceExtends(n *ts.Node, source []byte) []string {
	clause := findChild(n, "extends_type_clause")
	if clause == nil {
		return nil
	}
	return collectDescendantTexts(clause, map[string]bool{"type_identifier": true}, source)
}

func (e *ecmascript) handleEnum(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := nameOf(primary.Node, ctx.Source)
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)
	isConst := hasSibling(match, "enum.const")

	b.AddEnum(&definition.Enum{
		H: definition.Header{
			SymbolID:        symbolid.New(symbolid.KindEnum, name, l),
			Name:            name,
			Location:        l,
			DefiningScopeID: ctx.Scopes.ContainingScope(l),
			IsExported:      isExported(primary.Node),
		},
		IsConst: isConst,
	})
}

func (e *ecmascript) handleNamespace(_ queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := nameOf(primary.Node, ctx.Source)
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)
	b.AddNamespace(&definition.Namespace{
		H: definition.Header{
			SymbolID:        symbolid.New(symbolid.KindNamespace, name, l),
			Name:            name,
			Location:        l,
			DefiningScopeID: ctx.Scopes.ContainingScope(l),
			IsExported:      isExported(primary.Node),
		},
	})
}

func (e *ecmascript) handleTypeAlias(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := nameOf(primary.Node, ctx.Source)
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)
	expr, hasExpr := "", false
	if sib, ok := siblingByField(match, "type_alias.expression"); ok {
		expr, hasExpr = sib.Text, true
	}
	b.AddTypeAlias(&definition.TypeAlias{
		H: definition.Header{
			SymbolID:        symbolid.New(symbolid.KindTypeAlias, name, l),
			Name:            name,
			Location:        l,
			DefiningScopeID: ctx.Scopes.ContainingScope(l),
			IsExported:      isExported(primary.Node),
		},
		TypeExpression: expr,
		HasExpression:  hasExpr,
		Generics:       extractGenericsFromMatch(match, "type_alias.generic"),
	})
}

func (e *ecmascript) handleFunction(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	// Functions owned by a class/interface are methods, classified in
	// handleMethod instead; the bare function_declaration form is never
	// nested inside a class body in JS/TS grammar, so no deferral check is
	// needed here (unlike Rust/Python's uniform function node).
	name := nameOf(primary.Node, ctx.Source)
	if name == "" {
		if sib, ok := siblingByField(match, "function.name"); ok {
			name = sib.Text
		}
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)
	id := symbolid.New(symbolid.KindFunction, name, l)

	retType, hasRet := "", false
	if sib, ok := siblingByField(match, "function.return_type"); ok {
		retType, hasRet = stripTypeAnnotationPrefix(sib.Text), true
	}

	bodyScope := ctx.Scopes.ContainingScope(l)
	if sib, ok := siblingByField(match, "function.body"); ok {
		bodyScope = ctx.Scopes.BodyScopeFor(loc(sib.Node, ctx.FilePath), l)
	}

	b.AddFunction(&definition.Function{
		H: definition.Header{
			SymbolID:        id,
			Name:            name,
			Location:        l,
			DefiningScopeID: ctx.Scopes.ContainingScope(l),
			IsExported:      isExported(primary.Node),
		},
		Generics:      extractGenericsFromMatch(match, "function.generic"),
		ReturnType:    retType,
		HasReturnType: hasRet,
		BodyScopeID:   bodyScope,
	})
}

func (e *ecmascript) handleMethod(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := nameOf(primary.Node, ctx.Source)
	if name == "" {
		if sib, ok := siblingByField(match, "method.name"); ok {
			name = sib.Text
		}
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)

	classNode := findContainingKind(primary.Node, map[string]bool{
		"class_declaration": true, "abstract_class_declaration": true, "class": true,
	})
	if classNode == nil {
		return
	}
	classID, ok := b.FindClassByName(nameOf(classNode, ctx.Source))
	if !ok {
		return
	}

	bodyScope := ctx.Scopes.ContainingScope(l)
	if sib, ok := siblingByField(match, "method.body"); ok {
		bodyScope = ctx.Scopes.BodyScopeFor(loc(sib.Node, ctx.FilePath), l)
	}

	if name == "constructor" {
		ctor := &definition.Constructor{
			H: definition.Header{
				SymbolID:        symbolid.New(symbolid.KindConstructor, name, l),
				Name:            name,
				Location:        l,
				DefiningScopeID: ctx.Scopes.ContainingScope(l),
			},
			BodyScopeID: bodyScope,
		}
		if sib, ok := siblingByField(match, "method.access"); ok {
			ctor.AccessModifier, ctor.HasAccessModifier = definition.AccessModifier(sib.Text), true
		}
		b.AddConstructorToClass(classID, ctor)
		return
	}

	retType, hasRet := "", false
	if sib, ok := siblingByField(match, "method.return_type"); ok {
		retType, hasRet = stripTypeAnnotationPrefix(sib.Text), true
	}

	m := &definition.Method{
		Function: definition.Function{
			H: definition.Header{
				SymbolID:        symbolid.New(symbolid.KindMethod, name, l),
				Name:            name,
				Location:        l,
				DefiningScopeID: ctx.Scopes.ContainingScope(l),
			},
			Generics:      extractGenericsFromMatch(match, "method.generic"),
			ReturnType:    retType,
			HasReturnType: hasRet,
			BodyScopeID:   bodyScope,
		},
		Static:   hasSibling(match, "method.static"),
		Async:    hasSibling(match, "method.async"),
		Abstract: hasSibling(match, "method.abstract"),
	}
	if sib, ok := siblingByField(match, "method.access"); ok {
		m.AccessModifier, m.HasAccessModifier = definition.AccessModifier(sib.Text), true
	}
	b.AddMethodToClass(classID, m)
}

func (e *ecmascript) handleProperty(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := ""
	if sib, ok := siblingByField(match, "property.name"); ok {
		name = sib.Text
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)

	classNode := findContainingKind(primary.Node, map[string]bool{
		"class_declaration": true, "abstract_class_declaration": true, "class": true,
	})
	if classNode == nil {
		return
	}
	classID, ok := b.FindClassByName(nameOf(classNode, ctx.Source))
	if !ok {
		return
	}

	p := &definition.Property{
		H: definition.Header{
			SymbolID:        symbolid.New(symbolid.KindProperty, name, l),
			Name:            name,
			Location:        l,
			DefiningScopeID: ctx.Scopes.ContainingScope(l),
		},
		Readonly: hasSibling(match, "property.readonly"),
		Static:   hasSibling(match, "property.static"),
		Abstract: hasSibling(match, "property.abstract"),
	}
	if sib, ok := siblingByField(match, "property.type"); ok {
		p.Type, p.HasType = stripTypeAnnotationPrefix(sib.Text), true
	}
	if sib, ok := siblingByField(match, "property.value"); ok {
		p.InitialValue, p.HasInitialValue = sib.Text, true
	}
	b.AddPropertyToClass(classID, p)
}

func (e *ecmascript) handlePropertySignature(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := ""
	if sib, ok := siblingByField(match, "property_signature.name"); ok {
		name = sib.Text
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)

	ifaceNode := findContainingKind(primary.Node, map[string]bool{"interface_declaration": true})
	if ifaceNode == nil {
		return
	}
	ifaceID, ok := b.FindInterfaceByName(nameOf(ifaceNode, ctx.Source))
	if !ok {
		return
	}

	p := &definition.PropertySignature{
		H: definition.Header{
			SymbolID:        symbolid.New(symbolid.KindProperty, name, l),
			Name:            name,
			Location:        l,
			DefiningScopeID: ctx.Scopes.ContainingScope(l),
		},
		Readonly: hasSibling(match, "property_signature.readonly"),
		Optional: hasSibling(match, "property_signature.optional"),
	}
	if sib, ok := siblingByField(match, "property_signature.type"); ok {
		p.Type, p.HasType = stripTypeAnnotationPrefix(sib.Text), true
	}
	b.AddPropertySignatureToInterface(ifaceID, p)
}

func (e *ecmascript) handleEnumMember(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := ""
	if sib, ok := siblingByField(match, "enum_member.name"); ok {
		name = sib.Text
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)

	enumNode := findContainingKind(primary.Node, map[string]bool{"enum_declaration": true})
	if enumNode == nil {
		return
	}
	// enums aren't looked up by name via the Builder directly in JS/TS
	// (only Rust needs that); recompute the enum's id from its own node.
	enumID := symbolid.New(symbolid.KindEnum, nameOf(enumNode, ctx.Source), loc(enumNode, ctx.FilePath))

	member := &definition.EnumMember{
		H: definition.Header{
			SymbolID:        symbolid.New(symbolid.KindEnumMember, name, l),
			Name:            name,
			Location:        l,
			DefiningScopeID: ctx.Scopes.ContainingScope(l),
		},
	}
	if sib, ok := siblingByField(match, "enum_member.value"); ok {
		member.Value, member.HasValue = sib.Text, true
	}
	b.AddEnumMember(enumID, member)
}

func (e *ecmascript) handleParameter(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := ""
	if sib, ok := siblingByField(match, "parameter.name"); ok {
		name = sib.Text
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)

	callableID, _ := findCallableID(b, e, primary.Node, ctx.FilePath, ctx.Source)

	p := &definition.Parameter{
		H: definition.Header{
			SymbolID: symbolid.New(symbolid.KindParameter, name, l),
			Name:     name,
			Location: l,
		},
		IsParameterProperty: hasSibling(match, "parameter.property"),
	}
	if sib, ok := siblingByField(match, "parameter.type"); ok {
		p.Type, p.HasType = stripTypeAnnotationPrefix(sib.Text), true
	}
	if sib, ok := siblingByField(match, "parameter.default"); ok {
		p.DefaultValue, p.HasDefaultValue, p.Optional = sib.Text, true, true
	}
	if callableID != "" {
		b.AddParameterToCallable(callableID, p)
	}
}

func (e *ecmascript) handleParameterJS(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := primary.Text
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)

	callableID, _ := findCallableID(b, e, primary.Node, ctx.FilePath, ctx.Source)

	p := &definition.Parameter{
		H: definition.Header{
			SymbolID: symbolid.New(symbolid.KindParameter, name, l),
			Name:     name,
			Location: l,
		},
	}
	if sib, ok := siblingByField(match, "parameter.default"); ok {
		p.DefaultValue, p.HasDefaultValue, p.Optional = sib.Text, true, true
	}
	if callableID != "" {
		b.AddParameterToCallable(callableID, p)
	}
}

func (e *ecmascript) handleVariable(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := nameOf(primary.Node, ctx.Source)
	if name == "" {
		if sib, ok := siblingByField(match, "variable.name"); ok {
			name = sib.Text
		}
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)

	v := &definition.Variable{
		H: definition.Header{
			SymbolID:        symbolid.New(symbolid.KindVariable, name, l),
			Name:            name,
			Location:        l,
			DefiningScopeID: ctx.Scopes.ContainingScope(l),
			IsExported:      isExported(primary.Node),
		},
		VarKind: definition.VariableMutable,
	}
	if sib, ok := siblingByField(match, "variable.type"); ok {
		v.Type, v.HasType = stripTypeAnnotationPrefix(sib.Text), true
	}
	if sib, ok := siblingByField(match, "variable.value"); ok {
		v.InitialValue, v.HasInitialValue = sib.Text, true
	}
	b.AddVariable(v)
}

func (e *ecmascript) handleDecorator(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := ""
	if sib, ok := siblingByField(match, "decorator.name"); ok {
		name = sib.Text
	}
	if name == "" {
		return
	}
	decoratorNode := findContainingKind(primary.Node, map[string]bool{"decorator": true})
	if decoratorNode == nil {
		decoratorNode = primary.Node
	}
	l := loc(decoratorNode, ctx.FilePath)

	targetID, ok := findDecoratorTarget(b, decoratorNode, ctx)
	if !ok {
		return
	}

	dec := &definition.Decorator{
		H: definition.Header{
			SymbolID: symbolid.New(symbolid.KindDecorator, name, l),
			Name:     name,
			Location: l,
		},
	}
	if sib, ok := siblingByField(match, "decorator.arguments"); ok {
		dec.Arguments, dec.HasArgs = []string{sib.Text}, true
	}
	b.AddDecoratorToTarget(targetID, dec)
}

// findDecoratorTarget walks up from a decorator node to the definition it
// decorates and recomputes that definition's SymbolId.
func findDecoratorTarget(b *definition.Builder, decoratorNode *ts.Node, ctx *Context) (symbolid.ID, bool) {
	for cur := decoratorNode.NextSibling(); cur != nil; cur = cur.NextSibling() {
		switch cur.Kind() {
		case "class_declaration", "abstract_class_declaration":
			name := nameOf(cur, ctx.Source)
			return symbolid.New(symbolid.KindClass, name, loc(cur, ctx.FilePath)), true
		case "method_definition":
			name := nameOf(cur, ctx.Source)
			if classNode := findContainingKind(cur, map[string]bool{"class_declaration": true, "abstract_class_declaration": true}); classNode != nil {
				if _, ok := b.FindClassByName(nameOf(classNode, ctx.Source)); ok {
					return symbolid.New(symbolid.KindMethod, name, loc(cur, ctx.FilePath)), true
				}
			}
		case "public_field_definition":
			name := nameOf(cur, ctx.Source)
			return symbolid.New(symbolid.KindProperty, name, loc(cur, ctx.FilePath)), true
		}
	}
	// decorator immediately precedes its target as a sibling statement in
	// most grammars; fall back to the parent's next named sibling.
	if parent := decoratorNode.Parent(); parent != nil {
		return findDecoratorTarget(b, parent, ctx)
	}
	return "", false
}

func extractGenericsFromMatch(match queries.QueryMatch, field string) []string {
	if sib, ok := siblingByField(match, field); ok {
		return splitGenericNames(sib.Text)
	}
	return nil
}

func extractHeritage(classNode *ts.Node, source []byte) (extends []string, implements []string) {
	heritage := findChild(classNode, "class_heritage")
	if heritage == nil {
		return nil, nil
	}
	count := int(heritage.ChildCount())
	for i := 0; i < count; i++ {
		child := heritage.Child(uint(i))
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "extends_clause":
			if v := child.ChildByFieldName("value"); v != nil {
				extends = append(extends, text(v, source))
			}
		case "implements_clause":
			implements = append(implements, collectDescendantTexts(child, map[string]bool{"type_identifier": true}, source)...)
		}
	}
	return
}
