package adapter

import (
	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/archlane/semindex/pkg/definition"
	"github.com/archlane/semindex/pkg/parser/queries"
	"github.com/archlane/semindex/pkg/symbolid"
)

// rustAdapter implements Adapter for Rust sources. struct -> class,
// trait -> interface, enum -> enum; impl blocks mint no definition of their
// own — a function_item's enclosing impl_item is resolved by walking up
// and reading its type/trait fields directly (§4.4: "impl target
// resolution... not minted").
type rustAdapter struct {
	*registry
}

func NewRust() Adapter {
	a := &rustAdapter{registry: newRegistry()}
	a.addAggregate("definition.class", a.handleStruct)
	a.addAggregate("definition.interface", a.handleTrait)
	a.addAggregate("definition.enum", a.handleEnum)
	a.addAggregate("definition.namespace", a.handleMod)
	a.addAggregate("definition.function", a.handleFunction)
	a.addAggregate("definition.variable", a.handleStatic)
	a.addAggregate("definition.variable.const", a.handleConst)
	a.addChild("definition.enum_member", a.handleEnumMember)
	a.addChild("definition.property", a.handleField)
	a.addChild("definition.parameter.name", a.handleParameter)
	a.addChild("definition.parameter.self", a.handleSelfParameter)

	a.addNoop(
		"definition.class.visibility", "definition.class.name", "definition.class.generic", "definition.class.body",
		"definition.interface.visibility", "definition.interface.name", "definition.interface.generic",
		"definition.interface.extends", "definition.interface.body",
		"definition.enum.visibility", "definition.enum.name", "definition.enum.generic", "definition.enum.body",
		"definition.enum_member.name", "definition.enum_member.value",
		"definition.namespace.visibility", "definition.namespace.name", "definition.namespace.body",
		"definition.function.visibility", "definition.function.name", "definition.function.generic",
		"definition.function.params", "definition.function.return_type", "definition.function.body",
		"definition.property.visibility", "definition.property.name", "definition.property.type",
		"definition.parameter.type",
		"definition.impl.trait", "definition.impl.target", "definition.impl.body",
		"definition.variable.visibility", "definition.variable.name", "definition.variable.type",
		"definition.variable.value",
	)
	a.addImportNames("import.statement", "import.source", "import.named", "import.named.alias",
		"import.namespace", "import.reexport.marker")
	return a
}

func rustIsExported(match queries.QueryMatch, field string) bool {
	return hasSibling(match, field)
}

func (a *rustAdapter) handleStruct(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := ""
	if sib, ok := siblingByField(match, "class.name"); ok {
		name = sib.Text
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)
	b.AddClass(&definition.Class{
		H: definition.Header{
			SymbolID:        symbolid.New(symbolid.KindClass, name, l),
			Name:            name,
			Location:        l,
			DefiningScopeID: ctx.Scopes.ContainingScope(l),
			IsExported:      rustIsExported(match, "class.visibility"),
		},
		Generics: extractGenericsFromMatch(match, "class.generic"),
	})
}

func (a *rustAdapter) handleTrait(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := ""
	if sib, ok := siblingByField(match, "interface.name"); ok {
		name = sib.Text
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)
	var bounds []string
	for _, c := range siblingsByFieldPrefix(match, "interface.extends") {
		bounds = append(bounds, c.Text)
	}
	b.AddInterface(&definition.Interface{
		H: definition.Header{
			SymbolID:        symbolid.New(symbolid.KindInterface, name, l),
			Name:            name,
			Location:        l,
			DefiningScopeID: ctx.Scopes.ContainingScope(l),
			IsExported:      rustIsExported(match, "interface.visibility"),
		},
		Extends:  bounds,
		Generics: extractGenericsFromMatch(match, "interface.generic"),
	})
}

func (a *rustAdapter) handleEnum(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := ""
	if sib, ok := siblingByField(match, "enum.name"); ok {
		name = sib.Text
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)
	b.AddEnum(&definition.Enum{
		H: definition.Header{
			SymbolID:        symbolid.New(symbolid.KindEnum, name, l),
			Name:            name,
			Location:        l,
			DefiningScopeID: ctx.Scopes.ContainingScope(l),
			IsExported:      rustIsExported(match, "enum.visibility"),
		},
		Generics: extractGenericsFromMatch(match, "enum.generic"),
	})
}

func (a *rustAdapter) handleMod(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := ""
	if sib, ok := siblingByField(match, "namespace.name"); ok {
		name = sib.Text
	}
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
			IsExported:      rustIsExported(match, "namespace.visibility"),
		},
	})
}

func (a *rustAdapter) handleEnumMember(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := ""
	if sib, ok := siblingByField(match, "enum_member.name"); ok {
		name = sib.Text
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)

	enumNode := findContainingKind(primary.Node, map[string]bool{"enum_item": true})
	if enumNode == nil {
		return
	}
	enumID, ok := b.FindEnumByName(nameOf(enumNode, ctx.Source))
	if !ok {
		return
	}
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

// findContainingImpl walks up from a function_item to its nearest impl_item
// ancestor, returning its target type name and trait name (if any).
func findContainingImpl(n *ts.Node, source []byte) (targetName string, traitName string, hasTrait bool, ok bool) {
	implNode := findContainingKind(n, map[string]bool{"impl_item": true})
	if implNode == nil {
		return "", "", false, false
	}
	target := implNode.ChildByFieldName("type")
	if target == nil {
		return "", "", false, false
	}
	targetName = text(target, source)
	if trait := implNode.ChildByFieldName("trait"); trait != nil {
		traitName, hasTrait = text(trait, source), true
	}
	return targetName, traitName, hasTrait, true
}

// findContainingTrait walks up from a function_item to its nearest trait_item
// ancestor (a trait method declaration or default body, as opposed to an impl
// block implementing the trait), returning the trait's own name.
func findContainingTrait(n *ts.Node, source []byte) (traitName string, ok bool) {
	traitNode := findContainingKind(n, map[string]bool{"trait_item": true})
	if traitNode == nil {
		return "", false
	}
	name := traitNode.ChildByFieldName("name")
	if name == nil {
		return "", false
	}
	return text(name, source), true
}

func (a *rustAdapter) handleFunction(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := ""
	if sib, ok := siblingByField(match, "function.name"); ok {
		name = sib.Text
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)

	retType, hasRet := "", false
	if sib, ok := siblingByField(match, "function.return_type"); ok {
		retType, hasRet = sib.Text, true
	}
	bodyScope := ctx.Scopes.ContainingScope(l)
	if sib, ok := siblingByField(match, "function.body"); ok {
		bodyScope = ctx.Scopes.BodyScopeFor(loc(sib.Node, ctx.FilePath), l)
	}

	targetName, _, _, inImpl := findContainingImpl(primary.Node, ctx.Source)
	if !inImpl {
		if traitName, inTrait := findContainingTrait(primary.Node, ctx.Source); inTrait {
			interfaceID, ok := b.FindInterfaceByName(traitName)
			if !ok {
				return
			}
			m := &definition.Method{
				Function: definition.Function{
					H: definition.Header{
						SymbolID:        symbolid.New(symbolid.KindMethod, name, l),
						Name:            name,
						Location:        l,
						DefiningScopeID: ctx.Scopes.ContainingScope(l),
					},
					Generics:      extractGenericsFromMatch(match, "function.generic"),
					ReturnType:    retType,
					HasReturnType: hasRet,
					BodyScopeID:   bodyScope,
				},
				Static: !hasSelfParameter(primary.Node),
			}
			b.AddMethodSignatureToInterface(interfaceID, m)
			return
		}

		b.AddFunction(&definition.Function{
			H: definition.Header{
				SymbolID:        symbolid.New(symbolid.KindFunction, name, l),
				Name:            name,
				Location:        l,
				DefiningScopeID: ctx.Scopes.ContainingScope(l),
				IsExported:      rustIsExported(match, "function.visibility"),
			},
			Generics:      extractGenericsFromMatch(match, "function.generic"),
			ReturnType:    retType,
			HasReturnType: hasRet,
			BodyScopeID:   bodyScope,
		})
		return
	}

	classID, ok := b.FindClassByName(targetName)
	if !ok {
		return
	}

	if name == "new" {
		ctor := &definition.Constructor{
			H: definition.Header{
				SymbolID:        symbolid.New(symbolid.KindConstructor, name, l),
				Name:            name,
				Location:        l,
				DefiningScopeID: ctx.Scopes.ContainingScope(l),
			},
			BodyScopeID: bodyScope,
			Static:      true,
		}
		b.AddConstructorToClass(classID, ctor)
		return
	}

	m := &definition.Method{
		Function: definition.Function{
			H: definition.Header{
				SymbolID:        symbolid.New(symbolid.KindMethod, name, l),
				Name:            name,
				Location:        l,
				DefiningScopeID: ctx.Scopes.ContainingScope(l),
			},
			Generics:      extractGenericsFromMatch(match, "function.generic"),
			ReturnType:    retType,
			HasReturnType: hasRet,
			BodyScopeID:   bodyScope,
		},
		Static: !hasSelfParameter(primary.Node),
	}
	b.AddMethodToClass(classID, m)
}

func hasSelfParameter(fnNode *ts.Node) bool {
	params := fnNode.ChildByFieldName("parameters")
	if params == nil {
		return false
	}
	count := int(params.ChildCount())
	for i := 0; i < count; i++ {
		if c := params.Child(uint(i)); c != nil && c.Kind() == "self_parameter" {
			return true
		}
	}
	return false
}

func (a *rustAdapter) handleField(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := ""
	if sib, ok := siblingByField(match, "property.name"); ok {
		name = sib.Text
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)

	structNode := findContainingKind(primary.Node, map[string]bool{"struct_item": true})
	if structNode == nil {
		return
	}
	classID, ok := b.FindClassByName(nameOf(structNode, ctx.Source))
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
	}
	if sib, ok := siblingByField(match, "property.type"); ok {
		p.Type, p.HasType = sib.Text, true
	}
	b.AddPropertyToClass(classID, p)
}

func (a *rustAdapter) callableIDFor(n *ts.Node, source []byte, filePath string) (symbolid.ID, bool) {
	fnNode := findContainingKind(n, map[string]bool{"function_item": true})
	if fnNode == nil {
		return "", false
	}
	name := nameOf(fnNode, source)
	l := loc(fnNode, filePath)
	if name == "new" {
		if _, _, _, inImpl := findContainingImpl(fnNode, source); inImpl {
			return symbolid.New(symbolid.KindConstructor, name, l), true
		}
	}
	if _, _, _, inImpl := findContainingImpl(fnNode, source); inImpl {
		return symbolid.New(symbolid.KindMethod, name, l), true
	}
	if _, inTrait := findContainingTrait(fnNode, source); inTrait {
		return symbolid.New(symbolid.KindMethod, name, l), true
	}
	return symbolid.New(symbolid.KindFunction, name, l), true
}

func (a *rustAdapter) handleParameter(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := ""
	if sib, ok := siblingByField(match, "parameter.name"); ok {
		name = sib.Text
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)

	callableID, ok := a.callableIDFor(primary.Node, ctx.Source, ctx.FilePath)
	if !ok {
		return
	}
	p := &definition.Parameter{
		H: definition.Header{
			SymbolID: symbolid.New(symbolid.KindParameter, name, l),
			Name:     name,
			Location: l,
		},
	}
	if sib, ok := siblingByField(match, "parameter.type"); ok {
		p.Type, p.HasType = sib.Text, true
	}
	b.AddParameterToCallable(callableID, p)
}

func (a *rustAdapter) handleSelfParameter(_ queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	l := loc(primary.Node, ctx.FilePath)
	callableID, ok := a.callableIDFor(primary.Node, ctx.Source, ctx.FilePath)
	if !ok {
		return
	}
	p := &definition.Parameter{
		H: definition.Header{
			SymbolID: symbolid.New(symbolid.KindParameter, "self", l),
			Name:     "self",
			Location: l,
		},
	}
	if targetName, _, _, inImpl := findContainingImpl(primary.Node, ctx.Source); inImpl {
		p.Type, p.HasType = targetName, true
	}
	b.AddParameterToCallable(callableID, p)
}

func (a *rustAdapter) handleConst(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	a.handleVariableLike(match, primary, b, ctx, true)
}

func (a *rustAdapter) handleStatic(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	a.handleVariableLike(match, primary, b, ctx, false)
}

func (a *rustAdapter) handleVariableLike(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context, isConst bool) {
	name := ""
	if sib, ok := siblingByField(match, "variable.name"); ok {
		name = sib.Text
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)

	v := &definition.Variable{
		H: definition.Header{
			Name:            name,
			Location:        l,
			DefiningScopeID: ctx.Scopes.ContainingScope(l),
			IsExported:      rustIsExported(match, "variable.visibility"),
		},
	}
	if isConst {
		v.VarKind = definition.VariableConst
		v.H.SymbolID = symbolid.New(symbolid.KindConstant, name, l)
	} else {
		v.VarKind = definition.VariableMutable
		v.H.SymbolID = symbolid.New(symbolid.KindVariable, name, l)
	}
	if sib, ok := siblingByField(match, "variable.type"); ok {
		v.Type, v.HasType = sib.Text, true
	}
	if sib, ok := siblingByField(match, "variable.value"); ok {
		v.InitialValue, v.HasInitialValue = sib.Text, true
	}
	b.AddVariable(v)
}

func (a *rustAdapter) ProcessImports(matches []queries.QueryMatch, b *definition.Builder, ctx *Context) {
	for _, match := range matches {
		processOneRustImport(match, b, ctx)
	}
}

func processOneRustImport(match queries.QueryMatch, b *definition.Builder, ctx *Context) {
	isReexport := hasSibling(match, "reexport.marker")
	sourceCap, hasSource := siblingByField(match, "source")
	namespaceCap, hasNamespace := siblingByField(match, "namespace")
	named := siblingsByFieldPrefix(match, "named")

	switch {
	case hasNamespace:
		name := namespaceCap.Text
		l := loc(namespaceCap.Node, ctx.FilePath)
		b.AddImport(&definition.Import{
			H:          definition.Header{SymbolID: symbolid.New(symbolid.KindImport, name, l), Name: name, Location: l, IsExported: isReexport},
			ImportPath: name,
			ImportKind: definition.ImportNamespace,
		})
	case hasSource && len(named) == 0:
		// use std::io::*;
		name := "*"
		l := loc(sourceCap.Node, ctx.FilePath)
		b.AddImport(&definition.Import{
			H:          definition.Header{SymbolID: symbolid.New(symbolid.KindImport, name, l), Name: name, Location: l, IsExported: isReexport},
			ImportPath: sourceCap.Text,
			ImportKind: definition.ImportNamespace,
		})
	case len(named) > 0:
		// The use_list "{A, B}" grouped form has no source capture of its
		// own in this grammar (the shared prefix lives on the enclosing
		// scoped_use_list, one level up); fall back to "" rather than drop
		// the bindings.
		path := ""
		if hasSource {
			path = sourceCap.Text
		}
		for _, n := range named {
			if n.Field != "named" {
				continue
			}
			name := n.Text
			l := loc(n.Node, ctx.FilePath)
			imp := &definition.Import{
				H:          definition.Header{SymbolID: symbolid.New(symbolid.KindImport, name, l), Name: name, Location: l, IsExported: isReexport},
				ImportPath: path,
				ImportKind: definition.ImportNamed,
			}
			if alias, ok := siblingByField(match, "named.alias"); ok {
				imp.OriginalName, imp.HasOriginal = name, true
				imp.H.Name = alias.Text
				imp.H.SymbolID = symbolid.New(symbolid.KindImport, alias.Text, l)
			}
			b.AddImport(imp)
		}
	}
}
