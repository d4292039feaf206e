package adapter

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/archlane/semindex/pkg/definition"
	"github.com/archlane/semindex/pkg/parser/queries"
	"github.com/archlane/semindex/pkg/symbolid"
)

// pyAdapter implements Adapter for Python sources. Python's grammar makes
// no distinction between class/enum/interface or function/method/
// constructor — every class_definition and function_definition is captured
// uniformly and reclassified here by inspecting its base list, decorators,
// and enclosing scope, per §4.4's Python edge cases.
type pyAdapter struct {
	*registry
}

var enumBases = map[string]bool{
	"Enum": true, "IntEnum": true, "Flag": true, "IntFlag": true, "StrEnum": true,
}

func NewPython() Adapter {
	a := &pyAdapter{registry: newRegistry()}
	a.addAggregate("definition.class", a.handleClass)
	a.addAggregate("definition.function", a.handleFunction)
	a.addAggregate("definition.variable", a.handleVariable)
	a.addChild("definition.parameter.name", a.handleParameter)
	a.addChild("definition.parameter.args_splat", a.handleParameter)
	a.addChild("definition.parameter.kwargs_splat", a.handleParameter)

	a.addNoop(
		"definition.class.name", "definition.class.extends", "definition.class.body",
		"definition.function.name", "definition.function.async", "definition.function.params",
		"definition.function.return_type", "definition.function.body",
		"definition.variable.name", "definition.variable.type", "definition.variable.value",
		"definition.parameter.type", "definition.parameter.default",
		"definition.decorator.name",
	)
	a.addImportNames("import.statement", "import.source", "import.named", "import.named.alias",
		"import.namespace", "import.namespace.alias", "import.wildcard")
	return a
}

func pyIsExported(name string) bool {
	if strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__") && len(name) > 4 {
		return true
	}
	return !strings.HasPrefix(name, "_")
}

func pyFunctionNode(primary *ts.Node) *ts.Node {
	if primary.Kind() == "decorated_definition" {
		if def := primary.ChildByFieldName("definition"); def != nil {
			return def
		}
	}
	return primary
}

func (a *pyAdapter) handleClass(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	if parent := primary.Node.Parent(); parent != nil && parent.Kind() == "decorated_definition" {
		// The plain class_definition pattern also matches decorated classes'
		// inner node; the decorated_definition pattern registers those (its
		// own match's primary node is the decorated_definition, not this
		// one), so skip here to avoid minting the class twice.
		return
	}
	name := ""
	if sib, ok := siblingByField(match, "class.name"); ok {
		name = sib.Text
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)
	bases := siblingsByFieldPrefix(match, "class.extends")
	var baseNames []string
	isEnum, isProtocol := false, false
	for _, base := range bases {
		baseNames = append(baseNames, base.Text)
		short := base.Text
		if i := strings.LastIndex(short, "."); i >= 0 {
			short = short[i+1:]
		}
		if enumBases[short] {
			isEnum = true
		}
		if short == "Protocol" {
			isProtocol = true
		}
	}

	header := definition.Header{
		Name:            name,
		Location:        l,
		DefiningScopeID: ctx.Scopes.ContainingScope(l),
		IsExported:      pyIsExported(name),
	}

	switch {
	case isEnum:
		header.SymbolID = symbolid.New(symbolid.KindEnum, name, l)
		b.AddEnum(&definition.Enum{H: header})
	case isProtocol:
		header.SymbolID = symbolid.New(symbolid.KindInterface, name, l)
		b.AddInterface(&definition.Interface{H: header, Extends: baseNames})
	default:
		header.SymbolID = symbolid.New(symbolid.KindClass, name, l)
		b.AddClass(&definition.Class{H: header, Extends: baseNames})
	}
}

func (a *pyAdapter) handleFunction(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	if parent := primary.Node.Parent(); parent != nil && parent.Kind() == "decorated_definition" {
		// The plain function_definition pattern also matches decorated
		// functions' inner node; the decorated_definition pattern registers
		// those (its own match's primary node is the decorated_definition,
		// not this one), so skip here to avoid minting the function twice.
		return
	}
	name := ""
	if sib, ok := siblingByField(match, "function.name"); ok {
		name = sib.Text
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)
	fnNode := pyFunctionNode(primary.Node)

	var bodyScope = ctx.Scopes.ContainingScope(l)
	if sib, ok := siblingByField(match, "function.body"); ok {
		bodyScope = ctx.Scopes.BodyScopeFor(loc(sib.Node, ctx.FilePath), l)
	}
	retType, hasRet := "", false
	if sib, ok := siblingByField(match, "function.return_type"); ok {
		retType, hasRet = sib.Text, true
	}

	isStatic := pyDecoratorNamed(match, "staticmethod")
	isClassMethod := pyDecoratorNamed(match, "classmethod")

	classNode := findContainingKind(fnNode, map[string]bool{"class_definition": true})
	var classID symbolid.ID
	var inClass bool
	var containerKind symbolid.Kind
	if classNode != nil {
		className := nameOf(classNode, ctx.Source)
		if id, ok := b.FindClassByName(className); ok {
			classID, inClass, containerKind = id, true, symbolid.KindClass
		} else if id, ok := b.FindEnumByName(className); ok {
			classID, inClass, containerKind = id, true, symbolid.KindEnum
		} else if id, ok := b.FindInterfaceByName(className); ok {
			classID, inClass, containerKind = id, true, symbolid.KindInterface
		}
	}

	if inClass && name == "__init__" {
		ctor := &definition.Constructor{
			H: definition.Header{
				SymbolID:        symbolid.New(symbolid.KindConstructor, name, l),
				Name:            name,
				Location:        l,
				DefiningScopeID: ctx.Scopes.ContainingScope(l),
			},
			BodyScopeID: bodyScope,
			Static:      isStatic,
		}
		b.AddConstructorToClass(classID, ctor)
		attachPyDecorators(b, match, ctx, symbolid.New(symbolid.KindConstructor, name, l))
		return
	}

	if inClass {
		m := &definition.Method{
			Function: definition.Function{
				H: definition.Header{
					SymbolID:        symbolid.New(symbolid.KindMethod, name, l),
					Name:            name,
					Location:        l,
					DefiningScopeID: ctx.Scopes.ContainingScope(l),
				},
				ReturnType:    retType,
				HasReturnType: hasRet,
				BodyScopeID:   bodyScope,
			},
			Static:   isStatic,
			Async:    hasSibling(match, "function.async"),
			Abstract: isClassMethod,
		}
		switch containerKind {
		case symbolid.KindEnum:
			b.AddMethodToEnum(classID, m)
		case symbolid.KindInterface:
			b.AddMethodSignatureToInterface(classID, m)
		default:
			b.AddMethodToClass(classID, m)
		}
		attachPyDecorators(b, match, ctx, symbolid.New(symbolid.KindMethod, name, l))
		return
	}

	b.AddFunction(&definition.Function{
		H: definition.Header{
			SymbolID:        symbolid.New(symbolid.KindFunction, name, l),
			Name:            name,
			Location:        l,
			DefiningScopeID: ctx.Scopes.ContainingScope(l),
			IsExported:      pyIsExported(name),
		},
		ReturnType:    retType,
		HasReturnType: hasRet,
		BodyScopeID:   bodyScope,
	})
	attachPyDecorators(b, match, ctx, symbolid.New(symbolid.KindFunction, name, l))
}

func pyDecoratorNamed(match queries.QueryMatch, name string) bool {
	for _, c := range siblingsByFieldPrefix(match, "decorator.name") {
		short := c.Text
		if i := strings.LastIndex(short, "."); i >= 0 {
			short = short[i+1:]
		}
		if short == name {
			return true
		}
	}
	return false
}

func attachPyDecorators(b *definition.Builder, match queries.QueryMatch, ctx *Context, targetID symbolid.ID) {
	for _, c := range siblingsByFieldPrefix(match, "decorator.name") {
		short := c.Text
		if short == "staticmethod" || short == "classmethod" {
			continue
		}
		l := loc(c.Node, ctx.FilePath)
		b.AddDecoratorToTarget(targetID, &definition.Decorator{
			H: definition.Header{
				SymbolID: symbolid.New(symbolid.KindDecorator, short, l),
				Name:     short,
				Location: l,
			},
		})
	}
}

func (a *pyAdapter) handleVariable(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := ""
	if sib, ok := siblingByField(match, "variable.name"); ok {
		name = sib.Text
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)

	classNode := findContainingKind(primary.Node, map[string]bool{"class_definition": true})
	if classNode != nil {
		className := nameOf(classNode, ctx.Source)
		if enumID, ok := b.FindEnumByName(className); ok {
			member := &definition.EnumMember{
				H: definition.Header{
					SymbolID:        symbolid.New(symbolid.KindEnumMember, name, l),
					Name:            name,
					Location:        l,
					DefiningScopeID: ctx.Scopes.ContainingScope(l),
				},
			}
			if sib, ok := siblingByField(match, "variable.value"); ok {
				member.Value, member.HasValue = sib.Text, true
			}
			b.AddEnumMember(enumID, member)
			return
		}
	}

	isConstant := strings.ToUpper(name) == name && strings.Contains(name, "_")
	v := &definition.Variable{
		H: definition.Header{
			Name:            name,
			Location:        l,
			DefiningScopeID: ctx.Scopes.ContainingScope(l),
			IsExported:      pyIsExported(name),
		},
	}
	if isConstant {
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

func (a *pyAdapter) handleParameter(match queries.QueryMatch, primary queries.QueryCapture, b *definition.Builder, ctx *Context) {
	name := ""
	if sib, ok := siblingByField(match, "parameter.name"); ok {
		name = sib.Text
	}
	if name == "" {
		return
	}
	l := loc(primary.Node, ctx.FilePath)

	fnNode := findContainingKind(primary.Node, map[string]bool{"function_definition": true})
	if fnNode == nil {
		return
	}
	fnName := nameOf(fnNode, ctx.Source)
	fnLocNode := fnNode
	if parent := fnNode.Parent(); parent != nil && parent.Kind() == "decorated_definition" {
		fnLocNode = parent
	}
	fnLoc := loc(fnLocNode, ctx.FilePath)

	classNode := findContainingKind(fnNode, map[string]bool{"class_definition": true})
	var callableID symbolid.ID
	switch {
	case classNode != nil && fnName == "__init__":
		callableID = symbolid.New(symbolid.KindConstructor, fnName, fnLoc)
	case classNode != nil:
		callableID = symbolid.New(symbolid.KindMethod, fnName, fnLoc)
	default:
		callableID = symbolid.New(symbolid.KindFunction, fnName, fnLoc)
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
	if sib, ok := siblingByField(match, "parameter.default"); ok {
		p.DefaultValue, p.HasDefaultValue, p.Optional = sib.Text, true, true
	}
	if primary.Field == "parameter.args_splat" && !p.HasType {
		p.Type, p.HasType = "tuple", true
	}
	if primary.Field == "parameter.kwargs_splat" && !p.HasType {
		p.Type, p.HasType = "dict", true
	}
	b.AddParameterToCallable(callableID, p)
}

func (a *pyAdapter) ProcessImports(matches []queries.QueryMatch, b *definition.Builder, ctx *Context) {
	for _, match := range matches {
		processOnePythonImport(match, b, ctx)
	}
}

func processOnePythonImport(match queries.QueryMatch, b *definition.Builder, ctx *Context) {
	sourceCap, hasSource := siblingByField(match, "source")
	namespaceCap, hasNamespace := siblingByField(match, "namespace")
	wildcardCap, hasWildcard := siblingByField(match, "wildcard")
	namedCaps := siblingsByFieldPrefix(match, "named")

	switch {
	case hasNamespace:
		name := namespaceCap.Text
		path := name
		if alias, ok := siblingByField(match, "namespace.alias"); ok {
			name = alias.Text
		}
		l := loc(namespaceCap.Node, ctx.FilePath)
		b.AddImport(&definition.Import{
			H:          definition.Header{SymbolID: symbolid.New(symbolid.KindImport, name, l), Name: name, Location: l},
			ImportPath: path,
			ImportKind: definition.ImportNamespace,
		})
	case hasWildcard:
		l := loc(wildcardCap.Node, ctx.FilePath)
		b.AddImport(&definition.Import{
			H:          definition.Header{SymbolID: symbolid.New(symbolid.KindImport, "*", l), Name: "*", Location: l},
			ImportPath: stripQuotes(sourceCap.Text),
			ImportKind: definition.ImportNamespace,
		})
	case hasSource:
		for _, named := range namedCaps {
			if named.Field != "named" {
				continue
			}
			name := named.Text
			l := loc(named.Node, ctx.FilePath)
			imp := &definition.Import{
				H:          definition.Header{SymbolID: symbolid.New(symbolid.KindImport, name, l), Name: name, Location: l},
				ImportPath: stripQuotes(sourceCap.Text),
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
