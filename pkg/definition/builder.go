package definition

import (
	"github.com/archlane/semindex/pkg/symbolid"
)

// DiagnosticKind classifies a soft error absorbed by the Builder instead of
// propagated as an exception (§7).
type DiagnosticKind string

const (
	DiagnosticMissingParent     DiagnosticKind = "missing_parent"
	DiagnosticMissingBodyScope  DiagnosticKind = "missing_body_scope"
	DiagnosticDuplicateDefinition DiagnosticKind = "duplicate_definition"
)

// Diagnostic is one soft error recorded on the Builder's sidecar stream.
// Diagnostics never block finalisation — they exist purely for observability.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
}

// Builder is an append-only, order-independent accumulator of partial
// definition state. It must not assume parents precede children within a
// single pass — that invariant is enforced at the pipeline level by the
// two-pass Indexer (§4.6), which keeps the Builder's own contract simple.
type Builder struct {
	classes     map[symbolid.ID]*Class
	interfaces  map[symbolid.ID]*Interface
	enums       map[symbolid.ID]*Enum
	namespaces  map[symbolid.ID]*Namespace
	functions   map[symbolid.ID]*Function

	variables   map[symbolid.ID]*Variable
	imports     map[symbolid.ID]*Import
	typeAliases map[symbolid.ID]*TypeAlias
	decorators  map[symbolid.ID]*Decorator

	// childIDs tracks every SymbolId already attached as a child somewhere,
	// so add_*_to_* calls are idempotent and I3 (no duplicate children) holds.
	childIDs map[symbolid.ID]bool

	diagnostics []Diagnostic
}

// NewBuilder returns an empty Builder ready to accept captures from either
// pass of the Indexer pipeline.
func NewBuilder() *Builder {
	return &Builder{
		classes:     make(map[symbolid.ID]*Class),
		interfaces:  make(map[symbolid.ID]*Interface),
		enums:       make(map[symbolid.ID]*Enum),
		namespaces:  make(map[symbolid.ID]*Namespace),
		functions:   make(map[symbolid.ID]*Function),
		variables:   make(map[symbolid.ID]*Variable),
		imports:     make(map[symbolid.ID]*Import),
		typeAliases: make(map[symbolid.ID]*TypeAlias),
		decorators:  make(map[symbolid.ID]*Decorator),
		childIDs:    make(map[symbolid.ID]bool),
	}
}

func (b *Builder) diag(kind DiagnosticKind, msg string) {
	b.diagnostics = append(b.diagnostics, Diagnostic{Kind: kind, Message: msg})
}

// Diagnostics returns every soft error recorded so far. It is a sidecar to
// BuilderResult, not part of it.
func (b *Builder) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), b.diagnostics...)
}

// --- aggregate / terminal registration: first-write-wins -------------------

// AddClass registers a class aggregate. Idempotent: a later call with the
// same SymbolID is a no-op.
func (b *Builder) AddClass(c *Class) {
	if _, exists := b.classes[c.H.SymbolID]; exists {
		b.diag(DiagnosticDuplicateDefinition, string(c.H.SymbolID))
		return
	}
	b.classes[c.H.SymbolID] = c
}

// AddInterface registers an interface aggregate.
func (b *Builder) AddInterface(i *Interface) {
	if _, exists := b.interfaces[i.H.SymbolID]; exists {
		b.diag(DiagnosticDuplicateDefinition, string(i.H.SymbolID))
		return
	}
	b.interfaces[i.H.SymbolID] = i
}

// AddEnum registers an enum aggregate.
func (b *Builder) AddEnum(e *Enum) {
	if _, exists := b.enums[e.H.SymbolID]; exists {
		b.diag(DiagnosticDuplicateDefinition, string(e.H.SymbolID))
		return
	}
	b.enums[e.H.SymbolID] = e
}

// AddNamespace registers a namespace aggregate.
func (b *Builder) AddNamespace(n *Namespace) {
	if _, exists := b.namespaces[n.H.SymbolID]; exists {
		b.diag(DiagnosticDuplicateDefinition, string(n.H.SymbolID))
		return
	}
	b.namespaces[n.H.SymbolID] = n
}

// AddFunction registers a free-function aggregate.
func (b *Builder) AddFunction(f *Function) {
	if _, exists := b.functions[f.H.SymbolID]; exists {
		b.diag(DiagnosticDuplicateDefinition, string(f.H.SymbolID))
		return
	}
	b.functions[f.H.SymbolID] = f
}

// AddVariable registers a variable or constant terminal definition.
func (b *Builder) AddVariable(v *Variable) {
	if _, exists := b.variables[v.H.SymbolID]; exists {
		b.diag(DiagnosticDuplicateDefinition, string(v.H.SymbolID))
		return
	}
	b.variables[v.H.SymbolID] = v
}

// AddImport registers an import terminal definition.
func (b *Builder) AddImport(imp *Import) {
	if _, exists := b.imports[imp.H.SymbolID]; exists {
		b.diag(DiagnosticDuplicateDefinition, string(imp.H.SymbolID))
		return
	}
	b.imports[imp.H.SymbolID] = imp
}

// AddTypeAlias registers a type-alias terminal definition.
func (b *Builder) AddTypeAlias(t *TypeAlias) {
	if _, exists := b.typeAliases[t.H.SymbolID]; exists {
		b.diag(DiagnosticDuplicateDefinition, string(t.H.SymbolID))
		return
	}
	b.typeAliases[t.H.SymbolID] = t
}

// --- parent-attaching operations: no-op if the parent is absent -----------

// AddMethodToClass attaches method to the class identified by classID. A
// method SymbolID can only ever be attached once (first write wins), which
// keeps it from also appearing as a top-level definition (I3).
func (b *Builder) AddMethodToClass(classID symbolid.ID, method *Method) {
	c, ok := b.classes[classID]
	if !ok {
		b.diag(DiagnosticMissingParent, string(method.H.SymbolID))
		return
	}
	if b.childIDs[method.H.SymbolID] {
		return
	}
	c.Methods = append(c.Methods, method)
	b.childIDs[method.H.SymbolID] = true
}

// AddConstructorToClass attaches a constructor to a class.
func (b *Builder) AddConstructorToClass(classID symbolid.ID, ctor *Constructor) {
	c, ok := b.classes[classID]
	if !ok {
		b.diag(DiagnosticMissingParent, string(ctor.H.SymbolID))
		return
	}
	if b.childIDs[ctor.H.SymbolID] {
		return
	}
	c.Constructors = append(c.Constructors, ctor)
	b.childIDs[ctor.H.SymbolID] = true
}

// AddPropertyToClass attaches a property to a class.
func (b *Builder) AddPropertyToClass(classID symbolid.ID, prop *Property) {
	c, ok := b.classes[classID]
	if !ok {
		b.diag(DiagnosticMissingParent, string(prop.H.SymbolID))
		return
	}
	if b.childIDs[prop.H.SymbolID] {
		return
	}
	c.Properties = append(c.Properties, prop)
	b.childIDs[prop.H.SymbolID] = true
}

// AddMethodSignatureToInterface attaches a method signature to an interface.
func (b *Builder) AddMethodSignatureToInterface(interfaceID symbolid.ID, method *Method) {
	i, ok := b.interfaces[interfaceID]
	if !ok {
		b.diag(DiagnosticMissingParent, string(method.H.SymbolID))
		return
	}
	if b.childIDs[method.H.SymbolID] {
		return
	}
	i.Methods = append(i.Methods, method)
	b.childIDs[method.H.SymbolID] = true
}

// AddPropertySignatureToInterface attaches a property signature to an interface.
func (b *Builder) AddPropertySignatureToInterface(interfaceID symbolid.ID, prop *PropertySignature) {
	i, ok := b.interfaces[interfaceID]
	if !ok {
		b.diag(DiagnosticMissingParent, string(prop.H.SymbolID))
		return
	}
	if b.childIDs[prop.H.SymbolID] {
		return
	}
	i.Properties = append(i.Properties, prop)
	b.childIDs[prop.H.SymbolID] = true
}

// AddEnumMember attaches a member to an enum.
func (b *Builder) AddEnumMember(enumID symbolid.ID, member *EnumMember) {
	e, ok := b.enums[enumID]
	if !ok {
		b.diag(DiagnosticMissingParent, string(member.H.SymbolID))
		return
	}
	if b.childIDs[member.H.SymbolID] {
		return
	}
	e.Members = append(e.Members, member)
	b.childIDs[member.H.SymbolID] = true
}

// AddMethodToEnum attaches a (seldom-populated) method to an enum — Q3.
func (b *Builder) AddMethodToEnum(enumID symbolid.ID, method *Method) {
	e, ok := b.enums[enumID]
	if !ok {
		b.diag(DiagnosticMissingParent, string(method.H.SymbolID))
		return
	}
	if b.childIDs[method.H.SymbolID] {
		return
	}
	e.Methods = append(e.Methods, method)
	b.childIDs[method.H.SymbolID] = true
}

// AddParameterToCallable attaches a parameter to whichever callable owns
// callableID. Search order: free functions, then methods within every
// class, then constructors within every class, then methods within every
// interface — the first match wins.
func (b *Builder) AddParameterToCallable(callableID symbolid.ID, param *Parameter) {
	if b.childIDs[param.H.SymbolID] {
		return
	}

	if f, ok := b.functions[callableID]; ok {
		f.Parameters = append(f.Parameters, param)
		b.childIDs[param.H.SymbolID] = true
		return
	}
	for _, c := range b.classes {
		for _, m := range c.Methods {
			if m.H.SymbolID == callableID {
				m.Parameters = append(m.Parameters, param)
				b.childIDs[param.H.SymbolID] = true
				return
			}
		}
	}
	for _, c := range b.classes {
		for _, ctor := range c.Constructors {
			if ctor.H.SymbolID == callableID {
				ctor.Parameters = append(ctor.Parameters, param)
				b.childIDs[param.H.SymbolID] = true
				return
			}
		}
	}
	for _, i := range b.interfaces {
		for _, m := range i.Methods {
			if m.H.SymbolID == callableID {
				m.Parameters = append(m.Parameters, param)
				b.childIDs[param.H.SymbolID] = true
				return
			}
		}
	}

	b.diag(DiagnosticMissingParent, string(param.H.SymbolID))
}

// FindClassByName performs the linear lookup Rust needs, since an impl
// header references its owning type by name, not by SymbolID.
func (b *Builder) FindClassByName(name string) (symbolid.ID, bool) {
	for id, c := range b.classes {
		if c.H.Name == name {
			return id, true
		}
	}
	return "", false
}

// FindInterfaceByName performs the equivalent lookup for trait impls.
func (b *Builder) FindInterfaceByName(name string) (symbolid.ID, bool) {
	for id, i := range b.interfaces {
		if i.H.Name == name {
			return id, true
		}
	}
	return "", false
}

// FindEnumByName performs the equivalent lookup for Python enum classes that
// define real methods alongside their members (Q3).
func (b *Builder) FindEnumByName(name string) (symbolid.ID, bool) {
	for id, e := range b.enums {
		if e.H.Name == name {
			return id, true
		}
	}
	return "", false
}

// AddDecoratorToTarget resolves target by trying, in order: class, property
// within any class, method within any class, method within any interface.
// The decorator is also recorded standalone in BuilderResult.Decorators.
// Duplicate decorator records at the same location are deduplicated.
func (b *Builder) AddDecoratorToTarget(targetID symbolid.ID, dec *Decorator) {
	if !b.childIDs[dec.H.SymbolID] {
		b.decorators[dec.H.SymbolID] = dec
	}
	if b.childIDs[dec.H.SymbolID] {
		return
	}

	if c, ok := b.classes[targetID]; ok {
		if !containsDecoratorLocation(c.Decorators, dec) {
			c.Decorators = append(c.Decorators, dec)
		}
		b.childIDs[dec.H.SymbolID] = true
		return
	}
	for _, c := range b.classes {
		for _, p := range c.Properties {
			if p.H.SymbolID == targetID {
				if !containsDecoratorLocation(p.Decorators, dec) {
					p.Decorators = append(p.Decorators, dec)
				}
				b.childIDs[dec.H.SymbolID] = true
				return
			}
		}
	}
	for _, c := range b.classes {
		for _, m := range c.Methods {
			if m.H.SymbolID == targetID {
				if !containsDecoratorLocation(m.Decorators, dec) {
					m.Decorators = append(m.Decorators, dec)
				}
				b.childIDs[dec.H.SymbolID] = true
				return
			}
		}
	}
	for _, i := range b.interfaces {
		for _, m := range i.Methods {
			if m.H.SymbolID == targetID {
				if !containsDecoratorLocation(m.Decorators, dec) {
					m.Decorators = append(m.Decorators, dec)
				}
				b.childIDs[dec.H.SymbolID] = true
				return
			}
		}
	}

	b.diag(DiagnosticMissingParent, string(dec.H.SymbolID))
}

func containsDecoratorLocation(existing []*Decorator, dec *Decorator) bool {
	for _, d := range existing {
		if d.H.SymbolID == dec.H.SymbolID {
			return true
		}
	}
	return false
}

// --- finalisation ------------------------------------------------------

// BuilderResult is the frozen, read-only output of Build(). Every aggregate
// has had its children materialised into slices in insertion order.
type BuilderResult struct {
	Functions   map[symbolid.ID]*Function
	Classes     map[symbolid.ID]*Class
	Variables   map[symbolid.ID]*Variable
	Interfaces  map[symbolid.ID]*Interface
	Enums       map[symbolid.ID]*Enum
	Namespaces  map[symbolid.ID]*Namespace
	TypeAliases map[symbolid.ID]*TypeAlias
	Decorators  map[symbolid.ID]*Decorator
	Imports     map[symbolid.ID]*Import
}

// Build finalises the Builder into a BuilderResult. After Build, the
// Builder's maps should not be mutated further — callers own a frozen
// snapshot from this point on.
func (b *Builder) Build() BuilderResult {
	return BuilderResult{
		Functions:   copyDefMap(b.functions),
		Classes:     copyDefMap(b.classes),
		Variables:   copyDefMap(b.variables),
		Interfaces:  copyDefMap(b.interfaces),
		Enums:       copyDefMap(b.enums),
		Namespaces:  copyDefMap(b.namespaces),
		TypeAliases: copyDefMap(b.typeAliases),
		Decorators:  copyDefMap(b.decorators),
		Imports:     copyDefMap(b.imports),
	}
}

func copyDefMap[V any](m map[symbolid.ID]V) map[symbolid.ID]V {
	out := make(map[symbolid.ID]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
