// Package definition holds the polymorphic Definition model: the tagged
// union of everything a single file can declare (classes, functions,
// methods, parameters, properties, interfaces, enums, namespaces, type
// aliases, decorators, imports), plus the incremental Builder that
// assembles it from out-of-order capture data.
package definition

import (
	"github.com/archlane/semindex/pkg/location"
	"github.com/archlane/semindex/pkg/scope"
	"github.com/archlane/semindex/pkg/symbolid"
)

// AccessModifier is a method/property/constructor visibility modifier, as
// distinct from export visibility (IsExported on Header).
type AccessModifier string

const (
	AccessPublic    AccessModifier = "public"
	AccessPrivate   AccessModifier = "private"
	AccessProtected AccessModifier = "protected"
)

// ImportKind identifies the shape of an import definition.
type ImportKind string

const (
	ImportNamed     ImportKind = "named"
	ImportDefault   ImportKind = "default"
	ImportNamespace ImportKind = "namespace"
)

// VariableKind distinguishes a mutable variable from a constant binding.
type VariableKind string

const (
	VariableMutable VariableKind = "variable"
	VariableConst   VariableKind = "constant"
)

// ExportMetadata is attached to import definitions that are simultaneously
// re-exports, so downstream passes can treat the file as both importer and
// exporter of the same name.
type ExportMetadata struct {
	// ExportedName is the name the current module exposes (may differ from
	// OriginalName when the re-export carries an alias, e.g.
	// `export { default as Button } from './button'`).
	ExportedName string
	// IsWildcard is true for `export * from '...'` style re-exports.
	IsWildcard bool
}

// Header holds the fields shared by every definition kind.
type Header struct {
	SymbolID        symbolid.ID
	Name            string
	Location        location.Location
	DefiningScopeID scope.ID
	IsExported      bool
	ExportMetadata  *ExportMetadata
	Docstring       string
}

// AnyDefinition is implemented by every concrete definition kind. Code that
// needs to "look through" a definition (name lookup, export filtering)
// switches exhaustively on Kind() rather than relying on open-world
// dispatch, per the design notes.
type AnyDefinition interface {
	Kind() symbolid.Kind
	Header() Header
}

// Class corresponds to a TS/JS class, a Python class (non-enum, non-Protocol)
// or a Rust struct/tuple struct.
type Class struct {
	H            Header
	Extends      []string
	Implements   []string
	Abstract     bool
	Generics     []string
	Methods      []*Method
	Constructors []*Constructor
	Properties   []*Property
	Decorators   []*Decorator
}

func (c *Class) Kind() symbolid.Kind { return symbolid.KindClass }
func (c *Class) Header() Header      { return c.H }

// Interface corresponds to a TS interface, a Python typing.Protocol, or a
// Rust trait.
type Interface struct {
	H        Header
	Extends  []string
	Generics []string
	Methods  []*Method
	// Properties stores property *signatures* — declarations with no
	// initialiser, per the PropertySignature shape in §3.
	Properties []*PropertySignature
}

func (i *Interface) Kind() symbolid.Kind { return symbolid.KindInterface }
func (i *Interface) Header() Header      { return i.H }

// Enum corresponds to a TS/JS enum, a Python class deriving from
// Enum/IntEnum/Flag/IntFlag/StrEnum, or a Rust enum.
type Enum struct {
	H        Header
	IsConst  bool
	Generics []string
	Members  []*EnumMember
	// Methods is seldom populated — present for Python enum classes that
	// define real methods alongside their members (Q3).
	Methods []*Method
}

func (e *Enum) Kind() symbolid.Kind { return symbolid.KindEnum }
func (e *Enum) Header() Header      { return e.H }

// Namespace corresponds to a TS namespace/module or a Rust module.
type Namespace struct {
	H               Header
	ExportedSymbols []symbolid.ID
}

func (n *Namespace) Kind() symbolid.Kind { return symbolid.KindNamespace }
func (n *Namespace) Header() Header      { return n.H }

// Function is a free function (module/namespace scope). Method embeds the
// same shape plus member-specific fields.
type Function struct {
	H           Header
	Generics    []string
	ReturnType  string
	HasReturnType bool
	Parameters  []*Parameter
	Decorators  []*Decorator
	BodyScopeID scope.ID
}

func (f *Function) Kind() symbolid.Kind { return symbolid.KindFunction }
func (f *Function) Header() Header      { return f.H }

// Method is a function attached to a class, interface or enum.
type Method struct {
	Function
	AccessModifier   AccessModifier
	HasAccessModifier bool
	Static           bool
	Async            bool
	Abstract         bool
}

func (m *Method) Kind() symbolid.Kind { return symbolid.KindMethod }

// Constructor is the special-cased initialiser method of a class
// (`__init__` in Python, `constructor` in TS/JS, `new` associated fns in
// Rust).
type Constructor struct {
	H                 Header
	Parameters        []*Parameter
	AccessModifier    AccessModifier
	HasAccessModifier bool
	Decorators        []*Decorator
	BodyScopeID       scope.ID
	// Static marks Rust associated functions adopted as constructors
	// (e.g. `fn new() -> Self`), which take no `self` receiver.
	Static bool
}

func (c *Constructor) Kind() symbolid.Kind { return symbolid.KindConstructor }
func (c *Constructor) Header() Header      { return c.H }

// Parameter is one formal parameter of a callable.
type Parameter struct {
	H                  Header
	Type               string
	HasType            bool
	DefaultValue       string
	HasDefaultValue    bool
	Optional           bool
	IsParameterProperty bool
}

func (p *Parameter) Kind() symbolid.Kind { return symbolid.KindParameter }
func (p *Parameter) Header() Header      { return p.H }

// Property is a class field; PropertySignature is its interface-only
// counterpart (no initial value, no decorators beyond type annotations).
type Property struct {
	H               Header
	Type            string
	HasType         bool
	InitialValue    string
	HasInitialValue bool
	Readonly        bool
	Static          bool
	Optional        bool
	Abstract        bool
	Decorators      []*Decorator
}

func (p *Property) Kind() symbolid.Kind { return symbolid.KindProperty }
func (p *Property) Header() Header      { return p.H }

// PropertySignature is an interface/protocol member declaration.
type PropertySignature struct {
	H        Header
	Type     string
	HasType  bool
	Readonly bool
	Optional bool
}

func (p *PropertySignature) Kind() symbolid.Kind { return symbolid.KindProperty }
func (p *PropertySignature) Header() Header      { return p.H }

// Variable is a module/function-scoped binding, either mutable or constant.
type Variable struct {
	H               Header
	VarKind         VariableKind
	Type            string
	HasType         bool
	InitialValue    string
	HasInitialValue bool
}

func (v *Variable) Kind() symbolid.Kind {
	if v.VarKind == VariableConst {
		return symbolid.KindConstant
	}
	return symbolid.KindVariable
}
func (v *Variable) Header() Header { return v.H }

// TypeAlias is a `type X = ...` declaration (TS) or equivalent.
type TypeAlias struct {
	H              Header
	TypeExpression string
	HasExpression  bool
	Generics       []string
}

func (t *TypeAlias) Kind() symbolid.Kind { return symbolid.KindTypeAlias }
func (t *TypeAlias) Header() Header      { return t.H }

// EnumMember is one variant of an enum.
type EnumMember struct {
	H        Header
	Value    string
	HasValue bool
}

func (e *EnumMember) Kind() symbolid.Kind { return symbolid.KindEnumMember }
func (e *EnumMember) Header() Header      { return e.H }

// Import is one imported (or re-exported) binding.
type Import struct {
	H            Header
	ImportPath   string
	ImportKind   ImportKind
	OriginalName string
	HasOriginal  bool
	IsTypeOnly   bool
}

func (i *Import) Kind() symbolid.Kind { return symbolid.KindImport }
func (i *Import) Header() Header      { return i.H }

// Decorator is attached to a target (class, method, property, function)
// via the target's Decorators slice; it also exists as a standalone record
// in BuilderResult.Decorators for uniform lookup.
type Decorator struct {
	H         Header
	Arguments []string
	HasArgs   bool
}

func (d *Decorator) Kind() symbolid.Kind { return symbolid.KindDecorator }
func (d *Decorator) Header() Header      { return d.H }
