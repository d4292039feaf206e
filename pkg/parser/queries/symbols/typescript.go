package symbols

// TSQueries contains the tree-sitter query patterns used to extract
// definition captures from TypeScript (and TSX) source.
//
// Capture names follow the dot-delimited convention the Indexer's capture
// dispatch table relies on: "definition.<kind>" tags the whole definition
// node, "definition.<kind>.<field>" tags a sub-node carrying one piece of
// metadata for that definition.
const TSQueries = `
; ============================================================================
; Classes
; ============================================================================

(class_declaration
  name: (type_identifier) @definition.class.name
  (type_parameters)? @definition.class.generic
  body: (class_body) @definition.class.body
) @definition.class

(abstract_class_declaration
  name: (type_identifier) @definition.class.name
  (type_parameters)? @definition.class.generic
  body: (class_body) @definition.class.body
) @definition.class.abstract

; class expression assigned to a name: static Logger = class { ... }
(public_field_definition
  name: (property_identifier) @definition.class.name
  value: (class
    body: (class_body) @definition.class.body)
) @definition.class

(extends_clause
  value: (_) @definition.class.extends)

(class_heritage
  (implements_clause
    (type_identifier) @definition.class.implements))

; ============================================================================
; Interfaces (also register a parallel type_alias per §4.4)
; ============================================================================

(interface_declaration
  name: (type_identifier) @definition.interface.name
  (type_parameters)? @definition.interface.generic
  body: (interface_body) @definition.interface.body
) @definition.interface

(extends_type_clause
  (type_identifier) @definition.interface.extends)

; ============================================================================
; Enums
; ============================================================================

(enum_declaration
  "const"? @definition.enum.const
  name: (identifier) @definition.enum.name
  body: (enum_body) @definition.enum.body
) @definition.enum

(enum_assignment
  name: (property_identifier) @definition.enum_member.name
  value: (_) @definition.enum_member.value
) @definition.enum_member

(property_identifier) @definition.enum_member.name

; ============================================================================
; Namespaces / modules
; ============================================================================

(internal_module
  name: (_) @definition.namespace.name
  body: (statement_block) @definition.namespace.body
) @definition.namespace

(module
  name: (_) @definition.namespace.name
  body: (statement_block) @definition.namespace.body
) @definition.namespace

; ============================================================================
; Functions
; ============================================================================

(function_declaration
  name: (identifier) @definition.function.name
  (type_parameters)? @definition.function.generic
  parameters: (formal_parameters) @definition.function.params
  return_type: (type_annotation)? @definition.function.return_type
  body: (statement_block) @definition.function.body
) @definition.function

(variable_declarator
  name: (identifier) @definition.function.name
  value: (function_expression
    parameters: (formal_parameters) @definition.function.params
    body: (statement_block) @definition.function.body)
) @definition.function

(variable_declarator
  name: (identifier) @definition.function.name
  value: (arrow_function
    parameters: (_) @definition.function.params
    body: (_) @definition.function.body)
) @definition.function

; ============================================================================
; Methods & constructors
; ============================================================================

(method_definition
  name: (property_identifier) @definition.method.name
  "async"? @definition.method.async
  "static"? @definition.method.static
  "abstract"? @definition.method.abstract
  (accessibility_modifier)? @definition.method.access
  (type_parameters)? @definition.method.generic
  parameters: (formal_parameters) @definition.method.params
  return_type: (type_annotation)? @definition.method.return_type
  body: (statement_block)? @definition.method.body
) @definition.method

(method_signature
  name: (property_identifier) @definition.method.name
  (type_parameters)? @definition.method.generic
  parameters: (formal_parameters) @definition.method.params
  return_type: (type_annotation)? @definition.method.return_type
) @definition.method

; ============================================================================
; Parameters
; ============================================================================

(required_parameter
  (accessibility_modifier)? @definition.parameter.property
  pattern: (identifier) @definition.parameter.name
  type: (type_annotation)? @definition.parameter.type
) @definition.parameter

(optional_parameter
  pattern: (identifier) @definition.parameter.name
  type: (type_annotation)? @definition.parameter.type
  value: (_)? @definition.parameter.default
) @definition.parameter

(required_parameter
  pattern: (identifier) @definition.parameter.name
  value: (_) @definition.parameter.default
) @definition.parameter

(this_type) @definition.parameter.self

; ============================================================================
; Properties / property signatures
; ============================================================================

(public_field_definition
  "readonly"? @definition.property.readonly
  "static"? @definition.property.static
  "abstract"? @definition.property.abstract
  name: (property_identifier) @definition.property.name
  type: (type_annotation)? @definition.property.type
  value: (_)? @definition.property.value
) @definition.property

(property_signature
  "readonly"? @definition.property_signature.readonly
  name: (property_identifier) @definition.property_signature.name
  "?"? @definition.property_signature.optional
  type: (type_annotation)? @definition.property_signature.type
) @definition.property_signature

; ============================================================================
; Variables & constants
; ============================================================================

(lexical_declaration
  (variable_declarator
    name: (identifier) @definition.variable.name
    type: (type_annotation)? @definition.variable.type
    value: (_)? @definition.variable.value
  ) @definition.variable
)

(variable_declaration
  (variable_declarator
    name: (identifier) @definition.variable.name
    type: (type_annotation)? @definition.variable.type
    value: (_)? @definition.variable.value
  ) @definition.variable
)

; ============================================================================
; Type aliases
; ============================================================================

(type_alias_declaration
  name: (type_identifier) @definition.type_alias.name
  (type_parameters)? @definition.type_alias.generic
  value: (_) @definition.type_alias.expression
) @definition.type_alias

; ============================================================================
; Decorators
; ============================================================================

(decorator
  (identifier) @definition.decorator.name
) @definition.decorator

(decorator
  (call_expression
    function: (identifier) @definition.decorator.name
    arguments: (arguments) @definition.decorator.arguments)
) @definition.decorator
`
