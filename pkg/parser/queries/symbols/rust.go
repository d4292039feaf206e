package symbols

// RustQueries contains the tree-sitter query patterns used to extract
// definition captures from Rust source.
//
// struct/tuple-struct map to definition.class, trait maps to
// definition.interface, enum maps to definition.enum. impl blocks mint no
// definition of their own (§4.4) — their inner function_items are captured
// as definition.function and reclassified to method/constructor by
// find_containing_impl, exactly like Python's function_definition.
const RustQueries = `
; ============================================================================
; Structs (class) and traits (interface)
; ============================================================================

(struct_item
  (visibility_modifier)? @definition.class.visibility
  name: (type_identifier) @definition.class.name
  (type_parameters)? @definition.class.generic
  body: (field_declaration_list)? @definition.class.body
) @definition.class

(trait_item
  (visibility_modifier)? @definition.interface.visibility
  name: (type_identifier) @definition.interface.name
  (type_parameters)? @definition.interface.generic
  bounds: (trait_bounds
    (type_identifier) @definition.interface.extends)?
  body: (declaration_list) @definition.interface.body
) @definition.interface

; ============================================================================
; Enums
; ============================================================================

(enum_item
  (visibility_modifier)? @definition.enum.visibility
  name: (type_identifier) @definition.enum.name
  (type_parameters)? @definition.enum.generic
  body: (enum_variant_list) @definition.enum.body
) @definition.enum

(enum_variant
  name: (identifier) @definition.enum_member.name
  body: (_)? @definition.enum_member.value
) @definition.enum_member

; ============================================================================
; Modules
; ============================================================================

(mod_item
  (visibility_modifier)? @definition.namespace.visibility
  name: (identifier) @definition.namespace.name
  body: (declaration_list)? @definition.namespace.body
) @definition.namespace

; ============================================================================
; Functions (free, or owned by an impl/trait — reclassified by the adapter)
; ============================================================================

(function_item
  (visibility_modifier)? @definition.function.visibility
  name: (identifier) @definition.function.name
  (type_parameters)? @definition.function.generic
  parameters: (parameters) @definition.function.params
  return_type: (_)? @definition.function.return_type
  body: (block) @definition.function.body
) @definition.function

; ============================================================================
; Parameters (including &self / &mut self receivers)
; ============================================================================

(parameters
  (self_parameter) @definition.parameter.self)

(parameters
  (parameter
    pattern: (identifier) @definition.parameter.name
    type: (_) @definition.parameter.type))

; ============================================================================
; Fields (properties)
; ============================================================================

(field_declaration
  (visibility_modifier)? @definition.property.visibility
  name: (field_identifier) @definition.property.name
  type: (_) @definition.property.type
) @definition.property

; ============================================================================
; Impl target resolution (consumed by find_containing_impl, not minted)
; ============================================================================

(impl_item
  trait: (type_identifier)? @definition.impl.trait
  type: (type_identifier) @definition.impl.target
  body: (declaration_list) @definition.impl.body
) @definition.impl

; ============================================================================
; Constants / statics (top-level variable-like bindings)
; ============================================================================

(const_item
  (visibility_modifier)? @definition.variable.visibility
  name: (identifier) @definition.variable.name
  type: (_) @definition.variable.type
  value: (_)? @definition.variable.value
) @definition.variable.const

(static_item
  (visibility_modifier)? @definition.variable.visibility
  name: (identifier) @definition.variable.name
  type: (_) @definition.variable.type
  value: (_)? @definition.variable.value
) @definition.variable
`
