package symbols

// PythonQueries contains the tree-sitter query patterns used to extract
// definition captures from Python source.
//
// Python has no distinct "class" vs "enum" vs "interface" grammar rule —
// all three are a class_definition; the adapter's helpers reclassify a
// class_definition by inspecting its base list (Enum/IntEnum/Flag/IntFlag/
// StrEnum → enum, typing.Protocol → interface) after this query stage, so
// every class_definition is captured uniformly here as definition.class and
// reclassified downstream.
const PythonQueries = `
; ============================================================================
; Classes (including Enum/Protocol bases, reclassified by the adapter)
; ============================================================================

(class_definition
  name: (identifier) @definition.class.name
  superclasses: (argument_list
    (identifier) @definition.class.extends)?
  body: (block) @definition.class.body
) @definition.class

(decorated_definition
  (decorator) @_dec
  definition: (class_definition
    name: (identifier) @definition.class.name
    body: (block) @definition.class.body)
) @definition.class

; ============================================================================
; Functions (module/nested scope; reclassified to method/constructor by the
; adapter when find_containing_class succeeds)
; ============================================================================

(function_definition
  name: (identifier) @definition.function.name
  "async"? @definition.function.async
  parameters: (parameters) @definition.function.params
  return_type: (type)? @definition.function.return_type
  body: (block) @definition.function.body
) @definition.function

(decorated_definition
  (decorator
    (identifier) @definition.decorator.name)? @_d1
  (decorator
    (attribute) @definition.decorator.name)? @_d2
  definition: (function_definition
    name: (identifier) @definition.function.name
    "async"? @definition.function.async
    parameters: (parameters) @definition.function.params
    return_type: (type)? @definition.function.return_type
    body: (block) @definition.function.body)
) @definition.function

; ============================================================================
; Parameters
; ============================================================================

(parameters
  (identifier) @definition.parameter.name)

(parameters
  (typed_parameter
    (identifier) @definition.parameter.name
    type: (type) @definition.parameter.type))

(parameters
  (default_parameter
    name: (identifier) @definition.parameter.name
    value: (_) @definition.parameter.default))

(parameters
  (typed_default_parameter
    name: (identifier) @definition.parameter.name
    type: (type) @definition.parameter.type
    value: (_) @definition.parameter.default))

(parameters
  (list_splat_pattern
    (identifier) @definition.parameter.name)) @definition.parameter.args_splat

(parameters
  (dictionary_splat_pattern
    (identifier) @definition.parameter.name)) @definition.parameter.kwargs_splat

; ============================================================================
; Assignments: enum members at enum-class scope, variables/constants at
; module scope (reclassified by naming convention: ALL_CAPS+underscore →
; constant, else variable; inside an Enum-derived class → enum_member).
; ============================================================================

(expression_statement
  (assignment
    left: (identifier) @definition.variable.name
    type: (type)? @definition.variable.type
    right: (_) @definition.variable.value
  ) @definition.variable
)
`
