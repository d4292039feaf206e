package symbols

// JSQueries contains the tree-sitter query patterns used to extract
// definition captures from JavaScript source. It mirrors TSQueries minus
// every type-level construct TypeScript adds (interfaces, type aliases,
// access modifiers, "readonly", parameter types).
const JSQueries = `
; ============================================================================
; Classes
; ============================================================================

(class_declaration
  name: (identifier) @definition.class.name
  body: (class_body) @definition.class.body
) @definition.class

(variable_declarator
  name: (identifier) @definition.class.name
  value: (class
    body: (class_body) @definition.class.body)
) @definition.class

(public_field_definition
  name: (property_identifier) @definition.class.name
  value: (class
    body: (class_body) @definition.class.body)
) @definition.class

(class_heritage
  (extends_clause
    value: (_) @definition.class.extends))

; ============================================================================
; Functions
; ============================================================================

(function_declaration
  name: (identifier) @definition.function.name
  parameters: (formal_parameters) @definition.function.params
  body: (statement_block) @definition.function.body
) @definition.function

(generator_function_declaration
  name: (identifier) @definition.function.name
  parameters: (formal_parameters) @definition.function.params
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

(pair
  key: (property_identifier) @definition.function.name
  value: (function_expression
    parameters: (formal_parameters) @definition.function.params
    body: (statement_block) @definition.function.body)
) @definition.function

(pair
  key: (property_identifier) @definition.function.name
  value: (arrow_function
    parameters: (_) @definition.function.params
    body: (_) @definition.function.body)
) @definition.function

; ============================================================================
; Methods
; ============================================================================

(method_definition
  name: (property_identifier) @definition.method.name
  "async"? @definition.method.async
  "static"? @definition.method.static
  parameters: (formal_parameters) @definition.method.params
  body: (statement_block)? @definition.method.body
) @definition.method

; ============================================================================
; Parameters
; ============================================================================

(formal_parameters
  (identifier) @definition.parameter.name)

(formal_parameters
  (assignment_pattern
    left: (identifier) @definition.parameter.name
    right: (_) @definition.parameter.default))

(rest_pattern
  (identifier) @definition.parameter.name) @definition.parameter.rest

; ============================================================================
; Properties
; ============================================================================

(public_field_definition
  "static"? @definition.property.static
  name: (property_identifier) @definition.property.name
  value: (_)? @definition.property.value
) @definition.property

; ============================================================================
; Variables & constants
; ============================================================================

(lexical_declaration
  (variable_declarator
    name: (identifier) @definition.variable.name
    value: (_)? @definition.variable.value
  ) @definition.variable
)

(variable_declaration
  (variable_declarator
    name: (identifier) @definition.variable.name
    value: (_)? @definition.variable.value
  ) @definition.variable
)

; ============================================================================
; Decorators (stage-3 proposal, supported by some JS configurations)
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
