package imports

// JSQueries mirrors TSQueries minus the TypeScript-only `type` qualifiers,
// and additionally recognises CommonJS require()/module.exports idioms —
// each require() binding becomes an Import definition just like an ES
// module import.
const JSQueries = `
; ===========================================================================
; ES module imports
; ===========================================================================

(import_statement
  source: (string (string_fragment) @import.source)
) @import.statement

(import_specifier
  name: (identifier) @import.named
  alias: (identifier)? @import.named.alias
) @import.named.specifier

(import_clause
  (identifier) @import.default
)

(import_clause
  (namespace_import
    (identifier) @import.namespace
  )
)

; ===========================================================================
; Re-exports
; ===========================================================================

(export_statement
  source: (string (string_fragment) @import.reexport.source)
) @import.reexport.statement

(export_statement
  (export_clause
    (export_specifier
      name: (identifier) @import.reexport.named
      alias: (identifier)? @import.reexport.named.alias
    )
  )
  source: (string)
)

(export_statement
  (export_clause
    (export_specifier
      name: (identifier) @import.reexport.default.alias.original
      alias: (identifier) @import.reexport.default.alias
    )
  )
  source: (string)
)

(export_statement
  !declaration
  !(export_clause)
  source: (string (string_fragment) @import.reexport.wildcard)
)

(export_statement
  (namespace_export
    (identifier) @import.reexport.wildcard.alias
  )
  source: (string)
)

; ===========================================================================
; CommonJS require() — each binding becomes an Import definition
; ===========================================================================

; const foo = require('./module')  -> namespace-shaped import
(lexical_declaration
  (variable_declarator
    name: (identifier) @import.commonjs.namespace
    value: (call_expression
      function: (identifier) @_require (#eq? @_require "require")
      arguments: (arguments
        (string (string_fragment) @import.commonjs.source)
      )
    )
  )
)

; const { bar } = require('./module')  -> named import
(lexical_declaration
  (variable_declarator
    name: (object_pattern
      (shorthand_property_identifier_pattern) @import.commonjs.named
    )
    value: (call_expression
      function: (identifier) @_require (#eq? @_require "require")
      arguments: (arguments
        (string (string_fragment) @import.commonjs.source)
      )
    )
  )
)

; const { bar: baz } = require('./module')  -> named import with alias
(lexical_declaration
  (variable_declarator
    name: (object_pattern
      (pair_pattern
        key: (property_identifier) @import.commonjs.named
        value: (identifier) @import.commonjs.named.alias
      )
    )
    value: (call_expression
      function: (identifier) @_require (#eq? @_require "require")
      arguments: (arguments
        (string (string_fragment) @import.commonjs.source)
      )
    )
  )
)

; const bar = require('./module').bar  -> named import via member access
(lexical_declaration
  (variable_declarator
    name: (identifier) @import.commonjs.named.alias
    value: (member_expression
      object: (call_expression
        function: (identifier) @_require (#eq? @_require "require")
        arguments: (arguments
          (string (string_fragment) @import.commonjs.source)
        )
      )
      property: (property_identifier) @import.commonjs.named
    )
  )
)
`
