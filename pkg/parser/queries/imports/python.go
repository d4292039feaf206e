package imports

// PythonQueries contains the tree-sitter query patterns used to extract
// import captures from Python source. Python has no re-export syntax of
// its own (a name becomes re-exportable only via `__all__`, which is a
// module-scope Variable, not an Import) so only plain imports are captured.
const PythonQueries = `
; import foo
; import foo.bar
(import_statement
  name: (dotted_name) @import.namespace
) @import.statement

; import foo as f
(import_statement
  name: (aliased_import
    name: (dotted_name) @import.namespace
    alias: (identifier) @import.namespace.alias)
) @import.statement

; from foo import bar
(import_from_statement
  module_name: (dotted_name) @import.source
  name: (dotted_name) @import.named
) @import.statement

; from foo import bar as b
(import_from_statement
  module_name: (dotted_name) @import.source
  name: (aliased_import
    name: (dotted_name) @import.named
    alias: (identifier) @import.named.alias)
) @import.statement

; from foo import *
(import_from_statement
  module_name: (dotted_name) @import.source
  (wildcard_import) @import.wildcard
) @import.statement

; from . import foo / from .foo import bar  (relative imports)
(import_from_statement
  module_name: (relative_import) @import.source
  name: (dotted_name) @import.named
) @import.statement
`
