package imports

// TSQueries contains the tree-sitter query patterns used to extract import
// and re-export captures from TypeScript/TSX source.
//
// Export-wrapping of a *definition* (e.g. `export class Foo {}`) is not
// captured here: the adapter's extract_visibility helper walks the node's
// own parent chain to decide is_exported, directly on the definition.class
// et al. captures from the symbols query. This query set only covers the
// Import kind: plain imports and the several re-export shapes, all of which
// become Import definitions (re-exports additionally carry export metadata,
// per the "Re-export" glossary entry).
const TSQueries = `
; ===========================================================================
; Plain imports
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

; import type { Foo } from './types';  /  import { type Foo } from './types';
(import_statement
  "type" @import.type_only.statement
)

(import_specifier
  "type" @import.type_only.specifier
  name: (identifier) @import.named
  alias: (identifier)? @import.named.alias
)

; ===========================================================================
; Re-exports (export statements carrying a "from" source)
; ===========================================================================

(export_statement
  source: (string (string_fragment) @import.reexport.source)
  "type"? @import.reexport.type_only
) @import.reexport.statement

; export { foo, bar } from './other';
(export_statement
  (export_clause
    (export_specifier
      name: (identifier) @import.reexport.named
      alias: (identifier)? @import.reexport.named.alias
    )
  )
  source: (string)
)

; export { default as Button } from './button';
; export_specifier's name node is the literal identifier "default" here,
; which the adapter recognises by text rather than a distinct grammar rule.
(export_statement
  (export_clause
    (export_specifier
      name: (identifier) @import.reexport.default.alias.original
      alias: (identifier) @import.reexport.default.alias
    )
  )
  source: (string)
)

; export * from './other';
(export_statement
  !declaration
  !(export_clause)
  source: (string (string_fragment) @import.reexport.wildcard)
)

; export * as ns from './other';
(export_statement
  (namespace_export
    (identifier) @import.reexport.wildcard.alias
  )
  source: (string)
)
`
