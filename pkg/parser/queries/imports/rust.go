package imports

// RustQueries contains the tree-sitter query patterns used to extract
// `use` declaration captures from Rust source. A `pub use` re-exports the
// imported path under the current module, which the adapter records as
// export metadata on the same Import definition (mirroring the JS/TS
// re-export treatment, per the "Re-export" glossary entry).
const RustQueries = `
; use std::collections::HashMap;
(use_declaration
  (visibility_modifier)? @import.reexport.marker
  argument: (scoped_identifier
    path: (_) @import.source
    name: (identifier) @import.named)
) @import.statement

; use std::io::Result as IoResult;
(use_declaration
  (visibility_modifier)? @import.reexport.marker
  argument: (use_as_clause
    path: (scoped_identifier
      path: (_) @import.source
      name: (identifier) @import.named)
    alias: (identifier) @import.named.alias)
) @import.statement

; use std::collections::{HashMap, HashSet};
(use_declaration
  (visibility_modifier)? @import.reexport.marker
  argument: (use_list
    (identifier) @import.named)
) @import.statement

; use std::io::*;
(use_declaration
  (visibility_modifier)? @import.reexport.marker
  argument: (use_wildcard
    (scoped_identifier) @import.source)
) @import.statement

; use crate::module;  (namespace-shaped import of a single module path)
(use_declaration
  (visibility_modifier)? @import.reexport.marker
  argument: (identifier) @import.namespace
) @import.statement
`
