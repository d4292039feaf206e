package scopes

// TSQueries captures scope-delimiting nodes used to build the per-file
// scope tree (§4.3). Every capture name is "scope.<kind>"; the kind
// portion maps directly onto scope.Kind. The module scope itself is
// synthesised by scope.NewTree and is never produced by a query.
const TSQueries = `
(function_declaration) @scope.function
(function_expression) @scope.function
(arrow_function) @scope.function
(generator_function_declaration) @scope.function
(method_definition) @scope.method
(method_signature) @scope.method
(class_declaration) @scope.class
(abstract_class_declaration) @scope.class
(class) @scope.class
(interface_declaration) @scope.interface
(enum_declaration) @scope.enum
(internal_module) @scope.namespace
(module) @scope.namespace
(statement_block) @scope.block
`
