package scopes

// RustQueries captures scope-delimiting nodes. impl_item is its own scope
// kind (scope.impl) since it owns methods but mints no definition of its
// own. The adapter's findContainingImpl does not use this scope: it walks
// up the syntax tree to the nearest impl_item node.
const RustQueries = `
(function_item) @scope.function
(impl_item) @scope.impl
(trait_item) @scope.interface
(struct_item) @scope.class
(enum_item) @scope.enum
(mod_item) @scope.namespace
(block) @scope.block
`
