package scopes

// PythonQueries captures scope-delimiting nodes. Every function_definition,
// including one nested inside a class body, becomes a scope.function scope;
// only the definition-level capture (PythonQueries in symbols) is
// reclassified to method/constructor by the adapter.
const PythonQueries = `
(function_definition) @scope.function
(class_definition) @scope.class
(block) @scope.block
`
