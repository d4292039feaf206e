package scopes

// JSQueries mirrors TSQueries minus TypeScript-only constructs.
const JSQueries = `
(function_declaration) @scope.function
(function_expression) @scope.function
(arrow_function) @scope.function
(generator_function_declaration) @scope.function
(method_definition) @scope.method
(class_declaration) @scope.class
(class) @scope.class
(statement_block) @scope.block
`
