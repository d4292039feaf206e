package queries

import (
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/archlane/semindex/pkg/lang"
	"github.com/archlane/semindex/pkg/parser"
)

var (
	testLogger        *slog.Logger
	testParserManager *parser.ParserManager
	testQueryManager  *QueryManager
)

func setupTest(t *testing.T) {
	t.Helper()

	testLogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	testParserManager = parser.NewParserManager(testLogger)
	testQueryManager = NewQueryManager(testParserManager, testLogger)
}

func teardownTest(t *testing.T) {
	t.Helper()

	if testQueryManager != nil {
		testQueryManager.Close()
	}
	if testParserManager != nil {
		testParserManager.Close()
	}
}

const sampleTS = `
export interface User {
  id: number;
  name: string;
}

export class UserService {
  getUserById(id: number): User {
    return { id, name: "x" };
  }
}

export function getUserById(id: number): User {
  return { id, name: "y" };
}
`

const sampleJS = `
class Widget {
  render() {
    return null;
  }
}

function helper() {
  return 1;
}
`

const samplePython = `
class Box:
    def __init__(self, x):
        self.x = x

    @classmethod
    def make(cls):
        return cls(0)
`

const sampleRust = `
pub struct P {
    x: i32,
}

impl P {
    pub fn new() -> Self {
        P { x: 0 }
    }

    pub fn get(&self) -> i32 {
        self.x
    }
}
`

// ===========================================================================
// Query compilation tests (one per language x query type)
// ===========================================================================

func TestQueryCompilation_Symbols(t *testing.T) {
	setupTest(t)
	defer teardownTest(t)

	for _, l := range lang.SupportedLanguages() {
		query, err := testQueryManager.GetQuery(l, QueryTypeSymbols)
		if err != nil {
			t.Fatalf("failed to compile %s symbol query: %v", l, err)
		}
		if query == nil {
			t.Fatalf("compiled %s symbol query is nil", l)
		}
	}
}

func TestQueryCompilation_Imports(t *testing.T) {
	setupTest(t)
	defer teardownTest(t)

	for _, l := range lang.SupportedLanguages() {
		query, err := testQueryManager.GetQuery(l, QueryTypeImports)
		if err != nil {
			t.Fatalf("failed to compile %s import query: %v", l, err)
		}
		if query == nil {
			t.Fatalf("compiled %s import query is nil", l)
		}
	}
}

func TestQueryCompilation_Scopes(t *testing.T) {
	setupTest(t)
	defer teardownTest(t)

	for _, l := range lang.SupportedLanguages() {
		query, err := testQueryManager.GetQuery(l, QueryTypeScopes)
		if err != nil {
			t.Fatalf("failed to compile %s scope query: %v", l, err)
		}
		if query == nil {
			t.Fatalf("compiled %s scope query is nil", l)
		}
	}
}

// ===========================================================================
// Query execution tests
// ===========================================================================

func TestQueryExecution_Symbols_TypeScript(t *testing.T) {
	setupTest(t)
	defer teardownTest(t)

	source := []byte(sampleTS)
	tree, err := testParserManager.Parse(source, lang.LanguageTypeScript, false)
	if err != nil {
		t.Fatalf("failed to parse TypeScript source: %v", err)
	}
	defer tree.Close()

	query, err := testQueryManager.GetQuery(lang.LanguageTypeScript, QueryTypeSymbols)
	if err != nil {
		t.Fatalf("failed to get query: %v", err)
	}

	matches, err := testQueryManager.ExecuteQuery(tree, query, source)
	if err != nil {
		t.Fatalf("failed to execute query: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("expected matches, got none")
	}

	foundInterface, foundClass, foundFunction := false, false, false
	for _, match := range matches {
		for _, capture := range match.Captures {
			switch {
			case capture.Text == "User" && capture.Name == "definition.interface.name":
				foundInterface = true
			case capture.Text == "UserService" && capture.Name == "definition.class.name":
				foundClass = true
			case capture.Text == "getUserById" && capture.Name == "definition.function.name":
				foundFunction = true
			}
		}
	}

	if !foundInterface {
		t.Error("did not find User interface")
	}
	if !foundClass {
		t.Error("did not find UserService class")
	}
	if !foundFunction {
		t.Error("did not find getUserById function")
	}
}

func TestQueryExecution_Symbols_Python(t *testing.T) {
	setupTest(t)
	defer teardownTest(t)

	source := []byte(samplePython)
	tree, err := testParserManager.Parse(source, lang.LanguagePython, false)
	if err != nil {
		t.Fatalf("failed to parse Python source: %v", err)
	}
	defer tree.Close()

	query, err := testQueryManager.GetQuery(lang.LanguagePython, QueryTypeSymbols)
	if err != nil {
		t.Fatalf("failed to get query: %v", err)
	}

	matches, err := testQueryManager.ExecuteQuery(tree, query, source)
	if err != nil {
		t.Fatalf("failed to execute query: %v", err)
	}

	foundClass, foundInit, foundMake := false, false, false
	for _, match := range matches {
		for _, capture := range match.Captures {
			switch {
			case capture.Text == "Box" && capture.Name == "definition.class.name":
				foundClass = true
			case capture.Text == "__init__" && capture.Name == "definition.function.name":
				foundInit = true
			case capture.Text == "make" && capture.Name == "definition.function.name":
				foundMake = true
			}
		}
	}

	if !foundClass || !foundInit || !foundMake {
		t.Errorf("expected Box/__init__/make, got class=%v init=%v make=%v", foundClass, foundInit, foundMake)
	}
}

func TestQueryExecution_Symbols_Rust(t *testing.T) {
	setupTest(t)
	defer teardownTest(t)

	source := []byte(sampleRust)
	tree, err := testParserManager.Parse(source, lang.LanguageRust, false)
	if err != nil {
		t.Fatalf("failed to parse Rust source: %v", err)
	}
	defer tree.Close()

	query, err := testQueryManager.GetQuery(lang.LanguageRust, QueryTypeSymbols)
	if err != nil {
		t.Fatalf("failed to get query: %v", err)
	}

	matches, err := testQueryManager.ExecuteQuery(tree, query, source)
	if err != nil {
		t.Fatalf("failed to execute query: %v", err)
	}

	foundStruct, foundNew, foundGet := false, false, false
	for _, match := range matches {
		for _, capture := range match.Captures {
			switch {
			case capture.Text == "P" && capture.Name == "definition.class.name":
				foundStruct = true
			case capture.Text == "new" && capture.Name == "definition.function.name":
				foundNew = true
			case capture.Text == "get" && capture.Name == "definition.function.name":
				foundGet = true
			}
		}
	}

	if !foundStruct || !foundNew || !foundGet {
		t.Errorf("expected P/new/get, got struct=%v new=%v get=%v", foundStruct, foundNew, foundGet)
	}
}

// ===========================================================================
// Capture processing tests
// ===========================================================================

func TestParseCaptureName(t *testing.T) {
	tests := []struct {
		name             string
		input            string
		expectedCategory string
		expectedField    string
	}{
		{"dotted capture name", "definition.function.name", "definition", "function.name"},
		{"simple capture name", "package_name", "package_name", ""},
		{"import source", "import.source", "import", "source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, field := parseCaptureName(tt.input)
			if category != tt.expectedCategory {
				t.Errorf("expected category %q, got %q", tt.expectedCategory, category)
			}
			if field != tt.expectedField {
				t.Errorf("expected field %q, got %q", tt.expectedField, field)
			}
		})
	}
}

func TestNodeLocation(t *testing.T) {
	setupTest(t)
	defer teardownTest(t)

	source := []byte("const x: number = 1;\n")
	tree, err := testParserManager.Parse(source, lang.LanguageTypeScript, false)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	defer tree.Close()

	loc := nodeLocation(tree.RootNode())

	if loc.StartLine == 0 {
		t.Error("StartLine should be 1-based, got 0")
	}
	if loc.StartColumn == 0 {
		t.Error("StartColumn should be 1-based, got 0")
	}
	if loc.EndByte == 0 {
		t.Error("EndByte should be non-zero")
	}
}

func TestQueryCache(t *testing.T) {
	setupTest(t)
	defer teardownTest(t)

	query1, err := testQueryManager.GetQuery(lang.LanguageTypeScript, QueryTypeSymbols)
	if err != nil {
		t.Fatalf("failed to get query first time: %v", err)
	}

	query2, err := testQueryManager.GetQuery(lang.LanguageTypeScript, QueryTypeSymbols)
	if err != nil {
		t.Fatalf("failed to get query second time: %v", err)
	}

	if query1 != query2 {
		t.Error("expected cached query to return same pointer")
	}
}

// ===========================================================================
// Concurrency test
// ===========================================================================

func TestConcurrentQueryExecution(t *testing.T) {
	setupTest(t)
	defer teardownTest(t)

	tsSource := []byte(sampleTS)
	jsSource := []byte(sampleJS)

	var wg sync.WaitGroup
	errs := make(chan error, 20)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tree, err := testParserManager.Parse(tsSource, lang.LanguageTypeScript, false)
			if err != nil {
				errs <- err
				return
			}
			defer tree.Close()

			query, err := testQueryManager.GetQuery(lang.LanguageTypeScript, QueryTypeSymbols)
			if err != nil {
				errs <- err
				return
			}

			_, err = testQueryManager.ExecuteQuery(tree, query, tsSource)
			if err != nil {
				errs <- err
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			tree, err := testParserManager.Parse(jsSource, lang.LanguageJavaScript, false)
			if err != nil {
				errs <- err
				return
			}
			defer tree.Close()

			query, err := testQueryManager.GetQuery(lang.LanguageJavaScript, QueryTypeSymbols)
			if err != nil {
				errs <- err
				return
			}

			_, err = testQueryManager.ExecuteQuery(tree, query, jsSource)
			if err != nil {
				errs <- err
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent execution error: %v", err)
	}
}

// ===========================================================================
// Error handling tests
// ===========================================================================

func TestExecuteQuery_NilTree(t *testing.T) {
	setupTest(t)
	defer teardownTest(t)

	query, err := testQueryManager.GetQuery(lang.LanguageTypeScript, QueryTypeSymbols)
	if err != nil {
		t.Fatalf("failed to get query: %v", err)
	}

	_, err = testQueryManager.ExecuteQuery(nil, query, []byte("test"))
	if err == nil {
		t.Error("expected error for nil tree, got nil")
	}
}

func TestExecuteQuery_NilQuery(t *testing.T) {
	setupTest(t)
	defer teardownTest(t)

	source := []byte("const x = 1;")
	tree, err := testParserManager.Parse(source, lang.LanguageTypeScript, false)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	defer tree.Close()

	_, err = testQueryManager.ExecuteQuery(tree, nil, source)
	if err == nil {
		t.Error("expected error for nil query, got nil")
	}
}

func TestGetQuery_UnknownLanguage(t *testing.T) {
	setupTest(t)
	defer teardownTest(t)

	_, err := testQueryManager.GetQuery(lang.LanguageUnknown, QueryTypeSymbols)
	if err == nil {
		t.Error("expected error for unknown language, got nil")
	}
}

func TestGetQuery_InvalidQueryType(t *testing.T) {
	setupTest(t)
	defer teardownTest(t)

	_, err := testQueryManager.GetQuery(lang.LanguageTypeScript, QueryType(999))
	if err == nil {
		t.Error("expected error for invalid query type, got nil")
	}
}
