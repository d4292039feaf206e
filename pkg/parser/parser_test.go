package parser

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archlane/semindex/pkg/lang"
)

const sampleTSSource = `
interface User {
  id: number;
  name: string;
}

class UserService {
  getUserById(id: number): User {
    return { id, name: "x" };
  }
}
`

const sampleTSXSource = `
const Greeting = () => {
  return <div>Hello</div>;
};
`

const sampleJSSource = `
class Widget {
  render() {
    return null;
  }
}
`

func TestParseTypeScript(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	manager := NewParserManager(logger)
	defer manager.Close()

	tree, err := manager.Parse([]byte(sampleTSSource), lang.LanguageTypeScript, false)
	require.NoError(t, err, "Parse should succeed")
	require.NotNil(t, tree, "Tree should not be nil")
	defer tree.Close()

	root := tree.RootNode()
	assert.NotNil(t, root, "Root node should not be nil")
	assert.Equal(t, "program", root.Kind(), "Root should be a program node")
}

func TestParseTSX(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	manager := NewParserManager(logger)
	defer manager.Close()

	tree, err := manager.Parse([]byte(sampleTSXSource), lang.LanguageTypeScript, true)
	require.NoError(t, err, "Parse should succeed")
	require.NotNil(t, tree, "Tree should not be nil")
	defer tree.Close()

	root := tree.RootNode()
	assert.NotNil(t, root, "Root node should not be nil")
	assert.Equal(t, "program", root.Kind(), "Root should be a program node")

	treeString := root.ToSexp()
	assert.Contains(t, treeString, "jsx_element", "Should contain JSX elements")
}

func TestParseJavaScript(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	manager := NewParserManager(logger)
	defer manager.Close()

	tree, err := manager.Parse([]byte(sampleJSSource), lang.LanguageJavaScript, false)
	require.NoError(t, err, "Parse should succeed")
	require.NotNil(t, tree, "Tree should not be nil")
	defer tree.Close()

	root := tree.RootNode()
	assert.Equal(t, "program", root.Kind(), "Root should be a program node")
}

func TestParsePython(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	manager := NewParserManager(logger)
	defer manager.Close()

	tree, err := manager.Parse([]byte("def f(x):\n    return x\n"), lang.LanguagePython, false)
	require.NoError(t, err, "Parse should succeed")
	require.NotNil(t, tree, "Tree should not be nil")
	defer tree.Close()

	root := tree.RootNode()
	assert.Equal(t, "module", root.Kind(), "Root should be a module node")
}

func TestParseRust(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	manager := NewParserManager(logger)
	defer manager.Close()

	tree, err := manager.Parse([]byte("struct P { x: i32 }\n"), lang.LanguageRust, false)
	require.NoError(t, err, "Parse should succeed")
	require.NotNil(t, tree, "Tree should not be nil")
	defer tree.Close()

	root := tree.RootNode()
	assert.Equal(t, "source_file", root.Kind(), "Root should be a source_file node")
}

func TestParseFile(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	manager := NewParserManager(logger)
	defer manager.Close()

	testCases := []struct {
		fileName     string
		source       string
		expectedKind string
	}{
		{"sample.ts", sampleTSSource, "program"},
		{"sample.js", sampleJSSource, "program"},
		{"sample.py", "def f(): pass\n", "module"},
		{"sample.rs", "struct P { x: i32 }\n", "source_file"},
	}

	for _, tc := range testCases {
		t.Run(tc.fileName, func(t *testing.T) {
			tree, err := manager.ParseFile([]byte(tc.source), tc.fileName)
			require.NoError(t, err, "ParseFile should succeed for %s", tc.fileName)
			require.NotNil(t, tree, "Tree should not be nil")
			defer tree.Close()

			root := tree.RootNode()
			assert.Equal(t, tc.expectedKind, root.Kind(), "Root node kind should match")
		})
	}
}

func TestLazyInitialization(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	manager := NewParserManager(logger)
	defer manager.Close()

	stats := manager.GetStats()
	assert.Equal(t, 0, stats.ParsersCreated, "Should start with 0 parsers")

	source := []byte("const x: number = 1;")
	tree, err := manager.Parse(source, lang.LanguageTypeScript, false)
	require.NoError(t, err)
	require.NotNil(t, tree)
	tree.Close()

	stats = manager.GetStats()
	assert.Equal(t, 1, stats.ParsersCreated, "Should have created 1 parser")
	assert.Equal(t, 1, stats.ParsesCalled, "Should have called Parse once")

	tree, err = manager.Parse(source, lang.LanguageTypeScript, false)
	require.NoError(t, err)
	require.NotNil(t, tree)
	tree.Close()

	stats = manager.GetStats()
	assert.Equal(t, 1, stats.ParsersCreated, "Should still have 1 parser (reused)")
	assert.Equal(t, 2, stats.ParsesCalled, "Should have called Parse twice")

	tree, err = manager.Parse([]byte("const y = 2;"), lang.LanguageJavaScript, false)
	require.NoError(t, err)
	require.NotNil(t, tree)
	tree.Close()

	stats = manager.GetStats()
	assert.Equal(t, 2, stats.ParsersCreated, "Should have created 2 parsers")
	assert.Equal(t, 3, stats.ParsesCalled, "Should have called Parse 3 times")
}

func TestParseUnknownLanguage(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	manager := NewParserManager(logger)
	defer manager.Close()

	source := []byte("some random text")
	tree, err := manager.Parse(source, lang.LanguageUnknown, false)
	assert.Error(t, err, "Should return error for unknown language")
	assert.Nil(t, tree, "Tree should be nil for unknown language")
}

func TestParseInvalidSyntax(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	manager := NewParserManager(logger)
	defer manager.Close()

	source := []byte("const x: = ;")
	tree, err := manager.Parse(source, lang.LanguageTypeScript, false)
	require.NoError(t, err, "Parse should not return error even for invalid syntax")
	require.NotNil(t, tree, "Tree should not be nil")
	defer tree.Close()

	root := tree.RootNode()
	assert.True(t, root.HasError(), "Root should have errors for invalid syntax")
}

func TestMemoryCleanup(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	manager := NewParserManager(logger)

	source := []byte("const x = 1;")
	for _, l := range lang.SupportedLanguages() {
		if l == lang.LanguagePython || l == lang.LanguageRust {
			continue
		}
		tree, err := manager.Parse(source, l, false)
		if err == nil && tree != nil {
			tree.Close()
		}
	}

	err := manager.Close()
	assert.NoError(t, err, "Close should succeed")
	assert.Empty(t, manager.pools, "Pools map should be empty after Close")
}
