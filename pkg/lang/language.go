// Package lang identifies the programming languages the indexer understands
// and maps file paths to them.
package lang

import (
	"path/filepath"
	"strings"
)

// Language represents a supported programming language for parsing.
type Language int

const (
	// LanguageTypeScript represents TypeScript (.ts, .tsx, .mts, .cts files)
	LanguageTypeScript Language = iota
	// LanguageJavaScript represents JavaScript (.js, .jsx, .mjs, .cjs files)
	LanguageJavaScript
	// LanguagePython represents Python (.py, .pyi files)
	LanguagePython
	// LanguageRust represents Rust (.rs files)
	LanguageRust
	// LanguageUnknown represents an unsupported language
	LanguageUnknown
)

// String returns the string representation of the language.
func (l Language) String() string {
	switch l {
	case LanguageTypeScript:
		return "typescript"
	case LanguageJavaScript:
		return "javascript"
	case LanguagePython:
		return "python"
	case LanguageRust:
		return "rust"
	default:
		return "unknown"
	}
}

// DetectLanguage detects the programming language from a file path.
// Returns LanguageUnknown if the file extension is not recognized.
func DetectLanguage(filePath string) Language {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".ts", ".mts", ".cts", ".tsx":
		return LanguageTypeScript
	case ".js", ".jsx", ".mjs", ".cjs":
		return LanguageJavaScript
	case ".py", ".pyi":
		return LanguagePython
	case ".rs":
		return LanguageRust
	default:
		return LanguageUnknown
	}
}

// IsTSXFile checks if a file path represents a TSX file.
// TSX files use the TypeScript grammar with JSX support enabled.
func IsTSXFile(filePath string) bool {
	return strings.ToLower(filepath.Ext(filePath)) == ".tsx"
}

// IsJSXFile checks if a file path represents a JSX file.
// JSX files use the JavaScript grammar (JSX is always enabled in it).
func IsJSXFile(filePath string) bool {
	return strings.ToLower(filepath.Ext(filePath)) == ".jsx"
}

// ParseLanguageString converts a language string to a Language type.
// Returns LanguageUnknown if the string is not recognized.
func ParseLanguageString(s string) Language {
	switch strings.ToLower(s) {
	case "typescript", "ts", "tsx":
		return LanguageTypeScript
	case "javascript", "js", "jsx":
		return LanguageJavaScript
	case "python", "py":
		return LanguagePython
	case "rust", "rs":
		return LanguageRust
	default:
		return LanguageUnknown
	}
}

// SupportedLanguages returns a list of all supported languages.
func SupportedLanguages() []Language {
	return []Language{
		LanguageTypeScript,
		LanguageJavaScript,
		LanguagePython,
		LanguageRust,
	}
}
