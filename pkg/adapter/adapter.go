package adapter

import (
	"fmt"

	"github.com/archlane/semindex/pkg/lang"
)

// For reports an error for any language outside the four supported
// grammars, mirroring the Indexer's UnsupportedLanguageError boundary.
func For(language lang.Language) (Adapter, error) {
	switch language {
	case lang.LanguageTypeScript:
		return NewTypeScript(), nil
	case lang.LanguageJavaScript:
		return NewJavaScript(), nil
	case lang.LanguagePython:
		return NewPython(), nil
	case lang.LanguageRust:
		return NewRust(), nil
	default:
		return nil, fmt.Errorf("adapter: unsupported language %v", language)
	}
}
