package lang

import "testing"

func TestDetectLanguage(t *testing.T) {
	cases := []struct {
		filePath string
		expected Language
	}{
		{"file.ts", LanguageTypeScript},
		{"file.tsx", LanguageTypeScript},
		{"file.mts", LanguageTypeScript},
		{"file.cts", LanguageTypeScript},
		{"file.js", LanguageJavaScript},
		{"file.jsx", LanguageJavaScript},
		{"file.mjs", LanguageJavaScript},
		{"file.cjs", LanguageJavaScript},
		{"file.py", LanguagePython},
		{"file.pyi", LanguagePython},
		{"file.rs", LanguageRust},
		{"file.txt", LanguageUnknown},
		{"file.md", LanguageUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.filePath, func(t *testing.T) {
			if got := DetectLanguage(tc.filePath); got != tc.expected {
				t.Errorf("DetectLanguage(%q) = %v, want %v", tc.filePath, got, tc.expected)
			}
		})
	}
}

func TestIsTSXFile(t *testing.T) {
	cases := []struct {
		filePath string
		expected bool
	}{
		{"file.tsx", true},
		{"file.TSX", true},
		{"file.ts", false},
		{"file.js", false},
		{"file.jsx", false},
	}

	for _, tc := range cases {
		t.Run(tc.filePath, func(t *testing.T) {
			if got := IsTSXFile(tc.filePath); got != tc.expected {
				t.Errorf("IsTSXFile(%q) = %v, want %v", tc.filePath, got, tc.expected)
			}
		})
	}
}

func TestIsJSXFile(t *testing.T) {
	if !IsJSXFile("file.jsx") {
		t.Error("expected file.jsx to be detected as JSX")
	}
	if IsJSXFile("file.js") {
		t.Error("expected file.js to not be detected as JSX")
	}
}

func TestParseLanguageString(t *testing.T) {
	cases := []struct {
		input    string
		expected Language
	}{
		{"typescript", LanguageTypeScript},
		{"TypeScript", LanguageTypeScript},
		{"ts", LanguageTypeScript},
		{"javascript", LanguageJavaScript},
		{"js", LanguageJavaScript},
		{"python", LanguagePython},
		{"py", LanguagePython},
		{"rust", LanguageRust},
		{"rs", LanguageRust},
		{"unknown", LanguageUnknown},
		{"", LanguageUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseLanguageString(tc.input); got != tc.expected {
				t.Errorf("ParseLanguageString(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestSupportedLanguages(t *testing.T) {
	got := SupportedLanguages()
	if len(got) != 4 {
		t.Fatalf("expected 4 supported languages, got %d", len(got))
	}
	want := map[Language]bool{
		LanguageTypeScript: true,
		LanguageJavaScript: true,
		LanguagePython:     true,
		LanguageRust:       true,
	}
	for _, l := range got {
		if !want[l] {
			t.Errorf("unexpected language in SupportedLanguages: %v", l)
		}
	}
}

func TestLanguageString(t *testing.T) {
	cases := []struct {
		language Language
		expected string
	}{
		{LanguageTypeScript, "typescript"},
		{LanguageJavaScript, "javascript"},
		{LanguagePython, "python"},
		{LanguageRust, "rust"},
		{LanguageUnknown, "unknown"},
	}

	for _, tc := range cases {
		t.Run(tc.expected, func(t *testing.T) {
			if got := tc.language.String(); got != tc.expected {
				t.Errorf("String() = %q, want %q", got, tc.expected)
			}
		})
	}
}
