package symbolid

import (
	"testing"

	"github.com/archlane/semindex/pkg/location"
)

func TestNewIsDeterministic(t *testing.T) {
	loc := location.Location{FilePath: "a.ts", StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 10}
	a := New(KindFunction, "foo", loc)
	b := New(KindFunction, "foo", loc)
	if a != b {
		t.Fatalf("expected identical inputs to mint identical ids, got %q and %q", a, b)
	}
}

func TestNewDistinguishesLocation(t *testing.T) {
	loc1 := location.Location{FilePath: "a.ts", StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 10}
	loc2 := location.Location{FilePath: "a.ts", StartLine: 5, StartColumn: 1, EndLine: 5, EndColumn: 10}
	a := New(KindFunction, "foo", loc1)
	b := New(KindFunction, "foo", loc2)
	if a == b {
		t.Fatalf("expected different locations to mint different ids")
	}
}

func TestKindOf(t *testing.T) {
	loc := location.Location{FilePath: "a.ts", StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 10}
	id := New(KindMethod, "bar", loc)
	k, ok := KindOf(id)
	if !ok || k != KindMethod {
		t.Fatalf("expected KindMethod, got %q (ok=%v)", k, ok)
	}
}

func TestKindOfMalformed(t *testing.T) {
	if _, ok := KindOf(""); ok {
		t.Fatalf("expected empty id to be malformed")
	}
}
