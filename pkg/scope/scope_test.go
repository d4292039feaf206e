package scope

import (
	"testing"

	"github.com/archlane/semindex/pkg/location"
)

func loc(startLine, startCol, endLine, endCol uint32) location.Location {
	return location.Location{FilePath: "a.ts", StartLine: startLine, StartColumn: startCol, EndLine: endLine, EndColumn: endCol}
}

func TestTreeRootIsModule(t *testing.T) {
	tree := NewTree("a.ts", loc(1, 1, 100, 1))
	root, ok := tree.Get(tree.Root())
	if !ok || root.Kind != KindModule {
		t.Fatalf("expected root scope to be module kind")
	}
	if root.HasParent {
		t.Fatalf("expected module scope to have no parent")
	}
}

func TestBuildFromCandidatesNesting(t *testing.T) {
	tree := NewTree("a.ts", loc(1, 1, 100, 1))
	classLoc := loc(2, 1, 20, 2)
	methodLoc := loc(5, 3, 10, 4)

	tree.BuildFromCandidates([]ScopeCapture{
		{Kind: KindMethod, Name: "run", Location: methodLoc},
		{Kind: KindClass, Name: "Widget", Location: classLoc},
	})

	classID, err := tree.ChildScopeWithName(tree.Root(), "Widget")
	if err != nil {
		t.Fatalf("expected to find class scope: %v", err)
	}
	methodID, err := tree.ChildScopeWithName(classID, "run")
	if err != nil {
		t.Fatalf("expected to find method scope nested under class: %v", err)
	}
	m, _ := tree.Get(methodID)
	if m.Parent != classID {
		t.Fatalf("expected method's parent to be the class scope")
	}
}

func TestChildScopeWithNameNotFound(t *testing.T) {
	tree := NewTree("a.ts", loc(1, 1, 100, 1))
	if _, err := tree.ChildScopeWithName(tree.Root(), "Missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContainingScopeFallsBackToModule(t *testing.T) {
	tree := NewTree("a.ts", loc(1, 1, 100, 1))
	got := tree.ContainingScope(loc(50, 1, 50, 5))
	if got != tree.Root() {
		t.Fatalf("expected fallback to module scope when nothing else contains the location")
	}
}

func TestBodyScopeForFallback(t *testing.T) {
	tree := NewTree("a.ts", loc(1, 1, 100, 1))
	defLoc := loc(5, 1, 10, 2)
	tree.BuildFromCandidates([]ScopeCapture{{Kind: KindFunction, Name: "f", Location: defLoc}})

	// No body scope registered at all -> falls back to containing scope of defLoc.
	got := tree.BodyScopeFor(loc(6, 1, 6, 1), defLoc)
	funcID, _ := tree.ChildScopeWithName(tree.Root(), "f")
	if got != funcID {
		t.Fatalf("expected body scope fallback to resolve to the function's own scope")
	}
}
