package definition

import (
	"testing"

	"github.com/archlane/semindex/pkg/location"
	"github.com/archlane/semindex/pkg/symbolid"
)

func mkLoc(startLine uint32) location.Location {
	return location.Location{FilePath: "a.ts", StartLine: startLine, StartColumn: 1, EndLine: startLine + 1, EndColumn: 1}
}

func TestAddMethodToClassAttachesOnce(t *testing.T) {
	b := NewBuilder()
	classID := symbolid.New(symbolid.KindClass, "Widget", mkLoc(1))
	b.AddClass(&Class{H: Header{SymbolID: classID, Name: "Widget"}})

	methodID := symbolid.New(symbolid.KindMethod, "render", mkLoc(2))
	method := &Method{Function: Function{H: Header{SymbolID: methodID, Name: "render"}}}

	b.AddMethodToClass(classID, method)
	b.AddMethodToClass(classID, method) // duplicate capture must be idempotent

	result := b.Build()
	class := result.Classes[classID]
	if len(class.Methods) != 1 {
		t.Fatalf("expected method attached exactly once, got %d", len(class.Methods))
	}
	if _, isTopLevel := result.Functions[methodID]; isTopLevel {
		t.Fatalf("method must not also appear as a top-level function (I3)")
	}
}

func TestOrphanMethodWithoutClassIsDropped(t *testing.T) {
	b := NewBuilder()
	methodID := symbolid.New(symbolid.KindMethod, "orphan", mkLoc(1))
	method := &Method{Function: Function{H: Header{SymbolID: methodID, Name: "orphan"}}}

	// No class registered at all -- find_containing_class would have
	// returned None, so the handler must no-op rather than create an orphan.
	b.AddMethodToClass(symbolid.New(symbolid.KindClass, "Missing", mkLoc(5)), method)

	result := b.Build()
	for _, c := range result.Classes {
		if len(c.Methods) != 0 {
			t.Fatalf("expected no method anywhere in the result")
		}
	}
	diags := b.Diagnostics()
	found := false
	for _, d := range diags {
		if d.Kind == DiagnosticMissingParent {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a MissingParent diagnostic to be recorded")
	}
}

func TestAddClassIsFirstWriteWins(t *testing.T) {
	b := NewBuilder()
	id := symbolid.New(symbolid.KindClass, "Widget", mkLoc(1))
	first := &Class{H: Header{SymbolID: id, Name: "Widget", Docstring: "first"}}
	second := &Class{H: Header{SymbolID: id, Name: "Widget", Docstring: "second"}}

	b.AddClass(first)
	b.AddClass(second)

	result := b.Build()
	if result.Classes[id].H.Docstring != "first" {
		t.Fatalf("expected first-write-wins semantics")
	}
}

func TestAddParameterToCallableSearchOrder(t *testing.T) {
	b := NewBuilder()

	fnID := symbolid.New(symbolid.KindFunction, "free", mkLoc(1))
	b.AddFunction(&Function{H: Header{SymbolID: fnID, Name: "free"}})

	classID := symbolid.New(symbolid.KindClass, "Widget", mkLoc(10))
	b.AddClass(&Class{H: Header{SymbolID: classID, Name: "Widget"}})
	methodID := symbolid.New(symbolid.KindMethod, "render", mkLoc(11))
	b.AddMethodToClass(classID, &Method{Function: Function{H: Header{SymbolID: methodID, Name: "render"}}})

	paramID := symbolid.New(symbolid.KindParameter, "x", mkLoc(12))
	b.AddParameterToCallable(methodID, &Parameter{H: Header{SymbolID: paramID, Name: "x"}})

	result := b.Build()
	method := result.Classes[classID].Methods[0]
	if len(method.Parameters) != 1 || method.Parameters[0].H.Name != "x" {
		t.Fatalf("expected parameter attached to the method, not the free function")
	}
	if len(result.Functions[fnID].Parameters) != 0 {
		t.Fatalf("expected free function to receive no parameters")
	}
}

func TestFindClassByName(t *testing.T) {
	b := NewBuilder()
	id := symbolid.New(symbolid.KindClass, "Point", mkLoc(1))
	b.AddClass(&Class{H: Header{SymbolID: id, Name: "Point"}})

	got, ok := b.FindClassByName("Point")
	if !ok || got != id {
		t.Fatalf("expected to find class by name")
	}
	if _, ok := b.FindClassByName("Missing"); ok {
		t.Fatalf("expected lookup of unknown name to fail")
	}
}

func TestAddDecoratorToTargetDeduplicates(t *testing.T) {
	b := NewBuilder()
	classID := symbolid.New(symbolid.KindClass, "User", mkLoc(1))
	b.AddClass(&Class{H: Header{SymbolID: classID, Name: "User"}})

	decID := symbolid.New(symbolid.KindDecorator, "Entity", mkLoc(1))
	dec := &Decorator{H: Header{SymbolID: decID, Name: "Entity"}}

	b.AddDecoratorToTarget(classID, dec)
	b.AddDecoratorToTarget(classID, dec)

	result := b.Build()
	if len(result.Classes[classID].Decorators) != 1 {
		t.Fatalf("expected duplicate decorator captures to be deduplicated")
	}
	if len(result.Decorators) != 1 {
		t.Fatalf("expected decorator to also appear standalone exactly once")
	}
}
