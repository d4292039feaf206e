// Package scope builds and queries the lexical scope tree for a single
// file. The tree is built once, from scope-delimiter captures, in a single
// pass ordered by ascending start / descending end so that outer scopes are
// always inserted before the inner scopes they contain.
package scope

import (
	"fmt"
	"sort"

	"github.com/archlane/semindex/pkg/location"
)

// Kind identifies what kind of lexical construct a scope corresponds to.
type Kind string

const (
	KindModule      Kind = "module"
	KindFunction    Kind = "function"
	KindMethod      Kind = "method"
	KindConstructor Kind = "constructor"
	KindClass       Kind = "class"
	KindInterface   Kind = "interface"
	KindEnum        Kind = "enum"
	KindNamespace   Kind = "namespace"
	KindBlock       Kind = "block"
	KindImpl        Kind = "impl"
)

// scopeKindsEligibleAsNamedChild is the set of kinds child_scope_with_name
// will consider — plain blocks are never addressable by name.
var scopeKindsEligibleAsNamedChild = map[Kind]bool{
	KindFunction:    true,
	KindMethod:      true,
	KindConstructor: true,
	KindClass:       true,
	KindInterface:   true,
	KindEnum:        true,
	KindNamespace:   true,
}

// ID identifies a single scope within one file's tree.
type ID string

// Scope is one node of the lexical scope forest. Every file has exactly one
// module-kind scope at the root, with no parent.
type Scope struct {
	ID       ID
	Kind     Kind
	Name     string
	Location location.Location
	Parent   ID // "" for the root module scope
	HasParent bool
}

// ErrNotFound is returned by ChildScopeWithName when no matching child exists.
var ErrNotFound = fmt.Errorf("scope: not found")

// candidate is a scope awaiting insertion, collected from captures before
// the tree is built.
type candidate struct {
	kind Kind
	name string
	loc  location.Location
}

// Tree is the ordered collection of lexical scopes for one file.
type Tree struct {
	scopes   map[ID]*Scope
	order    []ID // insertion order, for deterministic iteration
	root     ID
	nextSeq  int
	filePath string
}

// NewTree creates a tree with its module-scope root already inserted.
// moduleLoc should span the entire file.
func NewTree(filePath string, moduleLoc location.Location) *Tree {
	t := &Tree{
		scopes:   make(map[ID]*Scope),
		filePath: filePath,
	}
	root := &Scope{
		ID:       t.allocID(),
		Kind:     KindModule,
		Location: moduleLoc,
	}
	t.scopes[root.ID] = root
	t.order = append(t.order, root.ID)
	t.root = root.ID
	return t
}

func (t *Tree) allocID() ID {
	t.nextSeq++
	return ID(fmt.Sprintf("scope:%s:%d", t.filePath, t.nextSeq))
}

// Root returns the id of the file's module scope.
func (t *Tree) Root() ID {
	return t.root
}

// BuildFromCandidates inserts every scope-delimiter capture collected during
// a query pass, in the order required by §4.3: ascending location.start,
// ties broken by descending location.end (outer before inner). The parent
// of each newly inserted scope is the innermost already-inserted scope that
// strictly contains it; the module scope (already present) is always the
// fallback parent.
func (t *Tree) BuildFromCandidates(candidates []ScopeCapture) {
	sorted := make([]ScopeCapture, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Location, sorted[j].Location
		if a.StartLine != b.StartLine {
			return a.StartLine < b.StartLine
		}
		if a.StartColumn != b.StartColumn {
			return a.StartColumn < b.StartColumn
		}
		// tie on start: descending end (outer before inner)
		if a.EndLine != b.EndLine {
			return a.EndLine > b.EndLine
		}
		return a.EndColumn > b.EndColumn
	})

	for _, c := range sorted {
		t.insert(c.Kind, c.Name, c.Location)
	}
}

// ScopeCapture is a single scope-delimiter capture as produced by a
// language adapter's scope query, prior to tree construction.
type ScopeCapture struct {
	Kind     Kind
	Name     string
	Location location.Location
}

// insert adds one scope, attaching it to the innermost currently-inserted
// scope that strictly contains it.
func (t *Tree) insert(kind Kind, name string, loc location.Location) ID {
	id := t.allocID()
	s := &Scope{ID: id, Kind: kind, Name: name, Location: loc}

	parent := t.innermostContaining(loc)
	// A scope with exactly the same span does not strictly contain loc, so
	// the new scope attaches to that scope's own parent instead.
	if p := t.scopes[parent]; parent != t.root && location.Equal(p.Location, loc) {
		parent = p.Parent
	}
	s.Parent = parent
	s.HasParent = true

	t.scopes[id] = s
	t.order = append(t.order, id)
	return id
}

// innermostContaining returns the smallest already-inserted scope that
// contains loc (a scope with the same span counts as containing it),
// falling back to the root module scope.
func (t *Tree) innermostContaining(loc location.Location) ID {
	best := t.root
	bestSpan := int64(-1)
	for _, id := range t.order {
		s := t.scopes[id]
		if s.ID == t.root {
			continue
		}
		if location.Contains(s.Location, loc) {
			span := spanSize(s.Location)
			if bestSpan == -1 || span < bestSpan {
				best = s.ID
				bestSpan = span
			}
		}
	}
	return best
}

func spanSize(loc location.Location) int64 {
	lineSpan := int64(loc.EndLine) - int64(loc.StartLine)
	return lineSpan*1_000_000 + int64(loc.EndColumn) - int64(loc.StartColumn)
}

// ContainingScope returns the smallest scope containing loc, or the module
// scope if no inner scope matches.
func (t *Tree) ContainingScope(loc location.Location) ID {
	return t.innermostContaining(loc)
}

// ChildScopeWithName returns the unique child of parent whose name matches
// and whose kind is one of the addressable kinds (function, method,
// constructor, class, interface, enum, namespace). Returns ErrNotFound if no
// child matches; never returns an ambiguous match (the first one found in
// insertion order wins, matching source order for well-formed trees).
func (t *Tree) ChildScopeWithName(parent ID, name string) (ID, error) {
	for _, id := range t.order {
		s := t.scopes[id]
		if s.Parent != parent || !s.HasParent {
			continue
		}
		if s.Name == name && scopeKindsEligibleAsNamedChild[s.Kind] {
			return id, nil
		}
	}
	return "", ErrNotFound
}

// BodyScopeFor returns the inner scope whose location matches bodyLoc,
// falling back to the containing scope of defLoc if no such scope was
// registered (e.g. the grammar offered no dedicated body node).
func (t *Tree) BodyScopeFor(bodyLoc location.Location, defLoc location.Location) ID {
	for _, id := range t.order {
		s := t.scopes[id]
		if location.Equal(s.Location, bodyLoc) {
			return id
		}
	}
	return t.ContainingScope(defLoc)
}

// Get returns a copy of the scope for id, and whether it exists.
func (t *Tree) Get(id ID) (Scope, bool) {
	s, ok := t.scopes[id]
	if !ok {
		return Scope{}, false
	}
	return *s, true
}

// Snapshot returns a read-only copy of every scope, keyed by id, suitable
// for embedding in a frozen SemanticIndex.
func (t *Tree) Snapshot() map[ID]Scope {
	out := make(map[ID]Scope, len(t.scopes))
	for id, s := range t.scopes {
		out[id] = *s
	}
	return out
}
