package ast

// bucketCapacity bounds how many nodes of a given kind live in one
// bucket before the arena appends a new one. Buckets are never
// reallocated once created, so a pointer into a bucket's backing array
// stays valid for the lifetime of the arena — the property the
// bucket-array design exists to guarantee.
const bucketCapacity = 256

// Arena allocates AST nodes with stable addresses for the lifetime of
// a compilation. It owns one bucket list per node kind that needs
// stable pointers handed out during parsing, and returns a pointer to
// a bucket slot; node kinds without a bucket list are ordinary heap
// allocations made by the parser.
//
// Go's garbage collector already gives every heap allocation a stable
// address for its lifetime, so a naive arena could just be
// `new(T)` per node. The bucket-array arena is kept anyway because it
// is the property the original sources fixed their pointer-invalidation
// bug with, and it buys locality: statements and scopes parsed in the
// same function tend to live in the same bucket.
type Arena struct {
	scopes  []*scopeBucket
	idents  []*identBucket
	intLits []*intLitBucket
	boolLits []*boolLitBucket
	binExprs []*binExprBucket

	nextScopeID ScopeID
}

type scopeBucket struct {
	nodes [bucketCapacity]Scope
	len   int
}

type identBucket struct {
	nodes [bucketCapacity]Ident
	len   int
}

type intLitBucket struct {
	nodes [bucketCapacity]IntLit
	len   int
}

type boolLitBucket struct {
	nodes [bucketCapacity]BoolLit
	len   int
}

type binExprBucket struct {
	nodes [bucketCapacity]BinaryExpr
	len   int
}

// NewArena creates an empty arena. Its scope-id counter starts at 0
// and is explicit state on the Arena (not a process-global), so
// allocating two independent arenas produces independent, reproducible
// scope-id sequences.
func NewArena() *Arena {
	return &Arena{}
}

// NewScopeID draws the next monotonic scope id, pre-order over the
// nesting structure the parser walks.
func (a *Arena) NewScopeID() ScopeID {
	id := a.nextScopeID
	a.nextScopeID++
	return id
}

// NewScope allocates a Scope at a stable address.
func (a *Arena) NewScope() *Scope {
	if len(a.scopes) == 0 || a.scopes[len(a.scopes)-1].len == bucketCapacity {
		a.scopes = append(a.scopes, &scopeBucket{})
	}
	b := a.scopes[len(a.scopes)-1]
	node := &b.nodes[b.len]
	b.len++
	return node
}

// NewIdent allocates an Ident at a stable address.
func (a *Arena) NewIdent() *Ident {
	if len(a.idents) == 0 || a.idents[len(a.idents)-1].len == bucketCapacity {
		a.idents = append(a.idents, &identBucket{})
	}
	b := a.idents[len(a.idents)-1]
	node := &b.nodes[b.len]
	b.len++
	return node
}

// NewIntLit allocates an IntLit at a stable address.
func (a *Arena) NewIntLit() *IntLit {
	if len(a.intLits) == 0 || a.intLits[len(a.intLits)-1].len == bucketCapacity {
		a.intLits = append(a.intLits, &intLitBucket{})
	}
	b := a.intLits[len(a.intLits)-1]
	node := &b.nodes[b.len]
	b.len++
	return node
}

// NewBoolLit allocates a BoolLit at a stable address.
func (a *Arena) NewBoolLit() *BoolLit {
	if len(a.boolLits) == 0 || a.boolLits[len(a.boolLits)-1].len == bucketCapacity {
		a.boolLits = append(a.boolLits, &boolLitBucket{})
	}
	b := a.boolLits[len(a.boolLits)-1]
	node := &b.nodes[b.len]
	b.len++
	return node
}

// NewBinaryExpr allocates a BinaryExpr at a stable address.
func (a *Arena) NewBinaryExpr() *BinaryExpr {
	if len(a.binExprs) == 0 || a.binExprs[len(a.binExprs)-1].len == bucketCapacity {
		a.binExprs = append(a.binExprs, &binExprBucket{})
	}
	b := a.binExprs[len(a.binExprs)-1]
	node := &b.nodes[b.len]
	b.len++
	return node
}
