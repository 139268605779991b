package machine

// listNode is one cell of a singly linked, reference-counted chain. Each
// node owns its own refcount (not just the List header that points at it),
// because a node can be shared as the tail of more than one distinct List at
// different depths once structural sharing happens (§3 invariants).
type listNode struct {
	refcount
	val  Value
	next *listNode
}

// cons allocates a new node holding v, linked to tail. If tail is non-nil its
// reference count is bumped, since the new node becomes another holder of
// it.
func cons(v Value, tail *listNode) *listNode {
	if tail != nil {
		tail.Retain()
	}
	return &listNode{refcount: newRefcount(), val: v, next: tail}
}

// releaseNode drops one reference to n. When a node's count reaches zero, its
// value is released (if it owns heap state) and the chain continues
// iteratively into n.next, so freeing a long unshared list doesn't recurse
// once per element.
func releaseNode(n *listNode) {
	for n != nil {
		if n.Release() > 0 {
			return
		}
		releaseValue(n.val)
		next := n.next
		n.next = nil
		n = next
	}
}

// releaseValue drops a reference held by a value that is about to be
// discarded, for the variants that carry shared heap state.
func releaseValue(v Value) {
	switch v := v.(type) {
	case List:
		v.Release()
	case Array:
		v.Release()
	case Source:
		v.Release()
	}
}

// retainValue records a new holder of v, for the variants that carry shared
// heap state. Scalar variants (Int, Bool, Char, String, Itself, Nothing) need
// no bookkeeping since they carry no shared backing store.
func retainValue(v Value) {
	switch v := v.(type) {
	case List:
		v.Retain()
	case Array:
		v.Retain()
	case Source:
		v.Retain()
	}
}

// List is a general-purpose compound value: a singly linked chain, also used
// to represent a quotation body (deferred code). Scope frames use their own
// binding chain (see scope.go), not a List.
type List struct {
	word string
	head *listNode
}

var _ Value = List{}

// EmptyList is the canonical empty LIST, with no word.
var EmptyList = List{}

func (l List) Word() string { return l.word }
func (l List) Type() string { return TagList }

// WithWord returns a copy of l carrying a different display word; it shares
// the same backing chain (retained).
func (l List) WithWord(word string) List {
	if l.head != nil {
		l.head.Retain()
	}
	return List{word: word, head: l.head}
}

// NewList builds a LIST from elems, front to back (elems[0] ends up at the
// head).
func NewList(word string, elems []Value) List {
	var head *listNode
	for i := len(elems) - 1; i >= 0; i-- {
		head = cons(elems[i], head)
	}
	return List{word: word, head: head}
}

// Empty reports whether l has no elements.
func (l List) Empty() bool { return l.head == nil }

// Len counts the elements in l (O(n)).
func (l List) Len() int {
	n := 0
	for c := l.head; c != nil; c = c.next {
		n++
	}
	return n
}

// Head returns the first element and true, or the zero Value and false if l
// is empty.
func (l List) Head() (Value, bool) {
	if l.head == nil {
		return nil, false
	}
	return l.head.val, true
}

// Tail returns the rest of the list after the head, as a new List handle
// sharing the same backing node (retained). If l is empty, Tail returns l.
func (l List) Tail() List {
	if l.head == nil {
		return l
	}
	if l.head.next != nil {
		l.head.next.Retain()
	}
	return List{head: l.head.next}
}

// Pop detaches the head of l, returning it along with the remainder and
// true. The node holding the old head is released (its refcount is
// decremented once, since the List header that pointed at it is being
// consumed by this call).
func (l List) Pop() (Value, List, bool) {
	if l.head == nil {
		return nil, l, false
	}
	v := l.head.val
	rest := l.head.next
	if rest != nil {
		rest.Retain()
	}
	// this call consumes l's hold on l.head; release it once the value and
	// rest have been lifted out, without freeing rest (retained above).
	if l.head.Release() == 0 {
		l.head.next = nil // rest already retained independently above
	}
	return v, List{head: rest}, true
}

// Cons returns a new LIST with v pushed onto the front of l.
func (l List) Cons(v Value) List {
	return List{head: cons(v, l.head)}
}

// ToSlice copies l's elements, head first, into a new slice.
func (l List) ToSlice() []Value {
	out := make([]Value, 0, l.Len())
	for c := l.head; c != nil; c = c.next {
		out = append(out, c.val)
	}
	return out
}

// Reverse returns a new LIST with l's elements in reverse order. It allocates
// a fresh chain (retaining any heap-backed element values it duplicates into
// it) rather than mutating l's nodes in place, since those nodes may be
// shared by other holders.
func (l List) Reverse() List {
	var head *listNode
	for c := l.head; c != nil; c = c.next {
		retainValue(c.val)
		head = cons(c.val, head)
	}
	return List{word: l.word, head: head}
}

// Retain records a new holder of l's backing chain.
func (l List) Retain() {
	if l.head != nil {
		l.head.Retain()
	}
}

// Release drops l's holder on its backing chain, freeing nodes (and their
// owned values) once nothing else references them.
func (l List) Release() {
	releaseNode(l.head)
}

// Clone returns a structurally independent deep copy of l: a List.Clone call
// walks the whole chain allocating fresh nodes, retaining any heap-backed
// element values. Used by operations (e.g. match's rule-list re-parse) that
// must not mutate a list that the caller may still hold a reference to.
func (l List) Clone() List {
	elems := l.ToSlice()
	for _, v := range elems {
		retainValue(v)
	}
	return NewList(l.word, elems)
}
