// Package treemap provides an in-memory ordered map backed by an unbalanced
// binary search tree.
//
// Keys are ordered by a caller supplied Compare function. The shape of the
// tree is determined purely by insertion order: no rebalancing is ever done,
// so inserting keys in sorted order produces a degenerate (linked list shaped)
// tree. All traversals are iterative so that such trees are still safe to walk.
//
// A TreeMap is not safe for concurrent use.
package treemap

import (
	"io"

	"github.com/cockroachdb/errors"
)

var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrInvariantViolation   = errors.New("invariant violation")
)

// Compare returns a negative result if key1 < key2, zero if key1 == key2,
// and a positive result if key1 > key2.
type Compare[K any] func(key1 K, key2 K) (result int, err error)

// DumpCallbacks formats keys and values for Dump(). If not supplied to
// NewTreeMap(), keys and values are formatted with %v.
type DumpCallbacks[K any, V any] interface {
	DumpKey(key K) (keyAsString string, err error)
	DumpValue(value V) (valueAsString string, err error)
}

// Entries is anything PutAll() can draw key/value pairs from. Range calls
// visit for each pair in the source's own order until visit returns false.
type Entries[K any, V any] interface {
	Range(visit func(key K, value V) (keepGoing bool))
}

type Entry[K any, V any] struct {
	Key   K
	Value V
}

// EntryList is an Entries that yields its elements in slice order.
type EntryList[K any, V any] []Entry[K, V]

func (entryList EntryList[K, V]) Range(visit func(key K, value V) (keepGoing bool)) {
	for _, entry := range entryList {
		if !visit(entry.Key, entry.Value) {
			return
		}
	}
}

// ChildSide says how WalkShape() reached a node from its parent.
type ChildSide int

const (
	RootSide ChildSide = iota
	LeftSide
	RightSide
)

func (side ChildSide) String() string {
	switch side {
	case RootSide:
		return "root"
	case LeftSide:
		return "left"
	case RightSide:
		return "right"
	default:
		return "unknown"
	}
}

type TreeMap[K any, V any] interface {
	Entries[K, V]

	Put(key K, value V) (previous V, replaced bool, err error)
	Get(key K) (value V, ok bool, err error)
	ContainsKey(key K) (found bool, err error)
	ContainsValue(value V) (found bool)
	Keys() (keys []K)
	Values() (values []V)
	Len() (numberOfItems int)
	IsEmpty() (empty bool)
	Clear()
	PutAll(other Entries[K, V]) (err error)
	Height() (height int)

	// WalkShape visits every node in pre-order (node, then left, then right)
	// with its depth (the root is at depth 0) until visit returns false.
	WalkShape(visit func(depth int, side ChildSide, key K, value V) (keepGoing bool))

	// EntrySet and Remove are not supported and always fail with ErrUnsupportedOperation
	EntrySet() (entries EntryList[K, V], err error)
	Remove(key K) (previous V, ok bool, err error)

	Validate() (err error)
	Dump() (err error)
	DumpTo(w io.Writer) (err error)

	// MakeNode and SetTree exist for white-box tests only. SetTree does not
	// check the BST invariant nor the supplied size (use Validate() for that).
	MakeNode(key K, value V) (node *Node[K, V])
	SetTree(root *Node[K, V], size int)
}
